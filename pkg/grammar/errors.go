package grammar

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a grammar construction failure.
type ErrorKind string

const (
	ErrUnknownType           ErrorKind = "UnknownTypeError"
	ErrMalformedGrammar      ErrorKind = "MalformedGrammar"
	ErrAmbiguousArrayElement ErrorKind = "AmbiguousArrayElement"
	ErrInvalidPattern        ErrorKind = "InvalidPattern"
)

// Error reports a grammar that cannot be built. Path lists the definition
// names leading to the offending definition; it is empty for the top level.
type Error struct {
	Kind    ErrorKind
	Path    []string
	Message string
	Err     error
}

func (e *Error) Error() string {
	loc := RootName
	if len(e.Path) > 0 {
		loc = strings.Join(e.Path, ".")
	}
	msg := fmt.Sprintf("grammar %s at %s: %s", e.Kind, loc, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, path []string, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Path:    append([]string(nil), path...),
		Message: fmt.Sprintf(format, args...),
	}
}
