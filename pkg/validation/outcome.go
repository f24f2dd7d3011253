package validation

import (
	"fmt"

	"github.com/coapi/validator/pkg/grammar"
)

// OkMessage is the message of every successful Outcome.
const OkMessage = "No errors found."

// Outcome is the result of validating one document.
type Outcome struct {
	Valid   bool     `json:"valid" yaml:"valid"`
	Kind    Kind     `json:"kind,omitempty" yaml:"kind,omitempty"`
	Message string   `json:"message" yaml:"message"`
	Path    []string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Ok returns the successful Outcome.
func Ok() Outcome {
	return Outcome{Valid: true, Message: OkMessage}
}

// Failed returns a failed Outcome. An empty path means the document root.
func Failed(kind Kind, message string, path []string) Outcome {
	if len(path) == 0 {
		path = []string{grammar.RootName}
	} else {
		path = append([]string(nil), path...)
	}
	return Outcome{Kind: kind, Message: message, Path: path}
}

// MalformedDocument reports a document that could not be parsed.
func MalformedDocument(err error) Outcome {
	return Failed(KindMalformedDocument, fmt.Sprintf("Document could not be parsed: %v", err), nil)
}

// Location returns the innermost path element, or RootName.
func (o Outcome) Location() string {
	if len(o.Path) == 0 {
		return grammar.RootName
	}
	return o.Path[len(o.Path)-1]
}

// Summary renders o as a single human readable line.
func (o Outcome) Summary() string {
	if o.Valid {
		return o.Message
	}
	return fmt.Sprintf("Validation error at object: %s. %s", o.Location(), o.Message)
}

// Label is the outcome name used in metrics and reports: "ok" or the kind.
func (o Outcome) Label() string {
	if o.Valid {
		return "ok"
	}
	return string(o.Kind)
}
