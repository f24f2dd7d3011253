package validation

import (
	"fmt"

	"github.com/coapi/validator/pkg/grammar"
	"github.com/coapi/validator/pkg/value"
)

// Failure is the first violation found in a document. Path lists the keys
// from the document root to the failing location.
type Failure struct {
	Kind    Kind
	Message string
	Path    []string
}

// Outcome converts f into a failed Outcome.
func (f *Failure) Outcome() Outcome {
	return Failed(f.Kind, f.Message, f.Path)
}

func requiredFieldMissing(name string) (Kind, string) {
	return KindRequiredFieldMissing, fmt.Sprintf("Required object %s is not present.", name)
}

func excessiveField(name string) (Kind, string) {
	return KindExcessiveField, fmt.Sprintf("Excessive object %s is present.", name)
}

func nullValue(name string) (Kind, string) {
	return KindNullValue, fmt.Sprintf("Null value at key: %s", name)
}

func typeMismatch(name string, declared grammar.Type, actual value.Kind) (Kind, string) {
	return KindTypeMismatch, fmt.Sprintf("Object %s is of bad type. Required type is: %s. Actual type is: %s",
		name, declared, actual)
}

func noRegexMatch(text string, pattern *grammar.Pattern) (Kind, string) {
	return KindNoRegexMatch, fmt.Sprintf("Object %s does not match %s regex pattern.", text, pattern)
}

func badNumberFormat(text string, declared grammar.Type) (Kind, string) {
	return KindBadNumberFormat, fmt.Sprintf("Value %s has incorrect type. Required type is: %s.", text, declared)
}

func numberTooLarge(text string, declared grammar.Type) (Kind, string) {
	return KindNumberTooLarge, fmt.Sprintf("Number %s is too large for its type: %s", text, declared)
}
