package validation

// Kind tags the reason a document was rejected.
type Kind string

const (
	KindRequiredFieldMissing Kind = "RequiredFieldMissing"
	KindExcessiveField       Kind = "ExcessiveField"
	KindNullValue            Kind = "NullValue"
	KindTypeMismatch         Kind = "TypeMismatch"
	KindNoRegexMatch         Kind = "NoRegexMatch"
	KindBadNumberFormat      Kind = "BadNumberFormat"
	KindNumberTooLarge       Kind = "NumberTooLarge"
	KindMalformedDocument    Kind = "MalformedDocument"
	KindInternal             Kind = "InternalError"
)

// Kinds lists every kind an Outcome can carry.
var Kinds = []Kind{
	KindRequiredFieldMissing,
	KindExcessiveField,
	KindNullValue,
	KindTypeMismatch,
	KindNoRegexMatch,
	KindBadNumberFormat,
	KindNumberTooLarge,
	KindMalformedDocument,
	KindInternal,
}

func (k Kind) String() string { return string(k) }
