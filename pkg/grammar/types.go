package grammar

// Type is the declared type of a grammar field.
type Type uint8

const (
	TypeObject Type = iota + 1
	TypeArray
	TypeString
	TypeInteger
	TypeUnsignedInteger
	TypeBoolean
)

var typeKeywords = map[Type]string{
	TypeObject:          "object",
	TypeArray:           "array",
	TypeString:          "string",
	TypeInteger:         "integer",
	TypeUnsignedInteger: "unsignedInteger",
	TypeBoolean:         "boolean",
}

var keywordTypes = func() map[string]Type {
	m := make(map[string]Type, len(typeKeywords))
	for t, k := range typeKeywords {
		m[k] = t
	}
	return m
}()

// ParseType resolves a grammar keyword. Keywords are case-sensitive.
func ParseType(keyword string) (Type, bool) {
	t, ok := keywordTypes[keyword]
	return t, ok
}

// String returns the grammar keyword of t.
func (t Type) String() string {
	if k, ok := typeKeywords[t]; ok {
		return k
	}
	return "unknown"
}

// IsComposite reports whether fields of type t hold nested fields.
func (t Type) IsComposite() bool {
	return t == TypeObject || t == TypeArray
}

// IsNumeric reports whether t is checked as a base-10 number.
func (t Type) IsNumeric() bool {
	return t == TypeInteger || t == TypeUnsignedInteger
}
