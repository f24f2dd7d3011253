package value

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBoolean
	KindString
	KindMapping
)

var kindNames = map[Kind]string{
	KindNull:    "null",
	KindBoolean: "boolean",
	KindString:  "string",
	KindMapping: "mapping",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Value is one node of a parsed document. The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	s    string
	m    *Mapping
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// FromMapping wraps m as a Value. A nil mapping is treated as empty.
func FromMapping(m *Mapping) Value {
	if m == nil {
		m = &Mapping{}
	}
	return Value{kind: KindMapping, m: m}
}

// Kind reports the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBoolean
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsMapping returns the mapping held by v.
func (v Value) AsMapping() (*Mapping, bool) {
	if v.kind != KindMapping {
		return nil, false
	}
	return v.m, true
}

// Text renders v the way it appears in validation messages.
// Mappings render as their kind name since they have no scalar text.
func (v Value) Text() string {
	switch v.kind {
	case KindBoolean:
		if v.b {
			return "true"
		}
		return "false"
	case KindString:
		return v.s
	case KindMapping:
		return KindMapping.String()
	default:
		return KindNull.String()
	}
}

// Equal reports deep equality, including mapping key order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBoolean:
		return v.b == o.b
	case KindString:
		return v.s == o.s
	case KindMapping:
		return v.m.Equal(o.m)
	default:
		return true
	}
}

// Native converts v into plain Go values (nil, bool, string, map[string]any).
// Key order is lost; use it for rendering only.
func (v Value) Native() any {
	switch v.kind {
	case KindBoolean:
		return v.b
	case KindString:
		return v.s
	case KindMapping:
		out := make(map[string]any, v.m.Len())
		for _, e := range v.m.entries {
			out[e.Key] = e.Value.Native()
		}
		return out
	default:
		return nil
	}
}
