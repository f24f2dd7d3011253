package validation

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/coapi/validator/pkg/grammar"
	"github.com/coapi/validator/pkg/value"
)

// conforms reports whether v has the shape declared by t. Numeric types
// accept anything here; their content is checked by checkNumber.
func conforms(v value.Value, t grammar.Type) bool {
	switch t {
	case grammar.TypeObject, grammar.TypeArray:
		return v.Kind() == value.KindMapping
	case grammar.TypeString:
		return v.Kind() == value.KindString
	case grammar.TypeBoolean:
		if v.Kind() == value.KindBoolean {
			return true
		}
		s, ok := v.AsString()
		return ok && (strings.EqualFold(s, "true") || strings.EqualFold(s, "false"))
	case grammar.TypeInteger, grammar.TypeUnsignedInteger:
		return true
	default:
		return false
	}
}

// checkNumber validates the text of an integer or unsignedInteger field.
// Both accept base-10 values up to the 32-bit signed maximum.
func checkNumber(v value.Value, t grammar.Type) (Kind, string, bool) {
	text, ok := v.AsString()
	if !ok {
		kind, msg := badNumberFormat(v.Text(), t)
		return kind, msg, false
	}

	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && !(t == grammar.TypeUnsignedInteger && strings.HasPrefix(text, "-")) {
			kind, msg := numberTooLarge(text, t)
			return kind, msg, false
		}
		kind, msg := badNumberFormat(text, t)
		return kind, msg, false
	}

	if t == grammar.TypeUnsignedInteger && n < 0 {
		kind, msg := badNumberFormat(text, t)
		return kind, msg, false
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		kind, msg := numberTooLarge(text, t)
		return kind, msg, false
	}
	return "", "", true
}

// checkString applies the value pattern of a string field.
func checkString(v value.Value, node *grammar.Node) (Kind, string, bool) {
	if node.ValueRegex == nil {
		return "", "", true
	}
	text, _ := v.AsString()
	if node.ValueRegex.MatchString(text) {
		return "", "", true
	}
	kind, msg := noRegexMatch(text, node.ValueRegex)
	return kind, msg, false
}
