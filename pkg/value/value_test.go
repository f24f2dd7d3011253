package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Text(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null(), "null"},
		{"zero value is null", Value{}, "null"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"string", String("abc"), "abc"},
		{"mapping", FromMapping(NewMapping()), "mapping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Text())
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "boolean", KindBoolean.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "mapping", KindMapping.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestMapping_PreservesOrder(t *testing.T) {
	m := NewMapping(
		Entry{Key: "z", Value: String("1")},
		Entry{Key: "a", Value: String("2")},
		Entry{Key: "m", Value: Null()},
	)

	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())
	assert.Equal(t, 3, m.Len())
	assert.True(t, m.Has("m"))
	assert.False(t, m.Has("missing"))

	v, ok := m.Get("a")
	require.True(t, ok)
	s, ok := v.AsString()
	require.True(t, ok)
	assert.Equal(t, "2", s)
}

func TestMapping_SetReplacesInPlace(t *testing.T) {
	m := NewMapping(
		Entry{Key: "a", Value: String("1")},
		Entry{Key: "b", Value: String("2")},
	)
	m.Set("a", Bool(true))

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, _ := m.Get("a")
	b, ok := v.AsBool()
	require.True(t, ok)
	assert.True(t, b)
}

func TestMapping_NilReceiver(t *testing.T) {
	var m *Mapping
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("a"))
	assert.Nil(t, m.Keys())
	_, ok := m.Get("a")
	assert.False(t, ok)
}

func TestValue_Equal(t *testing.T) {
	a := FromMapping(NewMapping(
		Entry{Key: "x", Value: String("1")},
		Entry{Key: "y", Value: FromMapping(NewMapping(Entry{Key: "z", Value: Bool(false)}))},
	))
	b := FromMapping(NewMapping(
		Entry{Key: "x", Value: String("1")},
		Entry{Key: "y", Value: FromMapping(NewMapping(Entry{Key: "z", Value: Bool(false)}))},
	))
	reordered := FromMapping(NewMapping(
		Entry{Key: "y", Value: FromMapping(NewMapping(Entry{Key: "z", Value: Bool(false)}))},
		Entry{Key: "x", Value: String("1")},
	))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(reordered))
	assert.False(t, String("true").Equal(Bool(true)))
	assert.True(t, Null().Equal(Value{}))
}

func TestValue_Native(t *testing.T) {
	v := FromMapping(NewMapping(
		Entry{Key: "s", Value: String("x")},
		Entry{Key: "b", Value: Bool(true)},
		Entry{Key: "n", Value: Null()},
		Entry{Key: "m", Value: FromMapping(NewMapping(Entry{Key: "k", Value: String("v")}))},
	))

	want := map[string]any{
		"s": "x",
		"b": true,
		"n": nil,
		"m": map[string]any{"k": "v"},
	}
	assert.Equal(t, want, v.Native())
}

func TestValue_Accessors(t *testing.T) {
	_, ok := Null().AsMapping()
	assert.False(t, ok)
	_, ok = String("x").AsBool()
	assert.False(t, ok)

	m, ok := FromMapping(nil).AsMapping()
	require.True(t, ok)
	assert.Equal(t, 0, m.Len())
	assert.True(t, Null().IsNull())
	assert.False(t, String("").IsNull())
}
