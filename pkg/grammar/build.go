package grammar

import (
	"strings"

	"github.com/coapi/validator/pkg/value"
)

const (
	keyRequired    = "required"
	keyType        = "type"
	keyChildren    = "children"
	keyRegex       = "regex"
	keyNameRegex   = "nameRegex"
	keyDescription = "description"

	elementKeyPrefix = "^"
)

var definitionKeys = map[string]struct{}{
	keyRequired:    {},
	keyType:        {},
	keyChildren:    {},
	keyRegex:       {},
	keyNameRegex:   {},
	keyDescription: {},
}

// Build translates a parsed grammar document into a Node tree rooted at an
// object node named RootName. It fails with *Error on the first problem found.
func Build(root value.Value) (*Node, error) {
	m, ok := root.AsMapping()
	if !ok {
		return nil, newError(ErrMalformedGrammar, nil,
			"grammar must be a mapping of field definitions, got %s", root.Kind())
	}

	b := &builder{}
	children, err := b.children(m, false)
	if err != nil {
		return nil, err
	}
	return &Node{
		Name:     RootName,
		Type:     TypeObject,
		Children: children,
	}, nil
}

type builder struct {
	path []string
}

func (b *builder) children(m *value.Mapping, elements bool) (*Children, error) {
	out := newChildren()
	for _, e := range m.Entries() {
		b.path = append(b.path, e.Key)
		n, err := b.definition(e.Key, e.Value, elements)
		b.path = b.path[:len(b.path)-1]
		if err != nil {
			return nil, err
		}
		out.add(n)
	}
	return out, nil
}

func (b *builder) definition(name string, v value.Value, element bool) (*Node, error) {
	def, ok := v.AsMapping()
	if !ok {
		return nil, newError(ErrMalformedGrammar, b.path,
			"definition must be a mapping, got %s", v.Kind())
	}
	for _, key := range def.Keys() {
		if _, known := definitionKeys[key]; !known {
			return nil, newError(ErrMalformedGrammar, b.path, "unknown definition key %q", key)
		}
	}

	t, err := b.fieldType(def)
	if err != nil {
		return nil, err
	}

	n := &Node{
		Name:     name,
		Type:     t,
		Required: isRequired(def),
	}

	if d, ok := def.Get(keyDescription); ok {
		n.Description = d.Text()
	}

	if err := b.patterns(n, def, element); err != nil {
		return nil, err
	}

	childDefs, hasChildren := def.Get(keyChildren)
	if !t.IsComposite() {
		if hasChildren {
			return nil, newError(ErrMalformedGrammar, b.path, "%s fields cannot declare children", t)
		}
		return n, nil
	}

	if !hasChildren {
		return nil, newError(ErrMalformedGrammar, b.path, "%s fields must declare children", t)
	}
	cm, ok := childDefs.AsMapping()
	if !ok {
		if !childDefs.IsNull() {
			return nil, newError(ErrMalformedGrammar, b.path,
				"children must be a mapping, got %s", childDefs.Kind())
		}
		cm = value.NewMapping()
	}

	if t == TypeArray && cm.Len() != 1 {
		return nil, newError(ErrAmbiguousArrayElement, b.path,
			"array fields must declare exactly one element schema, found %d", cm.Len())
	}

	if n.Children, err = b.children(cm, t == TypeArray); err != nil {
		return nil, err
	}
	return n, nil
}

func (b *builder) fieldType(def *value.Mapping) (Type, error) {
	tv, ok := def.Get(keyType)
	if !ok {
		return 0, newError(ErrUnknownType, b.path, "missing type")
	}
	keyword, isString := tv.AsString()
	if !isString {
		return 0, newError(ErrUnknownType, b.path, "type must be a keyword, got %s", tv.Kind())
	}
	t, ok := ParseType(keyword)
	if !ok {
		return 0, newError(ErrUnknownType, b.path, "unknown type %q", keyword)
	}
	return t, nil
}

func (b *builder) patterns(n *Node, def *value.Mapping, element bool) error {
	if rv, ok := def.Get(keyRegex); ok {
		if n.Type != TypeString {
			return newError(ErrMalformedGrammar, b.path, "regex is only allowed on string fields")
		}
		p, err := b.compile(keyRegex, rv)
		if err != nil {
			return err
		}
		n.ValueRegex = p
	}

	nv, hasNameRegex := def.Get(keyNameRegex)
	switch {
	case hasNameRegex && !element:
		return newError(ErrMalformedGrammar, b.path, "nameRegex is only allowed on array elements")
	case hasNameRegex:
		p, err := b.compile(keyNameRegex, nv)
		if err != nil {
			return err
		}
		n.NameRegex = p
	case element && strings.HasPrefix(n.Name, elementKeyPrefix):
		p, err := b.compile("element key", value.String(n.Name))
		if err != nil {
			return err
		}
		n.NameRegex = p
	}
	return nil
}

func (b *builder) compile(what string, v value.Value) (*Pattern, error) {
	src, ok := v.AsString()
	if !ok {
		return nil, newError(ErrMalformedGrammar, b.path, "%s must be a string, got %s", what, v.Kind())
	}
	p, err := CompilePattern(src)
	if err != nil {
		e := newError(ErrInvalidPattern, b.path, "%s %q does not compile", what, src)
		e.Err = err
		return nil, e
	}
	return p, nil
}

// isRequired never fails: anything but true or "true" means optional.
func isRequired(def *value.Mapping) bool {
	v, ok := def.Get(keyRequired)
	if !ok {
		return false
	}
	if b, ok := v.AsBool(); ok {
		return b
	}
	s, _ := v.AsString()
	return strings.EqualFold(s, "true")
}
