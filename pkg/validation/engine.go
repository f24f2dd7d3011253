package validation

import (
	"fmt"

	"github.com/coapi/validator/pkg/grammar"
	"github.com/coapi/validator/pkg/value"
)

// Validate checks doc against the grammar rooted at root and reports the
// first violation. The root of doc must be a mapping.
func Validate(doc value.Value, root *grammar.Node) Outcome {
	if root == nil {
		return Failed(KindInternal, "No grammar is loaded.", nil)
	}

	w := &walker{}
	if f := w.root(doc, root); f != nil {
		return f.Outcome()
	}
	return Ok()
}

// walker carries the path of the entry being checked. One walker serves
// exactly one Validate call.
type walker struct {
	path []string
}

func (w *walker) fail(kind Kind, message string) *Failure {
	return &Failure{
		Kind:    kind,
		Message: message,
		Path:    append([]string(nil), w.path...),
	}
}

func (w *walker) root(doc value.Value, root *grammar.Node) *Failure {
	m, ok := doc.AsMapping()
	if !ok {
		return w.fail(typeMismatch(root.Name, root.Type, doc.Kind()))
	}
	return w.object(m, root)
}

func (w *walker) object(m *value.Mapping, node *grammar.Node) *Failure {
	for _, name := range node.Children.Names() {
		child, _ := node.Child(name)
		if child.Required && !m.Has(name) {
			return w.fail(requiredFieldMissing(name))
		}
	}

	keys := m.Keys()
	for _, key := range keys {
		if _, ok := node.Child(key); !ok {
			return w.fail(excessiveField(key))
		}
	}

	for _, key := range keys {
		child, _ := node.Child(key)
		v, _ := m.Get(key)
		if f := w.entry(key, v, child, nil); f != nil {
			return f
		}
	}
	return nil
}

func (w *walker) array(m *value.Mapping, element *grammar.Node) *Failure {
	if element == nil {
		return w.fail(KindInternal, "Array has no element schema.")
	}
	for _, e := range m.Entries() {
		if f := w.entry(e.Key, e.Value, element, element.NameRegex); f != nil {
			return f
		}
	}
	return nil
}

// entry checks one keyed value: null first, then the key pattern when
// the value is an array element, then shape, then content.
func (w *walker) entry(key string, v value.Value, node *grammar.Node, keyPattern *grammar.Pattern) *Failure {
	w.path = append(w.path, key)
	defer func() { w.path = w.path[:len(w.path)-1] }()

	if v.IsNull() {
		return w.fail(nullValue(key))
	}
	if keyPattern != nil && !keyPattern.MatchString(key) {
		return w.fail(noRegexMatch(key, keyPattern))
	}
	if !conforms(v, node.Type) {
		return w.fail(typeMismatch(key, node.Type, v.Kind()))
	}
	return w.dispatch(v, node)
}

func (w *walker) dispatch(v value.Value, node *grammar.Node) *Failure {
	switch node.Type {
	case grammar.TypeObject:
		m, _ := v.AsMapping()
		return w.object(m, node)
	case grammar.TypeArray:
		m, _ := v.AsMapping()
		return w.array(m, node.Element())
	case grammar.TypeString:
		if kind, msg, ok := checkString(v, node); !ok {
			return w.fail(kind, msg)
		}
		return nil
	case grammar.TypeInteger, grammar.TypeUnsignedInteger:
		if kind, msg, ok := checkNumber(v, node.Type); !ok {
			return w.fail(kind, msg)
		}
		return nil
	case grammar.TypeBoolean:
		return nil
	default:
		return w.fail(KindInternal, fmt.Sprintf("Unsupported grammar type %s.", node.Type))
	}
}
