package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/coapi/validator/pkg/value"
)

func parseYAML(data []byte, o options) (value.Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return value.Null(), nil
		}
		return value.Value{}, &Error{Format: FormatYAML, Message: "invalid document", Err: err}
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return value.Value{}, &Error{Format: FormatYAML, Message: "invalid document", Err: err}
		}
		return value.Value{}, &Error{
			Format:  FormatYAML,
			Line:    extra.Line,
			Column:  extra.Column,
			Message: "multiple documents in one stream are not supported",
		}
	}

	c := &yamlConverter{
		maxDepth:  o.maxDepth,
		ancestors: make(map[*yaml.Node]struct{}),
	}
	return c.convert(&doc, 0)
}

type yamlConverter struct {
	maxDepth  int
	aliases   int
	ancestors map[*yaml.Node]struct{}
}

func (c *yamlConverter) fail(n *yaml.Node, format string, args ...any) error {
	return &Error{
		Format:  FormatYAML,
		Line:    n.Line,
		Column:  n.Column,
		Message: fmt.Sprintf(format, args...),
	}
}

func (c *yamlConverter) convert(n *yaml.Node, depth int) (value.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.Null(), nil
		}
		return c.convert(n.Content[0], depth)

	case yaml.AliasNode:
		if n.Alias == nil {
			return value.Value{}, c.fail(n, "unresolved alias *%s", n.Value)
		}
		if _, cyclic := c.ancestors[n.Alias]; cyclic {
			return value.Value{}, c.fail(n, "alias *%s refers to an enclosing node", n.Value)
		}
		c.aliases++
		if c.aliases > maxAliasExpansions {
			return value.Value{}, c.fail(n, "too many alias expansions (limit %d)", maxAliasExpansions)
		}
		return c.convert(n.Alias, depth)

	case yaml.MappingNode:
		return c.mapping(n, depth+1)

	case yaml.SequenceNode:
		return c.sequence(n, depth+1)

	case yaml.ScalarNode:
		return scalar(n), nil

	default:
		return value.Value{}, c.fail(n, "unsupported node kind %d", n.Kind)
	}
}

func (c *yamlConverter) enter(n *yaml.Node, depth int) error {
	if c.maxDepth > 0 && depth > c.maxDepth {
		return c.fail(n, "maximum nesting depth %d exceeded", c.maxDepth)
	}
	c.ancestors[n] = struct{}{}
	return nil
}

func (c *yamlConverter) leave(n *yaml.Node) {
	delete(c.ancestors, n)
}

func (c *yamlConverter) mapping(n *yaml.Node, depth int) (value.Value, error) {
	if err := c.enter(n, depth); err != nil {
		return value.Value{}, err
	}
	defer c.leave(n)

	if len(n.Content)%2 != 0 {
		return value.Value{}, c.fail(n, "mapping has an odd number of nodes")
	}

	m := value.NewMapping()
	seen := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]

		key := k
		if key.Kind == yaml.AliasNode && key.Alias != nil {
			key = key.Alias
		}
		if key.Kind != yaml.ScalarNode {
			return value.Value{}, c.fail(k, "mapping keys must be scalars")
		}
		if key.ShortTag() == "!!merge" {
			return value.Value{}, c.fail(k, "merge keys are not supported")
		}
		if first, dup := seen[key.Value]; dup {
			return value.Value{}, &Error{
				Format:  FormatYAML,
				Line:    k.Line,
				Column:  k.Column,
				Message: "duplicate mapping key",
				Err: &DuplicateKeyError{
					Key:       key.Value,
					FirstLine: first.Line,
					FirstCol:  first.Column,
					Line:      k.Line,
					Col:       k.Column,
				},
			}
		}
		seen[key.Value] = k

		child, err := c.convert(v, depth)
		if err != nil {
			return value.Value{}, err
		}
		m.Set(key.Value, child)
	}
	return value.FromMapping(m), nil
}

func (c *yamlConverter) sequence(n *yaml.Node, depth int) (value.Value, error) {
	if err := c.enter(n, depth); err != nil {
		return value.Value{}, err
	}
	defer c.leave(n)

	m := value.NewMapping()
	for i, item := range n.Content {
		child, err := c.convert(item, depth)
		if err != nil {
			return value.Value{}, err
		}
		m.Set(strconv.Itoa(i), child)
	}
	return value.FromMapping(m), nil
}

// scalar keeps null and boolean scalars typed and everything else as text.
// Quoted scalars resolve to !!str, so "null" in quotes stays a string.
func scalar(n *yaml.Node) value.Value {
	switch n.ShortTag() {
	case "!!null":
		return value.Null()
	case "!!bool":
		return value.Bool(strings.EqualFold(n.Value, "true"))
	default:
		return value.String(n.Value)
	}
}
