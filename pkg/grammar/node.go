package grammar

// RootName is the name of the implicit node holding the top-level fields.
const RootName = "<root>"

// Node is one field definition of a grammar.
type Node struct {
	Name        string
	Type        Type
	Required    bool
	Description string

	// ValueRegex constrains the text of string fields. Nil means unconstrained.
	ValueRegex *Pattern

	// NameRegex constrains the keys of the array whose element this node is.
	NameRegex *Pattern

	// Children is nil for leaf types.
	Children *Children
}

// Element returns the element schema of an array node, or nil.
func (n *Node) Element() *Node {
	if n.Type != TypeArray || n.Children.Len() != 1 {
		return nil
	}
	return n.Children.nodes[n.Children.names[0]]
}

// Child returns the direct child named name.
func (n *Node) Child(name string) (*Node, bool) {
	return n.Children.Get(name)
}

// Stats summarizes the size of a grammar tree.
type Stats struct {
	Nodes    int `json:"nodes" yaml:"nodes"`
	Depth    int `json:"depth" yaml:"depth"`
	Required int `json:"required" yaml:"required"`
	Patterns int `json:"patterns" yaml:"patterns"`
}

// Stats walks the tree rooted at n. The root counts as depth 1.
func (n *Node) Stats() Stats {
	var s Stats
	var walk func(*Node, int)
	walk = func(node *Node, depth int) {
		s.Nodes++
		if depth > s.Depth {
			s.Depth = depth
		}
		if node.Required {
			s.Required++
		}
		if node.ValueRegex != nil {
			s.Patterns++
		}
		if node.NameRegex != nil {
			s.Patterns++
		}
		node.Children.Each(func(c *Node) {
			walk(c, depth+1)
		})
	}
	walk(n, 1)
	return s
}

// Children is an ordered, name-addressed set of child nodes.
type Children struct {
	names []string
	nodes map[string]*Node
}

func newChildren() *Children {
	return &Children{nodes: make(map[string]*Node)}
}

func (c *Children) add(n *Node) {
	c.names = append(c.names, n.Name)
	c.nodes[n.Name] = n
}

// Get looks up a child by exact name.
func (c *Children) Get(name string) (*Node, bool) {
	if c == nil {
		return nil, false
	}
	n, ok := c.nodes[name]
	return n, ok
}

// Names returns child names in declaration order.
func (c *Children) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.names...)
}

// Len returns the number of children.
func (c *Children) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Each calls fn for every child in declaration order.
func (c *Children) Each(fn func(*Node)) {
	if c == nil {
		return
	}
	for _, name := range c.names {
		fn(c.nodes[name])
	}
}
