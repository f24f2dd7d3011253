package grammar

// Field is a serializable view of a Node, used for reports and the
// grammar endpoint.
type Field struct {
	Name        string  `json:"name" yaml:"name"`
	Type        string  `json:"type" yaml:"type"`
	Required    bool    `json:"required" yaml:"required"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Regex       string  `json:"regex,omitempty" yaml:"regex,omitempty"`
	NameRegex   string  `json:"nameRegex,omitempty" yaml:"nameRegex,omitempty"`
	Children    []Field `json:"children,omitempty" yaml:"children,omitempty"`
}

// Summary describes a whole grammar.
type Summary struct {
	Stats  Stats   `json:"stats" yaml:"stats"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Describe returns the view of n and its descendants.
func Describe(n *Node) Field {
	f := Field{
		Name:        n.Name,
		Type:        n.Type.String(),
		Required:    n.Required,
		Description: n.Description,
	}
	if n.ValueRegex != nil {
		f.Regex = n.ValueRegex.String()
	}
	if n.NameRegex != nil {
		f.NameRegex = n.NameRegex.String()
	}
	n.Children.Each(func(c *Node) {
		f.Children = append(f.Children, Describe(c))
	})
	return f
}

// Summarize returns the stats and top-level fields of the grammar at root.
func Summarize(root *Node) Summary {
	return Summary{
		Stats:  root.Stats(),
		Fields: Describe(root).Children,
	}
}
