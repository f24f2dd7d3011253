package parser

import (
	"github.com/coapi/validator/pkg/defaults"
	"github.com/coapi/validator/pkg/value"
)

const (
	// DefaultMaxDepth bounds mapping nesting when no option overrides it.
	DefaultMaxDepth = defaults.MaxNestingDepth

	// maxAliasExpansions bounds how many YAML aliases a single document may resolve.
	maxAliasExpansions = 10000
)

type options struct {
	maxDepth int
}

// Option configures Parse.
type Option func(*options)

// WithMaxDepth limits mapping nesting. Zero or negative disables the limit.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// Parse decodes data in the given format. Empty input yields a null value.
func Parse(data []byte, format Format, opts ...Option) (value.Value, error) {
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}

	switch format {
	case FormatJSON:
		return parseJSON(data, o)
	case FormatYAML:
		return parseYAML(data, o)
	default:
		return value.Value{}, &Error{Format: format, Message: "unsupported format"}
	}
}
