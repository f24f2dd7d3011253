package header

import (
	"fmt"
	"strings"
	"time"
)

const (
	// APIVersionDomain is the group suffix of every report apiVersion.
	APIVersionDomain = "coapi.io"
	// APIVersionV1 is the current report schema version.
	APIVersionV1 = "v1"

	// MetadataTimestamp records when a report was produced.
	MetadataTimestamp = "timestamp"
)

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata adds a metadata key-value pair.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind sets the resource kind, e.g. "ValidationReport".
func WithKind(kind string) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion sets the schema version of the resource.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// New creates a Header with a timestamp and the given options applied.
// When a kind is set without an explicit apiVersion, the version is derived
// from the kind.
func New(opts ...Option) *Header {
	h := &Header{
		Metadata: map[string]string{
			MetadataTimestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.Kind != "" && h.APIVersion == "" {
		h.APIVersion = APIVersionFor(h.Kind)
	}
	return h
}

// Header carries Kubernetes-style Kind, APIVersion and Metadata fields for
// reports written by the CLI.
type Header struct {
	Kind       string            `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// APIVersionFor returns "<kind>.coapi.io/v1" with the kind lower-cased.
func APIVersionFor(kind string) string {
	return fmt.Sprintf("%s.%s/%s", strings.ToLower(kind), APIVersionDomain, APIVersionV1)
}
