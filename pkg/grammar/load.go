package grammar

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"k8s.io/client-go/kubernetes"

	"github.com/coapi/validator/pkg/k8s/client"
	"github.com/coapi/validator/pkg/parser"
)

// DefaultConfigMapKey is the data key read when a cm:// location names none.
const DefaultConfigMapKey = "grammar.yaml"

type loadOptions struct {
	kubeClient kubernetes.Interface
	kubeconfig string
	maxDepth   int
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithKubeClient sets the client used for cm:// locations.
func WithKubeClient(c kubernetes.Interface) LoadOption {
	return func(o *loadOptions) {
		o.kubeClient = c
	}
}

// WithKubeconfig sets the kubeconfig used when no client is injected.
func WithKubeconfig(path string) LoadOption {
	return func(o *loadOptions) {
		o.kubeconfig = path
	}
}

// WithMaxDepth limits nesting of the grammar document.
func WithMaxDepth(n int) LoadOption {
	return func(o *loadOptions) {
		o.maxDepth = n
	}
}

// Load reads and builds the grammar at location, which is either a file path
// or a cm://namespace/name[/key] ConfigMap reference. The format is taken
// from the file or key extension, defaulting to YAML.
func Load(ctx context.Context, location string, opts ...LoadOption) (*Node, error) {
	o := &loadOptions{maxDepth: parser.DefaultMaxDepth}
	for _, opt := range opts {
		opt(o)
	}

	if location == "" {
		return nil, fmt.Errorf("grammar location is empty")
	}

	start := time.Now()
	data, name, err := read(ctx, location, o)
	if err != nil {
		return nil, err
	}

	doc, err := parser.Parse(data, parser.FormatFromPath(name), parser.WithMaxDepth(o.maxDepth))
	if err != nil {
		return nil, fmt.Errorf("failed to parse grammar %s: %w", location, err)
	}

	root, err := Build(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build grammar %s: %w", location, err)
	}

	stats := root.Stats()
	slog.Debug("grammar loaded",
		"location", location,
		"nodes", stats.Nodes,
		"depth", stats.Depth,
		"duration", time.Since(start))

	return root, nil
}

// read returns the raw grammar and the name used for format detection.
func read(ctx context.Context, location string, o *loadOptions) ([]byte, string, error) {
	if !client.IsConfigMapURI(location) {
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read grammar file: %w", err)
		}
		return data, location, nil
	}

	ref, err := client.ParseConfigMapURI(location, DefaultConfigMapKey)
	if err != nil {
		return nil, "", err
	}

	c := o.kubeClient
	if c == nil {
		if o.kubeconfig != "" {
			c, err = client.BuildKubeClient(o.kubeconfig)
		} else {
			c, err = client.GetKubeClient()
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to create kubernetes client: %w", err)
		}
	}

	data, err := client.ReadConfigMap(ctx, c, ref)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read grammar: %w", err)
	}
	return data, ref.Key, nil
}
