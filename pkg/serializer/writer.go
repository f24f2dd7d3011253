package serializer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
	"k8s.io/client-go/kubernetes"

	"github.com/coapi/validator/pkg/k8s/client"
)

// Format is an output rendering.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// IsUnknown reports whether f is not a supported output format.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// SupportedFormats returns the names of all output formats.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatTable)}
}

// Serializer renders data to some destination.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is implemented by serializers holding resources.
type Closer interface {
	Close() error
}

// Writer renders data to an io.Writer.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer

	mu     sync.Mutex
	closed bool
}

// NewWriter returns a Writer rendering to output. Unknown formats fall back
// to JSON and a nil output means stdout.
func NewWriter(format Format, output io.Writer) *Writer {
	if format.IsUnknown() {
		slog.Warn("unknown output format, using json", "format", string(format))
		format = FormatJSON
	}
	if output == nil {
		output = os.Stdout
	}
	return &Writer{format: format, output: output}
}

// NewStdoutWriter returns a Writer rendering to stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout resolves an output destination: empty or "-" is
// stdout, cm://namespace/name[/key] is a ConfigMap, anything else a file.
func NewFileWriterOrStdout(format Format, path string) (Serializer, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format), nil
	}

	if client.IsConfigMapURI(path) {
		ref, err := client.ParseConfigMapURI(path, defaultConfigMapKey(format))
		if err != nil {
			return nil, err
		}
		return NewConfigMapWriter(format, ref, nil), nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	w := NewWriter(format, f)
	w.closer = f
	return w, nil
}

// Serialize renders data in the writer's format.
func (w *Writer) Serialize(ctx context.Context, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		out []byte
		err error
	)
	switch w.format {
	case FormatYAML:
		out, err = encodeYAML(data)
	case FormatTable:
		out, err = encodeTable(data)
	default:
		out, err = encodeJSON(data)
	}
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return fmt.Errorf("writer is closed")
	}
	if _, err := w.output.Write(out); err != nil {
		return fmt.Errorf("failed to write %s output: %w", w.format, err)
	}
	return nil
}

// Close releases the underlying file, if any. Repeated calls are no-ops.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.closer == nil {
		return nil
	}
	w.closed = true
	return w.closer.Close()
}

func encodeJSON(data any) ([]byte, error) {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize to json: %w", err)
	}
	return append(b, '\n'), nil
}

func encodeYAML(data any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return nil, fmt.Errorf("failed to serialize to yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to serialize to yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// ConfigMapWriter stores rendered data under one key of a ConfigMap.
type ConfigMapWriter struct {
	format Format
	ref    client.ConfigMapRef
	kube   kubernetes.Interface
}

// NewConfigMapWriter returns a writer for ref. A nil client is resolved on
// first use from the ambient kubeconfig.
func NewConfigMapWriter(format Format, ref client.ConfigMapRef, kube kubernetes.Interface) *ConfigMapWriter {
	if format.IsUnknown() {
		format = FormatJSON
	}
	return &ConfigMapWriter{format: format, ref: ref, kube: kube}
}

// Serialize renders data and writes it to the ConfigMap.
func (w *ConfigMapWriter) Serialize(ctx context.Context, data any) error {
	var buf bytes.Buffer
	if err := NewWriter(w.format, &buf).Serialize(ctx, data); err != nil {
		return err
	}

	kube := w.kube
	if kube == nil {
		var err error
		if kube, err = client.GetKubeClient(); err != nil {
			return fmt.Errorf("failed to create kubernetes client: %w", err)
		}
	}

	if err := client.WriteConfigMap(ctx, kube, w.ref, buf.Bytes()); err != nil {
		return err
	}
	slog.Debug("output written to configmap", "configmap", w.ref.String())
	return nil
}

func defaultConfigMapKey(format Format) string {
	switch format {
	case FormatYAML:
		return "report.yaml"
	case FormatTable:
		return "report.txt"
	default:
		return "report.json"
	}
}
