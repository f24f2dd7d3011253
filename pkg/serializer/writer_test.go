package serializer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/coapi/validator/pkg/k8s/client"
	"github.com/coapi/validator/pkg/validation"
)

func testOutcomes() []validation.Outcome {
	return []validation.Outcome{
		validation.Ok(),
		validation.Failed(validation.KindRequiredFieldMissing,
			"Required object title is not present.", []string{"info"}),
	}
}

// tableValue returns the VALUE column of the row named field.
func tableValue(table, field string) (string, bool) {
	for _, line := range strings.Split(table, "\n") {
		cols := strings.Fields(line)
		if len(cols) > 0 && cols[0] == field {
			return strings.Join(cols[1:], " "), true
		}
	}
	return "", false
}

func TestWriter_SerializeOutcomes(t *testing.T) {
	tests := []struct {
		format Format
		decode func([]byte, any) error
	}{
		{FormatJSON, json.Unmarshal},
		{FormatYAML, yaml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewWriter(tt.format, &buf).Serialize(context.Background(), testOutcomes()); err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}

			var got []validation.Outcome
			if err := tt.decode(buf.Bytes(), &got); err != nil {
				t.Fatalf("failed to decode %s: %v\n%s", tt.format, err, buf.String())
			}
			if len(got) != 2 {
				t.Fatalf("outcomes = %d, want 2", len(got))
			}
			if !got[0].Valid || got[0].Message != validation.OkMessage {
				t.Errorf("outcomes[0] = %+v", got[0])
			}
			if got[1].Kind != validation.KindRequiredFieldMissing || got[1].Location() != "info" {
				t.Errorf("outcomes[1] = %+v", got[1])
			}
			if strings.Contains(buf.String(), "kind: \"\"") {
				t.Errorf("empty kind should be omitted:\n%s", buf.String())
			}
		})
	}
}

func TestWriter_SerializeOutcomesTable(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), testOutcomes()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "FIELD") || !strings.Contains(strings.SplitN(out, "\n", 2)[0], "VALUE") {
		t.Errorf("missing table header:\n%s", out)
	}

	want := map[string]string{
		"[0].Valid":   "true",
		"[0].Path":    "<empty>",
		"[1].Valid":   "false",
		"[1].Kind":    "RequiredFieldMissing",
		"[1].Message": "Required object title is not present.",
		"[1].Path[0]": "info",
	}
	for field, value := range want {
		got, ok := tableValue(out, field)
		if !ok {
			t.Errorf("row %s missing:\n%s", field, out)
			continue
		}
		if got != value {
			t.Errorf("row %s = %q, want %q", field, got, value)
		}
	}
}

func TestWriter_SerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), []validation.Outcome{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<empty>") {
		t.Errorf("expected <empty> for no outcomes, got:\n%s", buf.String())
	}
}

func TestNewWriter_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	if err := w.Serialize(context.Background(), validation.Ok()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	var got validation.Outcome
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	if !got.Valid {
		t.Errorf("decoded %+v", got)
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		if Format(f).IsUnknown() {
			t.Errorf("supported format %q reported unknown", f)
		}
	}
	for _, f := range []Format{"", "xml", "JSON"} {
		if !f.IsUnknown() {
			t.Errorf("format %q should be unknown", f)
		}
	}
	if n := len(SupportedFormats()); n != 3 {
		t.Errorf("SupportedFormats() len = %d, want 3", n)
	}
}

func TestWriter_CloseStdoutIsSafe(t *testing.T) {
	w := NewStdoutWriter(FormatJSON)
	for range 2 {
		if err := w.Close(); err != nil {
			t.Errorf("Close on stdout writer: %v", err)
		}
	}
}

func TestNewFileWriterOrStdout_Stdout(t *testing.T) {
	for _, path := range []string{"", "  ", "\t", "-"} {
		w, err := NewFileWriterOrStdout(FormatYAML, path)
		if err != nil {
			t.Fatalf("destination %q: %v", path, err)
		}
		if _, ok := w.(*Writer); !ok {
			t.Errorf("destination %q: got %T, want *Writer", path, w)
		}
	}
}

func TestNewFileWriterOrStdout_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outcome.json")

	w, err := NewFileWriterOrStdout(FormatJSON, path)
	if err != nil {
		t.Fatalf("NewFileWriterOrStdout failed: %v", err)
	}
	want := testOutcomes()[1]
	if err := w.Serialize(context.Background(), want); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := w.(Closer).Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	var got validation.Outcome
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("failed to decode output file: %v", err)
	}
	if got.Kind != want.Kind || got.Message != want.Message {
		t.Errorf("decoded %+v, want %+v", got, want)
	}

	if err := w.Serialize(context.Background(), want); err == nil {
		t.Error("expected error when serializing to a closed writer")
	}
}

func TestNewFileWriterOrStdout_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		errMsg string
	}{
		{"missing directory", "/nonexistent/path/report.json", "failed to create output file"},
		{"configmap without name", "cm://namespace", "invalid ConfigMap URI"},
		{"configmap without namespace", "cm:///name", "invalid ConfigMap URI"},
		{"configmap empty", "cm://", "invalid ConfigMap URI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewFileWriterOrStdout(FormatJSON, tt.path)
			if err == nil {
				t.Fatalf("expected error for %q", tt.path)
			}
			if w != nil {
				t.Error("expected nil writer on error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestNewFileWriterOrStdout_ConfigMapDefaultKey(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "report.json"},
		{FormatYAML, "report.yaml"},
		{FormatTable, "report.txt"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			w, err := NewFileWriterOrStdout(tt.format, "cm://coapi/report")
			if err != nil {
				t.Fatalf("NewFileWriterOrStdout failed: %v", err)
			}
			cmw, ok := w.(*ConfigMapWriter)
			if !ok {
				t.Fatalf("got %T, want *ConfigMapWriter", w)
			}
			if cmw.ref.Key != tt.want {
				t.Errorf("key = %q, want %q", cmw.ref.Key, tt.want)
			}
		})
	}
}

func TestConfigMapWriter_Serialize(t *testing.T) {
	kube := fake.NewClientset()
	ref := client.ConfigMapRef{Namespace: "coapi", Name: "report", Key: "report.yaml"}
	want := testOutcomes()[1]

	if err := NewConfigMapWriter(FormatYAML, ref, kube).Serialize(context.Background(), want); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	cm, err := kube.CoreV1().ConfigMaps("coapi").Get(context.Background(), "report", metav1.GetOptions{})
	if err != nil {
		t.Fatalf("ConfigMap not created: %v", err)
	}
	var got validation.Outcome
	if err := yaml.Unmarshal([]byte(cm.Data["report.yaml"]), &got); err != nil {
		t.Fatalf("failed to decode stored YAML: %v", err)
	}
	if got.Kind != want.Kind || got.Location() != "info" {
		t.Errorf("stored %+v, want %+v", got, want)
	}
}

func TestWriter_SerializeCanceledContext(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewWriter(FormatJSON, &buf).Serialize(ctx, validation.Ok()); err == nil {
		t.Error("expected error for canceled context")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
