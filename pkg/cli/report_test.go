package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/coapi/validator/pkg/header"
	"github.com/coapi/validator/pkg/parser"
	"github.com/coapi/validator/pkg/serializer"
	"github.com/coapi/validator/pkg/validation"
)

func testReport() *ValidationReport {
	return newReport("grammar.yaml", []DocumentResult{
		{Document: "ok.yaml", Format: parser.FormatYAML, Outcome: validation.Ok()},
		{
			Document: "bad.json",
			Format:   parser.FormatJSON,
			Outcome: validation.Failed(validation.KindExcessiveField,
				"Excessive object extra is present.", []string{"info"}),
		},
	})
}

func TestValidationReportEncodings(t *testing.T) {
	tests := []struct {
		format serializer.Format
		decode func([]byte, any) error
		inline string
	}{
		{serializer.FormatJSON, json.Unmarshal, `"kind": "ValidationReport"`},
		{serializer.FormatYAML, yaml.Unmarshal, "kind: ValidationReport"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := serializer.NewWriter(tt.format, &buf).Serialize(context.Background(), testReport()); err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}
			out := buf.String()

			// header fields sit at the top level, not under "header"
			if !strings.Contains(out, tt.inline) {
				t.Errorf("expected top-level %s in:\n%s", tt.inline, out)
			}
			if strings.Contains(strings.ToLower(out), "header") {
				t.Errorf("header should be inlined:\n%s", out)
			}

			var got ValidationReport
			if err := tt.decode(buf.Bytes(), &got); err != nil {
				t.Fatalf("failed to decode: %v\n%s", err, out)
			}
			if got.APIVersion != header.APIVersionFor(ReportKind) {
				t.Errorf("apiVersion = %q", got.APIVersion)
			}
			if got.Metadata[header.MetadataTimestamp] == "" {
				t.Error("timestamp metadata missing")
			}
			if got.Summary != (ReportSummary{Total: 2, Valid: 1, Invalid: 1}) {
				t.Errorf("summary = %+v", got.Summary)
			}
			if len(got.Documents) != 2 || got.Documents[1].Outcome.Kind != validation.KindExcessiveField {
				t.Errorf("documents = %+v", got.Documents)
			}
		})
	}
}

func TestValidationReportTable(t *testing.T) {
	var buf bytes.Buffer
	if err := serializer.NewWriter(serializer.FormatTable, &buf).Serialize(context.Background(), testReport()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	out := buf.String()

	want := map[string]string{
		"Header.Kind":                  ReportKind,
		"Grammar":                      "grammar.yaml",
		"Documents[0].Document":        "ok.yaml",
		"Documents[0].Outcome.Valid":   "true",
		"Documents[1].Format":          "json",
		"Documents[1].Outcome.Kind":    "ExcessiveField",
		"Documents[1].Outcome.Path[0]": "info",
		"Documents[1].Outcome.Message": "Excessive object extra is present.",
		"Summary.Total":                "2",
		"Summary.Invalid":              "1",
	}
	rows := map[string]string{}
	for _, line := range strings.Split(out, "\n") {
		cols := strings.Fields(line)
		if len(cols) > 0 {
			rows[cols[0]] = strings.Join(cols[1:], " ")
		}
	}
	for field, value := range want {
		got, ok := rows[field]
		if !ok {
			t.Errorf("row %s missing:\n%s", field, out)
			continue
		}
		if got != value {
			t.Errorf("row %s = %q, want %q", field, got, value)
		}
	}
}
