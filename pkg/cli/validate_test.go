package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/coapi/validator/pkg/checker"
	"github.com/coapi/validator/pkg/grammar"
	"github.com/coapi/validator/pkg/header"
	"github.com/coapi/validator/pkg/parser"
	"github.com/coapi/validator/pkg/validation"
)

var errTest = errors.New("test error")

const testGrammar = `
openapi:
  required: "true"
  type: string
  regex: "3\\.\\d+\\.\\d+"
info:
  required: "true"
  type: object
  children:
    title:
      required: "true"
      type: string
    version:
      type: integer
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func readReport(t *testing.T, path string) ValidationReport {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	var r ValidationReport
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("failed to decode report: %v\n%s", err, data)
	}
	return r
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	g := writeFile(t, dir, "grammar.yaml", testGrammar)
	ok := writeFile(t, dir, "ok.yaml", "openapi: 3.0.1\ninfo:\n  title: Pets\n  version: 2\n")
	missing := writeFile(t, dir, "missing.json", `{"openapi":"3.0.1"}`)
	extra := writeFile(t, dir, "extra.yaml", "openapi: 3.0.1\ninfo:\n  title: Pets\nextra: 1\n")
	out := filepath.Join(dir, "report.json")

	err := newRootCmd().Run(context.Background(), []string{
		name, "validate",
		"--grammar", g,
		"--format", "json",
		"--output", out,
		"--concurrency", "2",
		ok, missing, extra,
	})
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	r := readReport(t, out)
	if r.Kind != ReportKind {
		t.Errorf("kind = %q, want %q", r.Kind, ReportKind)
	}
	if r.APIVersion != header.APIVersionFor(ReportKind) {
		t.Errorf("apiVersion = %q, want %q", r.APIVersion, header.APIVersionFor(ReportKind))
	}
	if r.Grammar != g {
		t.Errorf("grammar = %q, want %q", r.Grammar, g)
	}
	if r.Summary != (ReportSummary{Total: 3, Valid: 1, Invalid: 2}) {
		t.Errorf("summary = %+v", r.Summary)
	}

	want := []struct {
		doc    string
		format parser.Format
		kind   validation.Kind
	}{
		{ok, parser.FormatYAML, ""},
		{missing, parser.FormatJSON, validation.KindRequiredFieldMissing},
		{extra, parser.FormatYAML, validation.KindExcessiveField},
	}
	if len(r.Documents) != len(want) {
		t.Fatalf("documents = %d, want %d", len(r.Documents), len(want))
	}
	for i, w := range want {
		got := r.Documents[i]
		if got.Document != w.doc {
			t.Errorf("documents[%d] = %q, want %q", i, got.Document, w.doc)
		}
		if got.Format != w.format {
			t.Errorf("documents[%d].format = %q, want %q", i, got.Format, w.format)
		}
		if got.Outcome.Kind != w.kind {
			t.Errorf("documents[%d].kind = %q, want %q", i, got.Outcome.Kind, w.kind)
		}
	}
	if r.Documents[0].Outcome.Message != validation.OkMessage {
		t.Errorf("ok message = %q", r.Documents[0].Outcome.Message)
	}
}

func TestValidateCommandFailOnError(t *testing.T) {
	dir := t.TempDir()
	g := writeFile(t, dir, "grammar.yaml", testGrammar)
	bad := writeFile(t, dir, "bad.yaml", "openapi: 2.0\ninfo:\n  title: Pets\n")
	out := filepath.Join(dir, "report.yaml")

	err := newRootCmd().Run(context.Background(), []string{
		name, "validate", "--grammar", g, "--output", out, "--fail-on-error", bad,
	})
	if err == nil {
		t.Fatal("expected error with --fail-on-error")
	}
	if !strings.Contains(err.Error(), "1 of 1 documents failed validation") {
		t.Errorf("error = %v", err)
	}

	// the report is still written before failing
	data, readErr := os.ReadFile(out)
	if readErr != nil {
		t.Fatalf("report not written: %v", readErr)
	}
	if !strings.Contains(string(data), "NoRegexMatch") {
		t.Errorf("report missing failure kind:\n%s", data)
	}
}

func TestValidateCommandStdin(t *testing.T) {
	dir := t.TempDir()
	g := writeFile(t, dir, "grammar.yaml", testGrammar)
	out := filepath.Join(dir, "report.json")

	root := newRootCmd()
	root.Reader = strings.NewReader(`{"openapi":"3.1.0","info":{"title":"Pets","version":"x1"}}`)

	err := root.Run(context.Background(), []string{
		name, "validate", "-g", g, "-t", "json", "-o", out, "--input-format", "json", "--stdin",
	})
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	r := readReport(t, out)
	if len(r.Documents) != 1 {
		t.Fatalf("documents = %d, want 1", len(r.Documents))
	}
	got := r.Documents[0]
	if got.Document != stdinPath || got.Format != parser.FormatJSON {
		t.Errorf("document = %q (%s)", got.Document, got.Format)
	}
	if got.Outcome.Kind != validation.KindBadNumberFormat {
		t.Errorf("kind = %q, want %q", got.Outcome.Kind, validation.KindBadNumberFormat)
	}
}

func TestValidateCommandStdinWithFiles(t *testing.T) {
	dir := t.TempDir()
	g := writeFile(t, dir, "grammar.yaml", testGrammar)
	first := writeFile(t, dir, "a.yaml", "openapi: 3.0.1\ninfo:\n  title: A\n")
	second := writeFile(t, dir, "b.yaml", "openapi: 3.0.1\n")
	out := filepath.Join(dir, "report.json")

	root := newRootCmd()
	root.Reader = strings.NewReader("openapi: 3.0.2\ninfo:\n  title: Stdin\n")

	err := root.Run(context.Background(), []string{
		name, "validate", "-g", g, "-t", "json", "-o", out, "--stdin", first, second,
	})
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	r := readReport(t, out)
	wantDocs := []string{stdinPath, first, second}
	if len(r.Documents) != len(wantDocs) {
		t.Fatalf("documents = %d, want %d", len(r.Documents), len(wantDocs))
	}
	for i, want := range wantDocs {
		if r.Documents[i].Document != want {
			t.Errorf("documents[%d] = %q, want %q", i, r.Documents[i].Document, want)
		}
	}
	if r.Summary != (ReportSummary{Total: 3, Valid: 2, Invalid: 1}) {
		t.Errorf("summary = %+v", r.Summary)
	}
	if r.Documents[2].Outcome.Kind != validation.KindRequiredFieldMissing {
		t.Errorf("kind = %q, want %q", r.Documents[2].Outcome.Kind, validation.KindRequiredFieldMissing)
	}
}

func TestDocumentList(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		stdin     bool
		want      []string
		wantError bool
	}{
		{name: "files", args: []string{"a.yaml", "b.json"}, want: []string{"a.yaml", "b.json"}},
		{name: "stdin only", stdin: true, want: []string{stdinPath}},
		{name: "stdin first", args: []string{"a.yaml"}, stdin: true, want: []string{stdinPath, "a.yaml"}},
		{name: "nothing", wantError: true},
		{name: "bare dash", args: []string{"a.yaml", "-"}, wantError: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := documentList(tt.args, tt.stdin)
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("documents = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateCommandErrors(t *testing.T) {
	dir := t.TempDir()
	g := writeFile(t, dir, "grammar.yaml", testGrammar)
	doc := writeFile(t, dir, "doc.yaml", "openapi: 3.0.1\n")
	t.Setenv("GRAMMAR_FILE", "")

	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{"no documents", []string{"--grammar", g}, "at least one document"},
		{"no grammar", []string{doc}, "grammar location is required"},
		{"bad output format", []string{"--grammar", g, "--format", "xml", doc}, "unknown output format"},
		{"bad input format", []string{"--grammar", g, "--input-format", "toml", doc}, "unknown document format"},
		{"zero concurrency", []string{"--grammar", g, "--concurrency", "0", doc}, "concurrency must be at least 1"},
		{"missing document", []string{"--grammar", g, filepath.Join(dir, "absent.yaml")}, "failed to read document"},
		{"dash before file", []string{"--grammar", g, "-", doc}, "use --stdin"},
		{"dash after file", []string{"--grammar", g, doc, "-"}, "use --stdin"},
		{"dash twice", []string{"--grammar", g, "-", "-"}, "use --stdin"},
		{"missing grammar", []string{"--grammar", filepath.Join(dir, "absent.yaml"), doc}, "failed to read grammar file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{name, "validate", "--output", filepath.Join(dir, "out.yaml")}, tt.args...)
			err := newRootCmd().Run(context.Background(), args)
			if err == nil {
				t.Fatal("expected error but got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestValidateDocumentsKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, n := range []string{"a", "b", "c", "d", "e", "f"} {
		paths = append(paths, writeFile(t, dir, n+".yaml", "openapi: 3.0.1\ninfo:\n  title: "+n+"\n"))
	}

	doc, err := parser.Parse([]byte(testGrammar), parser.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	root, err := grammar.Build(doc)
	if err != nil {
		t.Fatal(err)
	}
	c := checker.New(root)

	results, err := validateDocuments(context.Background(), c, paths, "", nil, 3)
	if err != nil {
		t.Fatalf("validateDocuments failed: %v", err)
	}
	for i, res := range results {
		if res.Document != paths[i] {
			t.Errorf("results[%d] = %q, want %q", i, res.Document, paths[i])
		}
		if !res.Outcome.Valid {
			t.Errorf("results[%d] invalid: %s", i, res.Outcome.Message)
		}
	}
}
