package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/coapi/validator/pkg/checker"
	"github.com/coapi/validator/pkg/defaults"
	"github.com/coapi/validator/pkg/header"
	"github.com/coapi/validator/pkg/parser"
	"github.com/coapi/validator/pkg/validation"
)

const (
	// ReportKind is the Kind of the report written by the validate command.
	ReportKind = "ValidationReport"

	// stdinPath names standard input in the report.
	stdinPath = "-"
)

// ValidationReport is the output of the validate command.
type ValidationReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Grammar   string           `json:"grammar" yaml:"grammar"`
	Documents []DocumentResult `json:"documents" yaml:"documents"`
	Summary   ReportSummary    `json:"summary" yaml:"summary"`
}

// DocumentResult is the outcome for a single input document.
type DocumentResult struct {
	Document string             `json:"document" yaml:"document"`
	Format   parser.Format      `json:"format" yaml:"format"`
	Outcome  validation.Outcome `json:"outcome" yaml:"outcome"`
}

// ReportSummary counts documents by result.
type ReportSummary struct {
	Total   int `json:"total" yaml:"total"`
	Valid   int `json:"valid" yaml:"valid"`
	Invalid int `json:"invalid" yaml:"invalid"`
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate documents against a grammar",
		ArgsUsage:             "DOCUMENT...",
		Description: `Validates one or more YAML or JSON documents against a grammar and writes
a ValidationReport with the outcome of every document.

Each document stops at its first failure. Documents are checked concurrently;
the report lists them in argument order. Use --stdin to also read a document
from standard input; it is listed first.

# Examples

Validate a single file:
  coapi-validator validate --grammar grammar.yaml openapi.yaml

Validate with a grammar stored in a ConfigMap and fail the run on errors:
  coapi-validator validate -g cm://apis/grammar --fail-on-error api/*.yaml

Read JSON from stdin:
  cat api.json | coapi-validator validate -g grammar.yaml --input-format json --stdin`,
		Flags: []cli.Flag{
			grammarFlag(),
			&cli.StringFlag{
				Name:    "input-format",
				Aliases: []string{"i"},
				Usage:   fmt.Sprintf("document format %v (default: detected from the file extension)", parser.SupportedFormats),
			},
			&cli.BoolFlag{
				Name:  "stdin",
				Usage: "validate a document read from standard input",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "exit with a non-zero status if any document fails validation",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Value: defaults.ValidateConcurrency,
				Usage: "maximum number of documents validated at once",
			},
			outputFlag(),
			formatFlag(),
			kubeconfigFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			docs, err := documentList(cmd.Args().Slice(), cmd.Bool("stdin"))
			if err != nil {
				return err
			}

			var inFormat parser.Format
			if s := cmd.String("input-format"); s != "" {
				if inFormat, err = parser.ParseFormat(s); err != nil {
					return err
				}
			}

			concurrency := int(cmd.Int("concurrency"))
			if concurrency < 1 {
				return fmt.Errorf("concurrency must be at least 1, got %d", concurrency)
			}

			root, err := loadGrammar(ctx, cmd)
			if err != nil {
				return err
			}

			stdin := cmd.Root().Reader
			if stdin == nil {
				stdin = os.Stdin
			}

			results, err := validateDocuments(ctx, checker.New(root), docs, inFormat, stdin, concurrency)
			if err != nil {
				return err
			}

			report := newReport(cmd.String("grammar"), results)
			if err := writeOutput(ctx, outFormat, cmd.String("output"), report); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			if cmd.Bool("fail-on-error") && report.Summary.Invalid > 0 {
				return fmt.Errorf("%d of %d documents failed validation",
					report.Summary.Invalid, report.Summary.Total)
			}
			return nil
		},
	}
}

// documentList returns the documents to check, with standard input first
// when useStdin is set. A bare "-" is rejected: the flag parser drops
// every argument after it.
func documentList(args []string, useStdin bool) ([]string, error) {
	for _, a := range args {
		if a == stdinPath {
			return nil, fmt.Errorf("%q is not a document path, use --stdin to read standard input", a)
		}
	}

	var docs []string
	if useStdin {
		docs = append(docs, stdinPath)
	}
	docs = append(docs, args...)
	if len(docs) == 0 {
		return nil, fmt.Errorf("at least one document is required (or --stdin)")
	}
	return docs, nil
}

// validateDocuments checks every document with at most limit in flight.
// Results keep the order of paths. Only I/O errors abort the run;
// validation failures are part of the results.
func validateDocuments(ctx context.Context, c *checker.Checker, paths []string,
	format parser.Format, stdin io.Reader, limit int) ([]DocumentResult, error) {

	results := make([]DocumentResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		g.Go(func() error {
			data, err := readDocument(path, stdin)
			if err != nil {
				return err
			}

			f := format
			if f == "" {
				f = parser.FormatFromPath(path)
			}

			outcome := c.Check(ctx, data, f)
			slog.Debug("document checked",
				"document", path,
				"format", f,
				"outcome", outcome.Label())

			results[i] = DocumentResult{Document: path, Format: f, Outcome: outcome}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func readDocument(path string, stdin io.Reader) ([]byte, error) {
	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return data, nil
}

func newReport(grammarLocation string, results []DocumentResult) *ValidationReport {
	r := &ValidationReport{
		Header:    *header.New(header.WithKind(ReportKind)),
		Grammar:   grammarLocation,
		Documents: results,
	}
	for _, res := range results {
		r.Summary.Total++
		if res.Outcome.Valid {
			r.Summary.Valid++
		} else {
			r.Summary.Invalid++
		}
	}
	return r
}
