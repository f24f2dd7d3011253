package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/coapi/validator/pkg/grammar"
	"github.com/coapi/validator/pkg/header"
)

// GrammarKind is the Kind of the summary written by the grammar command.
const GrammarKind = "GrammarSummary"

// GrammarReport describes a loaded grammar.
type GrammarReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Location        string `json:"location" yaml:"location"`
	grammar.Summary `json:",inline" yaml:",inline"`
}

func grammarCmd() *cli.Command {
	return &cli.Command{
		Name:                  "grammar",
		EnableShellCompletion: true,
		Usage:                 "Load a grammar and print its field tree",
		Description: `Loads the grammar, reporting any definition error, and prints its
statistics and field tree: names, types, required flags and patterns.

# Examples

  coapi-validator grammar --grammar grammar.yaml
  coapi-validator grammar -g cm://apis/grammar --format json`,
		Flags: []cli.Flag{
			grammarFlag(),
			outputFlag(),
			formatFlag(),
			kubeconfigFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			root, err := loadGrammar(ctx, cmd)
			if err != nil {
				return err
			}

			report := &GrammarReport{
				Header:   *header.New(header.WithKind(GrammarKind)),
				Location: cmd.String("grammar"),
				Summary:  grammar.Summarize(root),
			}
			return writeOutput(ctx, outFormat, cmd.String("output"), report)
		},
	}
}
