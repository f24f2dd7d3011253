// Package cli implements the command-line interface of coapi-validator.
//
// # Overview
//
// The coapi-validator CLI checks YAML and JSON documents against a grammar:
// a declarative description of the fields a document may hold, their types,
// which are required, and the patterns their values and names must match.
// The same grammar drives the HTTP API started by the serve command.
//
// # Commands
//
// validate - Validate documents:
//
//	coapi-validator validate --grammar grammar.yaml api.yaml
//	coapi-validator validate -g cm://apis/grammar --fail-on-error specs/*.yaml
//	coapi-validator validate -g grammar.yaml --input-format json --stdin
//
// Writes a ValidationReport with one outcome per document and a summary.
// Validation stops at the first failure in each document. Use --fail-on-error
// for CI pipelines (non-zero exit when any document fails).
//
// grammar - Inspect a grammar:
//
//	coapi-validator grammar --grammar grammar.yaml --format table
//
// serve - Run the API server:
//
//	coapi-validator serve --grammar grammar.yaml --port 8080
//	coapi-validator serve --config validator.yaml
//
// # Global Flags
//
//	--debug        Enable debug logging
//	--log-json     Output logs in JSON format
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// YAML (default), JSON and table. Reports go to stdout unless --output names
// a file or a ConfigMap (cm://namespace/name[/key]).
//
// # Environment Variables
//
//	LOG_LEVEL     Set logging verbosity (debug, info, warn, error)
//	GRAMMAR_FILE  Default grammar location
//	PORT          Listen port of the serve command
//	KUBECONFIG    Path to kubeconfig for ConfigMap locations
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, unreadable input, failed documents with --fail-on-error)
//	2  Context canceled or timeout
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/coapi/validator/pkg/cli.version=1.0.0'"
package cli
