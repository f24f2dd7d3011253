package checker

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/coapi/validator/pkg/grammar"
	"github.com/coapi/validator/pkg/parser"
	"github.com/coapi/validator/pkg/validation"
)

const tracerName = "github.com/coapi/validator/pkg/checker"

// Checker validates raw documents against one grammar.
type Checker struct {
	grammar  *grammar.Node
	maxDepth int
	tracer   trace.Tracer
}

// Option configures a Checker.
type Option func(*Checker)

// WithMaxDepth limits document nesting.
func WithMaxDepth(n int) Option {
	return func(c *Checker) {
		c.maxDepth = n
	}
}

// WithTracerProvider sets the provider for spans. The global provider is
// used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Checker) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// New returns a Checker for root.
func New(root *grammar.Node, opts ...Option) *Checker {
	c := &Checker{
		grammar:  root,
		maxDepth: parser.DefaultMaxDepth,
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}

	if root != nil {
		grammarNodes.Set(float64(root.Stats().Nodes))
	}
	return c
}

// Grammar returns the grammar the checker validates against.
func (c *Checker) Grammar() *grammar.Node {
	return c.grammar
}

// Check parses data in the given format and validates it.
func (c *Checker) Check(ctx context.Context, data []byte, format parser.Format) validation.Outcome {
	_, span := c.tracer.Start(ctx, "checker.Check", trace.WithAttributes(
		attribute.String("document.format", string(format)),
		attribute.Int("document.bytes", len(data)),
	))
	defer span.End()

	start := time.Now()

	var outcome validation.Outcome
	doc, err := parser.Parse(data, format, parser.WithMaxDepth(c.maxDepth))
	if err != nil {
		documentParseErrors.WithLabelValues(string(format)).Inc()
		outcome = validation.MalformedDocument(err)
	} else {
		outcome = validation.Validate(doc, c.grammar)
	}

	elapsed := time.Since(start)
	validationDuration.Observe(elapsed.Seconds())
	validationTotal.WithLabelValues(outcome.Label()).Inc()

	span.SetAttributes(
		attribute.Bool("validation.valid", outcome.Valid),
		attribute.String("validation.outcome", outcome.Label()),
	)
	if !outcome.Valid {
		span.SetAttributes(attribute.StringSlice("validation.path", outcome.Path))
	}
	if outcome.Kind == validation.KindInternal {
		span.SetStatus(codes.Error, outcome.Message)
	}

	slog.Debug("document validated",
		"format", string(format),
		"valid", outcome.Valid,
		"kind", string(outcome.Kind),
		"path", outcome.Path,
		"duration", elapsed,
	)

	return outcome
}
