package checker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coapi_validation_total",
			Help: "Total number of validated documents by outcome",
		},
		[]string{"outcome"}, // ok or failure kind
	)

	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "coapi_validation_duration_seconds",
			Help:    "Time taken to parse and validate one document",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	documentParseErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coapi_document_parse_errors_total",
			Help: "Total number of documents that could not be parsed",
		},
		[]string{"format"},
	)

	grammarNodes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "coapi_grammar_nodes",
			Help: "Number of nodes in the loaded grammar",
		},
	)
)
