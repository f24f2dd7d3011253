// Package checker joins parsing and validation for one incoming document
// and exposes them over HTTP.
//
// A Checker is built once around a loaded grammar and is safe for
// concurrent use. Every call records Prometheus metrics and an
// OpenTelemetry span named "checker.Check".
//
// Malformed documents are not errors: they produce a failed outcome of kind
// MalformedDocument, exactly like any other rejected document.
package checker
