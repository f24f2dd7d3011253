// Package parser turns YAML or JSON text into a value.Value tree.
//
// Both decoders keep mapping keys in source order, preserve explicit nulls
// and reject duplicate keys. Scalars other than null and boolean are kept as
// their literal text; numeric interpretation is left to validation.
//
// YAML sequences and JSON arrays become mappings keyed by the decimal element
// index ("0", "1", ...), so that array regions of a document can be validated
// the same way as keyed array regions.
package parser
