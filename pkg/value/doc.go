// Package value holds the in-memory form of a parsed document.
//
// A Value is one of Null, Boolean, String or Mapping. Mappings keep the key
// order of the source text and are used for both object-like and array-like
// regions of a document; which one a region is depends only on the grammar
// it is validated against.
package value
