// Package validation checks a parsed document against a grammar.
//
// Validate walks the document and the grammar together, depth first and in
// document order, and stops at the first violation:
//
//	outcome := validation.Validate(doc, root)
//	if !outcome.Valid {
//	    fmt.Println(outcome.Summary())
//	    // Validation error at object: title. Object foo does not match [A-Z].* regex pattern.
//	}
//
// Within one object the checks run in a fixed order: every required field
// must be present (declaration order), then no undeclared field may appear
// (document order), then each field in turn is checked for null, for its
// declared type and finally its content.
//
// Validate performs no I/O, keeps its state on the call stack and never
// modifies its inputs, so a single grammar can serve concurrent callers.
package validation
