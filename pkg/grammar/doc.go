// Package grammar holds the immutable schema tree that documents are
// validated against.
//
// A grammar is written as YAML (or JSON). The top level is a mapping of field
// name to field definition and becomes an implicit object node named <root>:
//
//	info:
//	  required: "true"
//	  type: object
//	  children:
//	    title:
//	      required: "true"
//	      type: string
//	      regex: "[A-Z].*"
//	paths:
//	  type: array
//	  children:
//	    "^/[a-z/]*$":
//	      type: object
//	      children:
//	        get:
//	          type: object
//	          children: {}
//
// Definition keys:
//
//	required    "true" (any case) or boolean true marks the field mandatory
//	type        object | array | string | integer | unsignedInteger | boolean
//	children    nested definitions; mandatory for object and array, forbidden otherwise
//	regex       whole-value pattern for string fields
//	nameRegex   pattern every key of the enclosing array must match
//	description free text, ignored by validation
//
// An array declares exactly one child, the element schema. When that child's
// key starts with "^" and no nameRegex is given, the key itself is the
// element name pattern. All patterns must match the whole text.
//
// Build and Load are the only constructors. Once built, a Node tree is never
// modified and may be shared by any number of goroutines.
package grammar
