package grammar

import (
	"regexp"
)

// Pattern is a compiled regular expression that must match a whole text.
type Pattern struct {
	source string
	re     *regexp.Regexp
}

// CompilePattern compiles source with whole-text match semantics.
func CompilePattern(source string) (*Pattern, error) {
	re, err := regexp.Compile(`^(?:` + source + `)$`)
	if err != nil {
		return nil, err
	}
	return &Pattern{source: source, re: re}, nil
}

// MatchString reports whether the whole of s matches.
func (p *Pattern) MatchString(s string) bool {
	return p.re.MatchString(s)
}

// String returns the pattern as written in the grammar.
func (p *Pattern) String() string {
	return p.source
}
