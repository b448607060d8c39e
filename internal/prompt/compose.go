package prompt

import (
	"strings"
	"unicode"
)

// SectionSeparator joins adjacent sections in a composed prompt.
const SectionSeparator = "\n\n"

// isTrimmable reports whether r is stripped from section edges: Unicode
// white space and line terminators plus the byte-order mark, but not NEL.
func isTrimmable(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// Normalize trims leading and trailing whitespace from a section, including
// a leading byte-order mark from files saved with one.
// Internal formatting is left untouched.
func Normalize(section string) string {
	return strings.TrimFunc(section, isTrimmable)
}

// BuildSystemPrompt assembles the Miles system prompt.
// Pure function: same inputs → same output.
//
// Built-in sections come first in registry order, followed by extraSections
// in the order given. Every section is normalized and sections that end up
// empty are dropped, so whitespace-only extensions never leave a stray
// separator behind.
func BuildSystemPrompt(extraSections ...string) string {
	parts := make([]string, 0, len(builtinSections)+len(extraSections))

	for _, s := range builtinSections {
		if content := Normalize(s.Content); content != "" {
			parts = append(parts, content)
		}
	}

	for _, s := range extraSections {
		if content := Normalize(s); content != "" {
			parts = append(parts, content)
		}
	}

	return strings.Join(parts, SectionSeparator)
}
