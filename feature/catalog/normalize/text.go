package normalize

import (
	"html"
	"strings"
)

// CleanText strips markup, decodes HTML entities, collapses whitespace, and
// trims the result. It is the first pass over every free-text upstream field.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	stripped := stripTags(s)
	decoded := html.UnescapeString(stripped)
	return strings.Join(strings.Fields(decoded), " ")
}

// stripTags removes anything between matched angle brackets. An unclosed
// bracket is kept as literal text.
func stripTags(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			if depth == 0 {
				b.WriteString(s[start:i])
				start = i
			}
			depth++
		case '>':
			if depth > 0 {
				depth--
				if depth == 0 {
					// Tags act as word boundaries
					b.WriteByte(' ')
					start = i + 1
				}
			}
		}
	}
	b.WriteString(s[start:])
	return b.String()
}
