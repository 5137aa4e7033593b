// Package htmltext converts HTML fragments from feed content into plain text.
package htmltext

import (
	"regexp"
	"strings"

	"github.com/go-shiori/go-readability"
)

var redundantNewLines = regexp.MustCompile(`\n{3,}`)

// Convert returns the plain-text rendering of an HTML fragment.
// It is a pure function: same input, same output, no side effects.
func Convert(html string) string {
	doc, err := readability.FromReader(strings.NewReader(html), nil)
	if err == nil {
		if text := cleanup(doc.TextContent); text != "" {
			return text
		}
	}

	// Short fragments carry no extractable article; strip tags instead.
	return cleanup(stripTags(html))
}

func cleanup(text string) string {
	return strings.TrimSpace(redundantNewLines.ReplaceAllString(text, "\n"))
}

func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
