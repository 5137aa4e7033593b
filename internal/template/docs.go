package template

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// The documentation surface below feeds the configuration tooling's help
// output; rendering itself never consults it.

type modifierDoc struct {
	syntax      string
	example     string
	description string
}

var modifierDocs = []modifierDoc{
	{"[:x]", "[:99]", "Trims text to x characters"},
	{"[?'x']", "[?'example']", "Replaces text with x if missing"},
	{"[<'x']", "[<'example']", "Adds x to front if text not missing"},
	{"[>'x']", "[>'example']", "Adds x to end if text not missing"},
}

func tokenNames() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}

// TokenList is the comma-separated list of every placeholder name.
func TokenList() string {
	return strings.Join(tokenNames(), ", ")
}

// ModifierList is the comma-separated list of every modifier syntax.
func ModifierList() string {
	return strings.Join(lo.Map(modifierDocs, func(m modifierDoc, _ int) string {
		return m.syntax
	}), ", ")
}

// TokenDocs renders a human-readable listing of every token with its
// description, followed by a usage example.
func TokenDocs() string {
	names := tokenNames()
	longest := lo.Max(lo.Map(names, func(n string, _ int) int { return len(n) }))

	var sb strings.Builder
	for _, name := range names {
		fmt.Fprintf(&sb, " - %-*s => %s\n", longest, name, registry[name].description)
	}
	sb.WriteString("\nUsage example:\n" +
		"Raw Text \"New post from [$ItemAuthorsSmart$] with title '[$ItemTitle$]'\"\n" +
		"Becomes  \"New post from Paci with title 'This is how placeholder tokens work!'\"")
	return sb.String()
}

// ModifierDocs renders the modifier listing with examples.
func ModifierDocs() string {
	longestSyntax := lo.Max(lo.Map(modifierDocs, func(m modifierDoc, _ int) int { return len(m.syntax) }))
	longestDesc := lo.Max(lo.Map(modifierDocs, func(m modifierDoc, _ int) int { return len(m.description) }))

	var sb strings.Builder
	for _, m := range modifierDocs {
		fmt.Fprintf(&sb, " - %-*s => %-*s (Example: %s)\n", longestSyntax, m.syntax, longestDesc, m.description, m.example)
	}
	sb.WriteString("\nUsage example:\n" +
		"Raw Text \"[$ItemAuthorsSmart[?'No authors found'][<'Authors: ']$]!\"\n" +
		"Becomes  \"No authors found!\" or \"Authors: Paci!\"")
	return sb.String()
}
