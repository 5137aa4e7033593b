package template

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePlainTextIsSingleLiteral(t *testing.T) {
	for _, pattern := range []string{"", "no placeholders here", "almost [$ a token", "[:5] on its own"} {
		tokens := Parse(pattern)
		require.Equal(t, []Token{literal(pattern)}, tokens, "pattern %q", pattern)
	}
}

func TestParseSinglePlaceholder(t *testing.T) {
	tokens := Parse("[$ItemTitle$]")
	require.Equal(t, []Token{placeholder("ItemTitle", map[string]string{})}, tokens)
}

func TestParseLiteralsAroundPlaceholders(t *testing.T) {
	tokens := Parse("before [$FeedTitle$] middle [$ItemTitle$] after")
	require.Equal(t, []Token{
		literal("before "),
		placeholder("FeedTitle", map[string]string{}),
		literal(" middle "),
		placeholder("ItemTitle", map[string]string{}),
		literal(" after"),
	}, tokens)
}

func TestParseAdjacentPlaceholders(t *testing.T) {
	tokens := Parse("[$FeedTitle$][$ItemTitle$]")
	require.Len(t, tokens, 2)
	require.Equal(t, "FeedTitle", tokens[0].Content)
	require.Equal(t, "ItemTitle", tokens[1].Content)
}

func TestParseModifiers(t *testing.T) {
	tokens := Parse("[$ItemSummary[:120][?'nothing'][<'pre '][>' post']$]")
	require.Equal(t, []Token{placeholder("ItemSummary", map[string]string{
		ModTrim: "120",
		ModNull: "nothing",
		ModPre:  "pre ",
		ModPost: " post",
	})}, tokens)
}

func TestParseModifierAnyOrder(t *testing.T) {
	tokens := Parse("[$ItemTitle[>'!'][:7]$]")
	require.Equal(t, []Token{placeholder("ItemTitle", map[string]string{
		ModPost: "!",
		ModTrim: "7",
	})}, tokens)
}

func TestParseDuplicateModifierLastWins(t *testing.T) {
	tokens := Parse("[$ItemTitle[:5][:9]$]")
	require.Equal(t, []Token{placeholder("ItemTitle", map[string]string{ModTrim: "9"})}, tokens)
}

func TestParseEmptyQuotedValue(t *testing.T) {
	tokens := Parse("[$ItemLinks[?'']$]")
	require.Equal(t, []Token{placeholder("ItemLinks", map[string]string{ModNull: ""})}, tokens)
}

func TestParseMalformedStaysLiteral(t *testing.T) {
	patterns := []string{
		"[$ItemTitle$",          // unterminated
		"[$Item Title$]",        // space in name
		"[$42$]",                // digits are not a name
		"[$ItemTitle[:0]$]",     // leading zero trim
		"[$ItemTitle[:05]$]",    // leading zero trim
		"[$ItemTitle[:]$]",      // empty trim
		"[$ItemTitle[?bare]$]",  // unquoted null value
		"[$ItemTitle[?'oops]$]", // unterminated quote
		"[$ItemTitle[x'v']$]",   // unknown modifier kind
	}
	for _, pattern := range patterns {
		require.Equal(t, []Token{literal(pattern)}, Parse(pattern), "pattern %q", pattern)
	}
}

func TestParseFalseStartBeforeRealPlaceholder(t *testing.T) {
	tokens := Parse("[[$ItemTitle$]")
	require.Equal(t, []Token{
		literal("["),
		placeholder("ItemTitle", map[string]string{}),
	}, tokens)
}

func TestParseReparseIdempotent(t *testing.T) {
	// For a literal-only pattern, re-parsing the concatenated output yields
	// the identical single-literal sequence.
	pattern := "just some text with ] brackets [ and $ signs"
	first := Parse(pattern)
	require.Len(t, first, 1)
	require.Equal(t, first, Parse(first[0].Content))
}
