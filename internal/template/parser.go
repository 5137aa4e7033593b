package template

import "strings"

// Parse splits a raw pattern into an ordered token sequence. Parsing is
// purely syntactic and never fails: anything that does not match the
// placeholder grammar
//
//	[$Name$]  with Name one or more letters, followed by any number of
//	[:N] [?'text'] [<'text'] [>'text'] modifier clauses before the $]
//
// stays literal text. A pattern without placeholders parses to a single
// literal token equal to the whole pattern. When the same modifier kind
// appears more than once, the last occurrence wins.
func Parse(pattern string) []Token {
	var tokens []Token
	next := 0
	pos := 0
	for {
		open := strings.Index(pattern[pos:], "[$")
		if open < 0 {
			break
		}
		start := pos + open

		tok, end, ok := scanPlaceholder(pattern, start)
		if !ok {
			// Not a placeholder, keep looking past this bracket.
			pos = start + 1
			continue
		}

		if start != next {
			tokens = append(tokens, literal(pattern[next:start]))
		}
		tokens = append(tokens, tok)
		next = end
		pos = end
	}

	if tokens == nil {
		return []Token{literal(pattern)}
	}
	if next != len(pattern) {
		tokens = append(tokens, literal(pattern[next:]))
	}
	return tokens
}

// scanPlaceholder tries to read one full placeholder starting at start,
// which must point at "[$". It returns the token and the index just past
// the closing "$]".
func scanPlaceholder(pattern string, start int) (Token, int, bool) {
	i := start + 2

	j := i
	for j < len(pattern) && isLetter(pattern[j]) {
		j++
	}
	if j == i {
		return Token{}, 0, false
	}
	name := pattern[i:j]

	mods := map[string]string{}
	for j < len(pattern) && pattern[j] == '[' {
		kind, value, end, ok := scanModifier(pattern, j)
		if !ok {
			break
		}
		mods[kind] = value
		j = end
	}

	if !strings.HasPrefix(pattern[j:], "$]") {
		return Token{}, 0, false
	}
	return placeholder(name, mods), j + 2, true
}

// scanModifier reads one bracketed modifier clause starting at the '[' at i.
func scanModifier(pattern string, i int) (kind, value string, end int, ok bool) {
	k := i + 1
	if k >= len(pattern) {
		return "", "", 0, false
	}

	switch pattern[k] {
	case ':':
		k++
		d := k
		for d < len(pattern) && pattern[d] >= '0' && pattern[d] <= '9' {
			d++
		}
		// Positive integer literal, no leading zero.
		if d == k || pattern[k] == '0' {
			return "", "", 0, false
		}
		if d >= len(pattern) || pattern[d] != ']' {
			return "", "", 0, false
		}
		return ModTrim, pattern[k:d], d + 1, true

	case '?', '<', '>':
		switch pattern[k] {
		case '?':
			kind = ModNull
		case '<':
			kind = ModPre
		case '>':
			kind = ModPost
		}
		k++
		if k >= len(pattern) || pattern[k] != '\'' {
			return "", "", 0, false
		}
		k++
		quote := strings.IndexByte(pattern[k:], '\'')
		if quote < 0 {
			return "", "", 0, false
		}
		d := k + quote + 1
		if d >= len(pattern) || pattern[d] != ']' {
			return "", "", 0, false
		}
		return kind, pattern[k : k+quote], d + 1, true
	}

	return "", "", 0, false
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
