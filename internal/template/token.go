// Package template implements the placeholder-token DSL used to turn feed
// items into webhook messages. A pattern like
//
//	New post from [$FeedTitle$][$ItemAuthorsSmart[?' '][<'by ']$]
//
// compiles once into a token sequence and is then applied to any number of
// items.
package template

// Modifier kinds attachable to a placeholder token.
const (
	ModTrim = "Trim" // [:N]   cut the value down to N characters
	ModNull = "Null" // [?'x'] replacement when the value is empty
	ModPre  = "Pre"  // [<'x'] prefix when the value is not empty
	ModPost = "Post" // [>'x'] suffix when the value is not empty
)

// Token is one segment of a compiled pattern: either a literal run of text,
// or a placeholder name with its modifier map. Modifiers is nil for literals.
type Token struct {
	Content   string
	Modifiers map[string]string
}

func literal(text string) Token {
	return Token{Content: text}
}

func placeholder(name string, mods map[string]string) Token {
	return Token{Content: name, Modifiers: mods}
}

// IsPlaceholder reports whether the token names a registry entry rather than
// carrying literal text.
func (t Token) IsPlaceholder() bool {
	return t.Modifiers != nil
}
