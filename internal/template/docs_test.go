package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenListCoversRegistry(t *testing.T) {
	list := TokenList()
	for name := range registry {
		require.Contains(t, list, name)
	}
}

func TestTokenDocsMentionEveryDescription(t *testing.T) {
	docs := TokenDocs()
	for name, e := range registry {
		require.Contains(t, docs, name)
		require.Contains(t, docs, e.description)
	}
	require.Contains(t, docs, "Usage example:")
}

func TestModifierDocsListAllKinds(t *testing.T) {
	docs := ModifierDocs()
	for _, syntax := range []string{"[:x]", "[?'x']", "[<'x']", "[>'x']"} {
		require.Contains(t, docs, syntax)
	}

	list := ModifierList()
	require.Equal(t, "[:x], [?'x'], [<'x'], [>'x']", list)
}

func TestTokenDocsSorted(t *testing.T) {
	names := tokenNames()
	require.True(t, sortedStrings(names))
	require.Greater(t, len(names), 30)
}

func sortedStrings(names []string) bool {
	for i := 1; i < len(names); i++ {
		if strings.Compare(names[i-1], names[i]) > 0 {
			return false
		}
	}
	return true
}
