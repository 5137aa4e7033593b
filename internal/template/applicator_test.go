package template

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/0x0BSoD/feedHook/internal/config"
	"github.com/0x0BSoD/feedHook/internal/model"
)

func strptr(s string) *string {
	return &s
}

func applyContent(t *testing.T, pattern, emptyText string, item model.Item) string {
	t.Helper()
	a := NewApplicator(config.Template{Content: strptr(pattern), EmptyText: emptyText})
	return a.Apply(item)
}

func TestApplyLiteralOnly(t *testing.T) {
	got := applyContent(t, "hello world", "", model.Item{})
	require.Equal(t, `{"content": "hello world"}`, got)
}

func TestApplyResolvesTokens(t *testing.T) {
	item := model.Item{Title: "First!", Feed: &model.Meta{Title: "Example"}}
	got := applyContent(t, "[$FeedTitle$]: [$ItemTitle$]", "", item)
	require.Equal(t, `{"content": "Example: First!"}`, got)
}

func TestApplyUnknownTokenMarker(t *testing.T) {
	got := applyContent(t, "[$NoSuchToken$]", "", model.Item{})
	require.Equal(t, `{"content": "[$UnknownTokenNoSuchToken$]"}`, got)
}

func TestNullBranchSkipsOtherModifiers(t *testing.T) {
	// Empty resolver value renders only the replacement text; Trim and Pre
	// never touch it.
	got := applyContent(t, "[$ItemSummary[:5][<'S: ']$]", "[MISSING]", model.Item{})
	require.Equal(t, `{"content": "[MISSING]"}`, got)
}

func TestNullModifierBeatsTemplateEmptyText(t *testing.T) {
	got := applyContent(t, "[$ItemSummary[?'n/a']$]", "[MISSING]", model.Item{})
	require.Equal(t, `{"content": "n/a"}`, got)
}

func TestWhitespaceOnlyValueTakesNullBranch(t *testing.T) {
	item := model.Item{Summary: model.Text{Kind: model.KindText, Value: "   \n "}}
	got := applyContent(t, "[$ItemSummary$]", "", item)
	require.Equal(t, `{"content": "[null]"}`, got)
}

func TestTrimBoundaries(t *testing.T) {
	item := model.Item{Title: "abcdefghijkl"} // 12 characters

	// N >= 10 keeps N-3 characters and appends an ellipsis.
	require.Equal(t, `{"content": "abcdefg..."}`, applyContent(t, "[$ItemTitle[:10]$]", "", item))
	// N < 10 is a hard cut.
	require.Equal(t, `{"content": "abcde"}`, applyContent(t, "[$ItemTitle[:5]$]", "", item))
	// Values at or under the limit pass untouched.
	require.Equal(t, `{"content": "abcdefghijkl"}`, applyContent(t, "[$ItemTitle[:12]$]", "", item))
}

func TestTrimIsRuneSafe(t *testing.T) {
	item := model.Item{Title: "こんにちは世界です"}
	require.Equal(t, `{"content": "こんにちは"}`, applyContent(t, "[$ItemTitle[:5]$]", "", item))
}

func TestEscapeQuotesAndNewlines(t *testing.T) {
	item := model.Item{Title: "line \"one\"\r\nline two\nline three\rend"}
	got := applyContent(t, "[$ItemTitle$]", "", item)
	require.Equal(t, `{"content": "line \"one\"\nline two\nline three\nend"}`, got)
}

func TestPreAndPostAppliedAfterEscape(t *testing.T) {
	item := model.Item{Title: "say \"hi\""}
	got := applyContent(t, "[$ItemTitle[<'> '][>' <']$]", "", item)
	// The value is escaped, the Pre/Post text is not.
	require.Equal(t, `{"content": "> say \"hi\" <"}`, got)
}

func TestTrimRunsBeforeEscape(t *testing.T) {
	// Trimming counts the raw characters, not the escaped expansion.
	item := model.Item{Title: `a"b"c`}
	got := applyContent(t, "[$ItemTitle[:3]$]", "", item)
	require.Equal(t, `{"content": "a\"b"}`, got)
}

func TestApplyEmbeds(t *testing.T) {
	a := NewApplicator(config.Template{
		Embeds: []string{"[$ItemTitle$]", "by [$ItemAuthorsByName$]"},
	})
	item := model.Item{Title: "Post", Authors: []model.Person{{Name: "Paci"}}}
	require.Equal(t, `{"embeds": ["Post", "by Paci"]}`, a.Apply(item))
}

func TestApplyContentAndEmbeds(t *testing.T) {
	a := NewApplicator(config.Template{
		Content: strptr("[$ItemTitle$]"),
		Embeds:  []string{"[$FeedTitle$]"},
	})
	item := model.Item{Title: "Post", Feed: &model.Meta{Title: "Example"}}
	require.Equal(t, `{"content": "Post", "embeds": ["Example"]}`, a.Apply(item))
}

func TestApplyEmptyTemplate(t *testing.T) {
	a := NewApplicator(config.Template{})
	require.True(t, a.IsEmpty())
	require.Equal(t, "{}", a.Apply(model.Item{}))
}

func TestIsEmptyFalseWithContent(t *testing.T) {
	a := NewApplicator(config.Template{Content: strptr("")})
	require.False(t, a.IsEmpty())
	require.Equal(t, `{"content": ""}`, a.Apply(model.Item{}))
}

func TestApplyIsPure(t *testing.T) {
	a := NewApplicator(config.Template{Content: strptr("[$ItemTitle$] at [$ItemTimeSmartUnix$]")})
	item := testItem()
	first := a.Apply(item)
	for i := 0; i < 3; i++ {
		require.Equal(t, first, a.Apply(item))
	}
}

func TestEndToEndScenario(t *testing.T) {
	// Template from the webhook's own example config: empty authors take the
	// Null replacement and the Pre text is skipped.
	item := model.Item{Feed: &model.Meta{Title: "Example"}}
	got := applyContent(t, "New post from [$FeedTitle$][$ItemAuthorsSmart[?' '][<'by ']$]", "", item)
	require.Equal(t, `{"content": "New post from Example "}`, got)
}
