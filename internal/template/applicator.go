package template

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/0x0BSoD/feedHook/internal/config"
	"github.com/0x0BSoD/feedHook/internal/model"
)

const defaultEmptyText = "[null]"

var newlineFilter = regexp.MustCompile(`\r\n?|\n`)

// Applicator is a template compiled into token sequences. Compilation
// happens once; Apply is a pure function over items and can run any number
// of times.
type Applicator struct {
	content   []Token
	embeds    [][]Token
	emptyText string
}

func NewApplicator(def config.Template) *Applicator {
	a := &Applicator{emptyText: defaultEmptyText}
	if def.EmptyText != "" {
		a.emptyText = def.EmptyText
	}
	if def.Content != nil {
		a.content = Parse(*def.Content)
	}
	for _, embed := range def.Embeds {
		a.embeds = append(a.embeds, Parse(embed))
	}
	return a
}

// IsEmpty reports whether the template produces neither content nor embeds.
// An empty template still renders, it just renders "{}".
func (a *Applicator) IsEmpty() bool {
	return a.content == nil && len(a.embeds) == 0
}

// Apply renders the message for one item as a single-line JSON object
// string with a "content" field and/or an "embeds" array, depending on
// which patterns the template defines. Resolver values containing control
// characters other than line breaks can still break the enclosing quoting;
// that is accepted.
func (a *Applicator) Apply(item model.Item) string {
	var fields []string

	if a.content != nil {
		fields = append(fields, `"content": "`+a.applyTokens(item, a.content)+`"`)
	}

	if len(a.embeds) != 0 {
		rendered := lo.Map(a.embeds, func(tokens []Token, _ int) string {
			return `"` + a.applyTokens(item, tokens) + `"`
		})
		fields = append(fields, `"embeds": [`+strings.Join(rendered, ", ")+`]`)
	}

	return "{" + strings.Join(fields, ", ") + "}"
}

func (a *Applicator) applyTokens(item model.Item, tokens []Token) string {
	var sb strings.Builder
	for _, token := range tokens {
		if !token.IsPlaceholder() {
			sb.WriteString(token.Content)
			continue
		}

		resolve, ok := Lookup(token.Content)
		if !ok {
			log.Printf("[WARN] could not find token %q to apply for item %s", token.Content, item.ID)
			sb.WriteString("[$UnknownToken" + token.Content + "$]")
			continue
		}

		result := resolve(item)
		if strings.TrimSpace(result) == "" {
			// Null branch: replacement text only, no other modifier applies.
			if nullText, ok := token.Modifiers[ModNull]; ok {
				sb.WriteString(nullText)
			} else {
				sb.WriteString(a.emptyText)
			}
			continue
		}

		if rawTrim, ok := token.Modifiers[ModTrim]; ok {
			if n, err := strconv.Atoi(rawTrim); err == nil {
				result = trim(result, n)
			} else {
				log.Printf("[WARN] could not convert trim modifier value %q for item %s", rawTrim, item.ID)
			}
		}

		result = escape(result)

		if pre, ok := token.Modifiers[ModPre]; ok {
			result = pre + result
		}
		if post, ok := token.Modifiers[ModPost]; ok {
			result += post
		}

		sb.WriteString(result)
	}
	return sb.String()
}

// trim cuts result down to n characters: a hard cut below ten, otherwise
// n-3 characters plus an ellipsis.
func trim(result string, n int) string {
	runes := []rune(result)
	if len(runes) <= n {
		return result
	}
	if n < 10 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// escape folds every line terminator into a literal \n and escapes double
// quotes so the value survives inside the surrounding quoted JSON string.
func escape(s string) string {
	s = newlineFilter.ReplaceAllString(s, `\n`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
