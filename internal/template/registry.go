package template

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/0x0BSoD/feedHook/internal/htmltext"
	"github.com/0x0BSoD/feedHook/internal/model"
)

// Resolver produces the raw replacement value of a placeholder for one item.
// Resolvers are pure; an absent field resolves to the empty string.
type Resolver func(model.Item) string

type entry struct {
	description string
	resolve     Resolver
}

// Lookup returns the resolver registered under name.
func Lookup(name string) (Resolver, bool) {
	e, ok := registry[name]
	if !ok {
		return nil, false
	}
	return e.resolve, true
}

type personMode int

const (
	byName personMode = iota
	byEmail
	smart
)

// renderPerson formats one author or contributor. Smart mode falls back to
// the literal "Unknown" when the person carries neither name nor email;
// the plain modes resolve to an empty string instead.
func renderPerson(p model.Person, mode personMode) string {
	name := strings.TrimSpace(p.Name)
	email := strings.TrimSpace(p.Email)

	switch mode {
	case byName:
		return name
	case byEmail:
		return email
	case smart:
		if name != "" {
			if email != "" {
				return name + "(" + email + ")"
			}
			return name
		}
		if email != "" {
			return email
		}
		return "Unknown"
	}
	return ""
}

func joinPersons(people []model.Person, mode personMode) string {
	return strings.Join(lo.Map(people, func(p model.Person, _ int) string {
		return renderPerson(p, mode)
	}), ", ")
}

func joinPaths(links []string) string {
	return strings.Join(lo.Map(links, func(l string, _ int) string {
		return urlPath(l)
	}), ", ")
}

// urlPath reduces a URL to its path component, mirroring how link-valued
// tokens have always rendered. Unparsable input passes through untouched.
func urlPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Path
}

// renderText resolves typed content: html is converted to plain text, a url
// reference resolves to its path, anything else passes through verbatim.
func renderText(t model.Text) string {
	switch t.Kind {
	case model.KindHTML:
		return htmltext.Convert(t.Value)
	case model.KindURL:
		return urlPath(t.Value)
	default:
		return t.Value
	}
}

func meta(i model.Item) model.Meta {
	if i.Feed == nil {
		return model.Meta{}
	}
	return *i.Feed
}

const (
	layoutMinute = "2006/01/02 15:04"
	layoutSecond = "2006/01/02 15:04:05"
	layoutDate   = "2006/01/02"
)

func smartTime(i model.Item, layout string) string {
	return i.EffectiveTime().Format(layout)
}

var registry = map[string]entry{
	"FeedAuthorsByEmail":      {"All feed authors by email only", func(i model.Item) string { return joinPersons(meta(i).Authors, byEmail) }},
	"FeedAuthorsByName":       {"All feed authors by name only", func(i model.Item) string { return joinPersons(meta(i).Authors, byName) }},
	"FeedAuthorsSmart":        {"All feed authors by name and email", func(i model.Item) string { return joinPersons(meta(i).Authors, smart) }},
	"FeedCategories":          {"All feed categories", func(i model.Item) string { return strings.Join(meta(i).Categories, ", ") }},
	"FeedContributorsByEmail": {"All feed contributors by email only", func(i model.Item) string { return joinPersons(meta(i).Contributors, byEmail) }},
	"FeedContributorsByName":  {"All feed contributors by name only", func(i model.Item) string { return joinPersons(meta(i).Contributors, byName) }},
	"FeedContributorsSmart":   {"All feed contributors by name and email", func(i model.Item) string { return joinPersons(meta(i).Contributors, smart) }},
	"FeedCopyright":           {"Feed copyright text", func(i model.Item) string { return meta(i).Copyright }},
	"FeedDescription":         {"Description of feed", func(i model.Item) string { return meta(i).Description }},
	"FeedId":                  {"Identifier of feed", func(i model.Item) string { return meta(i).ID }},
	"FeedImage":               {"Image URL for feed", func(i model.Item) string { return urlPath(meta(i).ImageURL) }},
	"FeedLanguage":            {"Language of feed", func(i model.Item) string { return meta(i).Language }},
	"FeedLastUpdated":         {"Time and date of last feed update", func(i model.Item) string { return meta(i).Updated.String() }},
	"FeedLinks":               {"List of links from feed", func(i model.Item) string { return joinPaths(meta(i).Links) }},
	"FeedTitle":               {"Title of feed", func(i model.Item) string { return meta(i).Title }},
	"FeedUrl":                 {"Url of feed", func(i model.Item) string { return meta(i).URL }},

	"ItemAuthorsByEmail":      {"All item authors by email only", func(i model.Item) string { return joinPersons(i.Authors, byEmail) }},
	"ItemAuthorsByName":       {"All item authors by name only", func(i model.Item) string { return joinPersons(i.Authors, byName) }},
	"ItemAuthorsSmart":        {"All item authors by name and email", func(i model.Item) string { return joinPersons(i.Authors, smart) }},
	"ItemCategories":          {"List of item categories", func(i model.Item) string { return strings.Join(i.Categories, ", ") }},
	"ItemContent":             {"Content of item", func(i model.Item) string { return renderText(i.Content) }},
	"ItemContentSmart":        {"Content or summary of item", resolveContentSmart},
	"ItemContentType":         {"Content type of item", func(i model.Item) string { return i.Content.Kind }},
	"ItemContributorsByEmail": {"All item contributors by email only", func(i model.Item) string { return joinPersons(i.Contributors, byEmail) }},
	"ItemContributorsByName":  {"All item contributors by name only", func(i model.Item) string { return joinPersons(i.Contributors, byName) }},
	"ItemContributorsSmart":   {"All item contributors by name and email", func(i model.Item) string { return joinPersons(i.Contributors, smart) }},
	"ItemCopyright":           {"Item copyright text", func(i model.Item) string { return i.Copyright }},
	"ItemId":                  {"Identifier of item", func(i model.Item) string { return i.ID }},
	"ItemLastUpdated":         {"Time and date of last item update", func(i model.Item) string { return i.Updated.String() }},
	"ItemLinks":               {"List of links from item", func(i model.Item) string { return joinPaths(i.Links) }},
	"ItemPublished":           {"Time and date of publishing time", func(i model.Item) string { return i.Published.String() }},
	"ItemSummary":             {"Summary of item contents", func(i model.Item) string { return renderText(i.Summary) }},
	"ItemTimeSmart":           {"HH:MM and date of last item update or publish", func(i model.Item) string { return smartTime(i, layoutMinute) }},
	"ItemTimeSmartDate":       {"Date of last item update or publish", func(i model.Item) string { return smartTime(i, layoutDate) }},
	"ItemTimeSmartFull":       {"HH:MM:SS and date of last item update or publish", func(i model.Item) string { return smartTime(i, layoutSecond) }},
	"ItemTimeSmartUnix":       {"Unix time of last item update or publish", func(i model.Item) string { return strconv.FormatInt(i.EffectiveTime().Unix(), 10) }},
	"ItemTitle":               {"Title of item", func(i model.Item) string { return i.Title }},
	"ItemUrl":                 {"Url of item", func(i model.Item) string { return i.URL }},
}

// resolveContentSmart prefers the item's content over its summary. Only a
// truly absent content field falls through to the summary; content that
// renders empty stays empty.
func resolveContentSmart(i model.Item) string {
	if i.Content.Present() {
		return renderText(i.Content)
	}
	return renderText(i.Summary)
}
