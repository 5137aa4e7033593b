// Package source fetches syndication feeds and converts them into the model types consumed by the renderer and the delivery loop.
package source

import (
	"context"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"

	"github.com/0x0BSoD/feedHook/internal/model"
)

type Fetcher struct {
	parser *gofeed.Parser
}

func New(timeout time.Duration, userAgent string) *Fetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	if userAgent != "" {
		parser.UserAgent = userAgent
	}
	return &Fetcher{parser: parser}
}

// Fetch retrieves and parses one feed. Items are returned in feed order,
// which is newest-first for virtually every publisher.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]model.Item, error) {
	feed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, err
	}

	meta := convertMeta(feed)
	return lo.Map(feed.Items, func(item *gofeed.Item, _ int) model.Item {
		return convertItem(item, meta)
	}), nil
}

func convertMeta(feed *gofeed.Feed) *model.Meta {
	meta := &model.Meta{
		Title:       feed.Title,
		Description: feed.Description,
		ID:          feed.FeedLink,
		Language:    feed.Language,
		Copyright:   feed.Copyright,
		URL:         feed.Link,
		Authors:     convertPersons(feed.Authors),
		Categories:  feed.Categories,
		Links:       feed.Links,
		Updated:     derefTime(feed.UpdatedParsed),
	}
	if feed.Image != nil {
		meta.ImageURL = feed.Image.URL
	}
	return meta
}

func convertItem(item *gofeed.Item, meta *model.Meta) model.Item {
	links := item.Links
	if len(links) == 0 && item.Link != "" {
		links = []string{item.Link}
	}

	return model.Item{
		ID:         item.GUID,
		Title:      item.Title,
		Summary:    htmlText(item.Description),
		Content:    htmlText(item.Content),
		Authors:    convertPersons(item.Authors),
		Categories: item.Categories,
		Links:      links,
		URL:        item.Link,
		Published:  derefTime(item.PublishedParsed),
		Updated:    derefTime(item.UpdatedParsed),
		Feed:       meta,
	}
}

// htmlText wraps a feed text field. Feed descriptions and bodies arrive as
// HTML markup; the declared kind lets the token registry convert them once,
// at resolve time.
func htmlText(value string) model.Text {
	if value == "" {
		return model.Text{}
	}
	return model.Text{Kind: model.KindHTML, Value: value}
}

func convertPersons(people []*gofeed.Person) []model.Person {
	return lo.FilterMap(people, func(p *gofeed.Person, _ int) (model.Person, bool) {
		if p == nil {
			return model.Person{}, false
		}
		return model.Person{Name: p.Name, Email: p.Email}, true
	})
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
