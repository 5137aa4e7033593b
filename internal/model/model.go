// Package model defines the data structures used in the feedHook application, including Meta, Item, Person and Text. These structures represent a parsed syndication feed, its entries and the typed text content attached to them.
package model

import "time"

// Text kinds as declared by the feed. Anything else is passed through verbatim.
const (
	KindText = "text"
	KindHTML = "html"
	KindURL  = "url"
)

// Text is a typed piece of feed content. An empty Value means the field
// is absent regardless of Kind.
type Text struct {
	Kind  string
	Value string
}

func (t Text) Present() bool {
	return t.Value != ""
}

type Person struct {
	Name  string
	Email string
}

// Meta holds feed-level metadata shared by all items of one feed.
type Meta struct {
	Title        string
	Description  string
	ID           string
	Language     string
	Copyright    string
	URL          string
	ImageURL     string
	Authors      []Person
	Contributors []Person
	Categories   []string
	Links        []string
	Updated      time.Time
}

// Item is a single feed entry. An absent timestamp is the zero time.
type Item struct {
	ID           string
	Title        string
	Summary      Text
	Content      Text
	Authors      []Person
	Contributors []Person
	Categories   []string
	Links        []string
	URL          string
	Copyright    string
	Published    time.Time
	Updated      time.Time
	Feed         *Meta
}

// EffectiveTime is the updated time when the feed provides one,
// the published time otherwise.
func (i Item) EffectiveTime() time.Time {
	if !i.Updated.IsZero() {
		return i.Updated
	}
	return i.Published
}
