// Package notifier drives the fetch-render-deliver cycle over all configured feeds.
package notifier

import (
	"context"
	"log"
	"time"

	"github.com/0x0BSoD/feedHook/internal/config"
	"github.com/0x0BSoD/feedHook/internal/model"
	"github.com/0x0BSoD/feedHook/internal/template"
)

type SourceFetcher interface {
	Fetch(ctx context.Context, url string) ([]model.Item, error)
}

type Sink interface {
	Send(ctx context.Context, message string) error
}

type ConfigStore interface {
	Feeds() map[string]*config.Feed
	AdvanceWatermark(name string, ts int64)
}

type Notifier struct {
	store       ConfigStore
	fetcher     SourceFetcher
	sink        Sink
	applicators map[string]*template.Applicator
	interval    time.Duration
	sendDelay   time.Duration
}

func New(
	store ConfigStore,
	fetcher SourceFetcher,
	sink Sink,
	applicators map[string]*template.Applicator,
	interval time.Duration,
	sendDelay time.Duration,
) *Notifier {
	return &Notifier{
		store:       store,
		fetcher:     fetcher,
		sink:        sink,
		applicators: applicators,
		interval:    interval,
		sendDelay:   sendDelay,
	}
}

// Start runs one cycle immediately, then one per interval tick until the
// context is done. Cycles run inline in this single goroutine, so a new
// cycle can never start while the previous one is still in progress; a tick
// that fires mid-cycle is simply dropped.
func (n *Notifier) Start(ctx context.Context) error {
	log.Printf("[INFO] notifier started, interval %s", n.interval)

	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	n.RunCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n.RunCycle(ctx)
		}
	}
}

// RunCycle processes every configured feed once. Feed failures never
// propagate: a feed that cannot be fetched or delivered is logged and
// skipped, and the cycle continues with the remaining feeds.
func (n *Notifier) RunCycle(ctx context.Context) {
	log.Printf("[INFO] running delivery cycle")
	for name, feed := range n.store.Feeds() {
		if ctx.Err() != nil {
			return
		}
		n.processFeed(ctx, name, feed)
	}
}

func (n *Notifier) processFeed(ctx context.Context, name string, feed *config.Feed) {
	applicator, ok := n.applicators[feed.Template]
	if !ok {
		log.Printf("[ERROR] feed %s references unknown template %q, skipping", name, feed.Template)
		return
	}

	items, err := n.fetcher.Fetch(ctx, feed.URL)
	if err != nil {
		log.Printf("[ERROR] failed to fetch feed %s: %v", name, err)
		return
	}

	pending := collectNew(items, feed.LastPublished)
	if len(pending) == 0 {
		return
	}
	log.Printf("[INFO] feed %s has %d new items", name, len(pending))

	// Deliver oldest first, reverse of collection order.
	for i := len(pending) - 1; i >= 0; i-- {
		item := pending[i]

		message := applicator.Apply(item)
		if err := n.sink.Send(ctx, message); err != nil {
			log.Printf("[WARN] failed to send message for item %s, all others of feed %s are skipped: %v", item.ID, name, err)
			return
		}

		// Fixed delay between sends as backpressure against the sink.
		sleep(ctx, n.sendDelay)

		n.store.AdvanceWatermark(name, item.EffectiveTime().Unix())

		if ctx.Err() != nil {
			return
		}
	}
}

// collectNew returns the prefix of items strictly newer than the watermark.
// The scan stops at the first item at or below it; feeds list newest first,
// so everything after that boundary has already been delivered.
func collectNew(items []model.Item, watermark int64) []model.Item {
	var pending []model.Item
	for _, item := range items {
		if item.EffectiveTime().Unix() <= watermark {
			break
		}
		pending = append(pending, item)
	}
	return pending
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
