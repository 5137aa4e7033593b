// Package config owns the two configuration layers of feedHook: the
// process settings loaded from environment and HCL files, and the persisted
// feed/template document that the delivery loop writes watermarks back into.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultIntervalMinutes = 15
	defaultSendDelayMs     = 500
)

// Feed is one polled source. LastPublished is the delivery watermark, the
// unix-seconds timestamp of the newest successfully delivered item; it is
// the only field the pipeline mutates at runtime.
type Feed struct {
	URL           string `json:"url"`
	Template      string `json:"template"`
	LastPublished int64  `json:"last_published"`
}

// Template is a named message layout: an optional content pattern, zero or
// more embed patterns and the replacement text for empty values.
type Template struct {
	Content   *string  `json:"content,omitempty"`
	Embeds    []string `json:"embeds,omitempty"`
	EmptyText string   `json:"empty_text,omitempty"`
}

// Config is the persisted document. It is always written back as a whole.
type Config struct {
	WebhookURL      string               `json:"webhook_url"`
	IntervalMinutes int                  `json:"interval_minutes"`
	SendDelayMs     int                  `json:"send_delay_ms"`
	Feeds           map[string]*Feed     `json:"feeds"`
	Templates       map[string]*Template `json:"templates"`
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMinutes) * time.Minute
}

func (c *Config) SendDelay() time.Duration {
	return time.Duration(c.SendDelayMs) * time.Millisecond
}

// Load reads the document at path, creating the containing directory if
// needed so a later Save cannot fail on a missing parent.
func Load(path string) (*Config, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config file %s could not be parsed, fix or delete it: %w", path, err)
	}

	if cfg.IntervalMinutes <= 0 {
		cfg.IntervalMinutes = defaultIntervalMinutes
	}
	if cfg.SendDelayMs <= 0 {
		cfg.SendDelayMs = defaultSendDelayMs
	}
	if cfg.Feeds == nil {
		cfg.Feeds = map[string]*Feed{}
	}
	if cfg.Templates == nil {
		cfg.Templates = map[string]*Template{}
	}
	return &cfg, nil
}

// Save writes the whole document, replacing the previous file atomically so
// a crash mid-write never leaves a truncated config behind.
func (c *Config) Save(path string) error {
	raw, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Store binds a Config to the file it came from so watermark advances can be
// persisted in one step.
type Store struct {
	path string
	cfg  *Config
}

func NewStore(path string, cfg *Config) *Store {
	return &Store{path: path, cfg: cfg}
}

func (s *Store) Config() *Config {
	return s.cfg
}

func (s *Store) Feeds() map[string]*Feed {
	return s.cfg.Feeds
}

// AdvanceWatermark raises the feed's watermark to ts and persists the whole
// document. The watermark never moves backwards. A failed save is logged and
// swallowed: the in-memory watermark stays advanced and the worst outcome is
// a duplicate delivery after a restart.
func (s *Store) AdvanceWatermark(name string, ts int64) {
	feed, ok := s.cfg.Feeds[name]
	if !ok || ts <= feed.LastPublished {
		return
	}
	feed.LastPublished = ts

	if err := s.cfg.Save(s.path); err != nil {
		slog.Error("failed to save config after watermark advance, item may repeat", "feed", name, "err", err)
	}
}
