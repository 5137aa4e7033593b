// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/0x0BSoD/feedHook/internal/config"
	"github.com/0x0BSoD/feedHook/internal/notifier"
	"github.com/0x0BSoD/feedHook/internal/source"
	"github.com/0x0BSoD/feedHook/internal/template"
	"github.com/0x0BSoD/feedHook/internal/webhook"
)

var rootCmd = &cobra.Command{
	Use:           "feedhook",
	Short:         "Polls syndication feeds and forwards new entries to a webhook",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func run(ctx context.Context) error {
	log.Printf("[INFO] feedHook starting up")

	settings := config.GetSettings()
	cfg, err := config.Load(settings.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no config at %s, create one with \"feedhook init\"", settings.ConfigPath)
		}
		return err
	}
	if cfg.WebhookURL == "" {
		return fmt.Errorf("config at %s has no webhook_url", settings.ConfigPath)
	}

	applicators := buildApplicators(cfg)
	for name, feed := range cfg.Feeds {
		if _, ok := applicators[feed.Template]; !ok {
			log.Printf("[WARN] feed %s references unknown template %q and will be skipped", name, feed.Template)
		}
	}

	var (
		store   = config.NewStore(settings.ConfigPath, cfg)
		fetcher = source.New(settings.HTTPTimeout, settings.UserAgent)
		sink    = webhook.New(cfg.WebhookURL, settings.HTTPTimeout)
		n       = notifier.New(store, fetcher, sink, applicators, cfg.Interval(), cfg.SendDelay())
	)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := n.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Printf("[INFO] notifier stopped")
	return nil
}

func buildApplicators(cfg *config.Config) map[string]*template.Applicator {
	applicators := make(map[string]*template.Applicator, len(cfg.Templates))
	for name, def := range cfg.Templates {
		applicators[name] = template.NewApplicator(*def)
	}
	return applicators
}

// loadConfig is the shared entry point for the configuration subcommands.
func loadConfig() (string, *config.Config, error) {
	settings := config.GetSettings()
	cfg, err := config.Load(settings.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("no config at %s, create one with \"feedhook init\"", settings.ConfigPath)
		}
		return "", nil, err
	}
	return settings.ConfigPath, cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}
