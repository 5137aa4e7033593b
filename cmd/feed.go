package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/0x0BSoD/feedHook/internal/config"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Manage the configured feeds",
}

var feedAddCmd = &cobra.Command{
	Use:   "add <name> <url> <template>",
	Short: "Add or replace a feed",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		path, cfg, err := loadConfig()
		if err != nil {
			return err
		}

		name, url, tmpl := args[0], args[1], args[2]
		if _, ok := cfg.Templates[tmpl]; !ok {
			fmt.Printf("Warning: template %q does not exist yet, the feed will be skipped until it does\n", tmpl)
		}

		// New feeds start at the current time so history is not replayed.
		cfg.Feeds[name] = &config.Feed{
			URL:           url,
			Template:      tmpl,
			LastPublished: time.Now().Unix(),
		}
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Printf("Feed %q added\n", name)
		return nil
	},
}

var feedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all feeds with their template and watermark",
	RunE: func(_ *cobra.Command, _ []string) error {
		_, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if len(cfg.Feeds) == 0 {
			fmt.Println("[No feeds to list]")
			return nil
		}

		names := make([]string, 0, len(cfg.Feeds))
		for name := range cfg.Feeds {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			feed := cfg.Feeds[name]
			fmt.Printf(" - %s: %s (Last %s)\n", name, feed.Template, time.Unix(feed.LastPublished, 0))
		}
		return nil
	},
}

var feedRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a feed",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if _, ok := cfg.Feeds[args[0]]; !ok {
			return fmt.Errorf("no feed named %q", args[0])
		}
		delete(cfg.Feeds, args[0])
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Printf("Feed %q removed\n", args[0])
		return nil
	},
}

func init() {
	feedCmd.AddCommand(feedAddCmd, feedListCmd, feedRemoveCmd)
	rootCmd.AddCommand(feedCmd)
}
