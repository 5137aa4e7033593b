package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/0x0BSoD/feedHook/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init <webhook-url>",
	Short: "Create a starter config with an example feed and template",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		settings := config.GetSettings()
		if _, err := os.Stat(settings.ConfigPath); err == nil {
			return fmt.Errorf("config already exists at %s", settings.ConfigPath)
		}

		// Touch the directory the same way a load would.
		if _, err := config.Load(settings.ConfigPath); err != nil && !os.IsNotExist(err) {
			return err
		}

		cfg := exampleConfig(args[0])
		if err := cfg.Save(settings.ConfigPath); err != nil {
			return err
		}
		fmt.Printf("Config created at %s\n", settings.ConfigPath)
		return nil
	},
}

func exampleConfig(webhookURL string) *config.Config {
	content := `New post from \"[$FeedTitle$]\"[$ItemAuthorsSmart[?' '][<'by ']$]at <t:[$ItemTimeSmartUnix$]:f>[$ItemLinks[?''][<':\nhttps://bsky.app']$]`
	return &config.Config{
		WebhookURL: webhookURL,
		Feeds: map[string]*config.Feed{
			"Example Bsky Paci Stardust": {
				URL:           "https://bsky.app/profile/did:plc:vdxevqmw5aqc46lem37auvmg/rss",
				Template:      "Example Bsky",
				LastPublished: time.Now().Unix(),
			},
		},
		Templates: map[string]*config.Template{
			"Example Bsky": {
				Content:   &content,
				EmptyText: "[MISSING]",
			},
		},
		IntervalMinutes: 15,
		SendDelayMs:     500,
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
