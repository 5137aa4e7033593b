package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/0x0BSoD/feedHook/internal/config"
	"github.com/0x0BSoD/feedHook/internal/source"
	"github.com/0x0BSoD/feedHook/internal/template"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage the configured message templates",
}

var (
	templateContent   string
	templateEmbeds    []string
	templateEmptyText string
)

var templateSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Create or replace a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, cfg, err := loadConfig()
		if err != nil {
			return err
		}

		def := &config.Template{
			Embeds:    templateEmbeds,
			EmptyText: templateEmptyText,
		}
		if cmd.Flags().Changed("content") {
			def.Content = &templateContent
		}

		if template.NewApplicator(*def).IsEmpty() {
			fmt.Println("Warning: the template has neither content nor embeds and renders \"{}\"")
		}

		cfg.Templates[args[0]] = def
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Printf("Template %q saved\n", args[0])
		return nil
	},
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all template names",
	RunE: func(_ *cobra.Command, _ []string) error {
		_, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if len(cfg.Templates) == 0 {
			fmt.Println("[No templates to list]")
			return nil
		}

		names := make([]string, 0, len(cfg.Templates))
		for name := range cfg.Templates {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf(" - %s\n", name)
		}
		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one template's patterns",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		_, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		def, ok := cfg.Templates[args[0]]
		if !ok {
			return fmt.Errorf("no template named %q", args[0])
		}

		content := "[NONE]"
		if def.Content != nil {
			content = *def.Content
		}
		fmt.Printf("Content: %s\n", content)

		emptyText := def.EmptyText
		if emptyText == "" {
			emptyText = "[NONE]"
		}
		fmt.Printf("Empty Replacement: %s\n", emptyText)

		if len(def.Embeds) == 0 {
			fmt.Println("Embeds: [NONE]")
		} else {
			fmt.Println("Embeds:")
			for i, embed := range def.Embeds {
				fmt.Printf(" %d: %s\n", i, embed)
			}
		}
		return nil
	},
}

var templateRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if _, ok := cfg.Templates[args[0]]; !ok {
			return fmt.Errorf("no template named %q", args[0])
		}
		delete(cfg.Templates, args[0])
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Printf("Template %q removed\n", args[0])
		return nil
	},
}

var templateTestCmd = &cobra.Command{
	Use:   "test <name> <feed-url>",
	Short: "Render a template against the newest item of a live feed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		def, ok := cfg.Templates[args[0]]
		if !ok {
			return fmt.Errorf("no template named %q", args[0])
		}

		applicator := template.NewApplicator(*def)
		if applicator.IsEmpty() {
			return fmt.Errorf("template %q is empty and can not be used", args[0])
		}

		settings := config.GetSettings()
		fetcher := source.New(settings.HTTPTimeout, settings.UserAgent)
		items, err := fetcher.Fetch(cmd.Context(), args[1])
		if err != nil {
			return fmt.Errorf("unable to load feed: %w", err)
		}
		if len(items) == 0 {
			return fmt.Errorf("feed did not contain any items to read")
		}

		output := applicator.Apply(items[0])
		fmt.Println("Result of template using newest item from feed:")
		fmt.Println()
		fmt.Println(prettyIfValid(output))
		return nil
	},
}

// prettyIfValid indents the rendered message when it happens to be valid
// JSON; resolver values can break the quoting, in which case the raw string
// is shown with a note.
func prettyIfValid(output string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(output), "", "  "); err != nil {
		return output + "\n\nCould not format: rendered output is not valid JSON"
	}
	return buf.String()
}

func init() {
	templateSetCmd.Flags().StringVar(&templateContent, "content", "", "content pattern")
	templateSetCmd.Flags().StringArrayVar(&templateEmbeds, "embed", nil, "embed pattern, repeatable and ordered")
	templateSetCmd.Flags().StringVar(&templateEmptyText, "empty-text", "", "replacement for empty values, defaults to [null]")

	templateCmd.AddCommand(templateSetCmd, templateListCmd, templateShowCmd, templateRemoveCmd, templateTestCmd)
	rootCmd.AddCommand(templateCmd)
}
