package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0x0BSoD/feedHook/internal/template"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "List every placeholder token and modifier usable in templates",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("All Placeholder Tokens:\n\n%s\n\nAll Placeholder Token Modifiers:\n\n%s\n",
			template.TokenDocs(), template.ModifierDocs())
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
