package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pitchdeck",
	Short: "pitchdeck generates the Café Point sales decks as PPTX files",
	Long: `pitchdeck renders the Café Point pitch decks (premium, dark, branded, sales)
to PowerPoint files, optionally with custom YAML themes, a Word handout per deck
and an Excel sheet with the text of every deck.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "JSON config file (defaults apply when absent)")
	rootCmd.PersistentFlags().String("lang", "", "Console language: pt or en")
}
