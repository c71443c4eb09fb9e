package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pitchdeck/decks"
	"pitchdeck/i18n"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the decks of the catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
			i18n.SetLanguage(i18n.ParseLanguage(lang))
		}
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.list_header"))
		for _, e := range decks.All() {
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.list_row", e.Name, e.FileName, e.Theme.Name, e.Build(e.Theme).Len()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
