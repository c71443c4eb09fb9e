package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pitchdeck/config"
	"pitchdeck/i18n"
)

var generateCmd = &cobra.Command{
	Use:   "generate [deck...]",
	Short: "Write one or more decks (all by default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		app := NewApp(configPath)
		err := app.Startup(generateOverrides(cmd))
		defer app.Shutdown()
		if err != nil {
			return err
		}

		results, err := app.GenerateDecks(args)
		for _, r := range results {
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.generated", r.Path, r.Slides))
			if r.Handout != "" {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.handout", r.Handout))
			}
		}
		if err != nil {
			return err
		}
		if app.Config().CopySheet {
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.copysheet", app.CopySheetPath()))
		}
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.done", len(results), app.Config().OutputDir))
		if path := app.logger.Path(); path != "" {
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.log_file", path))
		}
		return nil
	},
}

// generateOverrides applies the flags the user set on top of the config file
func generateOverrides(cmd *cobra.Command) func(*config.Config) {
	return func(cfg *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("out") {
			cfg.OutputDir, _ = flags.GetString("out")
		}
		if flags.Changed("themes") {
			cfg.ThemeFile, _ = flags.GetString("themes")
		}
		if flags.Changed("handout") {
			cfg.Handout, _ = flags.GetBool("handout")
		}
		if flags.Changed("handout-format") {
			cfg.HandoutFormat, _ = flags.GetString("handout-format")
		}
		if flags.Changed("copysheet") {
			cfg.CopySheet, _ = flags.GetBool("copysheet")
		}
		if flags.Changed("log") {
			cfg.DetailedLog, _ = flags.GetBool("log")
		}
		if flags.Changed("lang") {
			lang, _ := flags.GetString("lang")
			cfg.Language = string(i18n.ParseLanguage(lang))
		}
		if themeFor, _ := flags.GetStringToString("theme"); len(themeFor) > 0 {
			if cfg.Themes == nil {
				cfg.Themes = make(map[string]string, len(themeFor))
			}
			for deck, theme := range themeFor {
				cfg.Themes[deck] = theme
			}
		}
	}
}

func init() {
	generateCmd.Flags().StringP("out", "o", ".", "Output directory")
	generateCmd.Flags().String("themes", "", "YAML theme file")
	generateCmd.Flags().StringToString("theme", nil, "Theme per deck, e.g. --theme sales=dark")
	generateCmd.Flags().Bool("handout", false, "Also write a handout per deck")
	generateCmd.Flags().String("handout-format", "docx", "Handout format: docx or pdf")
	generateCmd.Flags().Bool("copysheet", false, "Also write one Excel workbook with the text of every deck")
	generateCmd.Flags().Bool("log", false, "Write a run log into the log directory")
	rootCmd.AddCommand(generateCmd)
}
