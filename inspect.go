package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pitchdeck/export"
	"pitchdeck/i18n"
)

const emuPerInch = 914400.0

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.pptx>",
	Short: "Print the slides, text boxes and styles of a PPTX file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
			i18n.SetLanguage(i18n.ParseLanguage(lang))
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		outline, _ := cmd.Flags().GetBool("outline")

		if outline {
			previews, err := export.PreviewPPTX(args[0], 0)
			if err != nil {
				return WrapError("inspect", "PreviewPPTX", err)
			}
			return writeJSON(cmd.OutOrStdout(), previews)
		}

		summary, err := export.OpenPPTX(args[0])
		if err != nil {
			return WrapError("inspect", "OpenPPTX", err)
		}
		if asJSON {
			return writeJSON(cmd.OutOrStdout(), summary)
		}
		printSummary(cmd.OutOrStdout(), args[0], summary)
		return nil
	},
}

func printSummary(w io.Writer, name string, s *export.DeckSummary) {
	fmt.Fprintln(w, i18n.T("cli.inspect_header", name, len(s.Slides),
		float64(s.SlideWidth)/emuPerInch, float64(s.SlideHeight)/emuPerInch))
	for _, slide := range s.Slides {
		texts := slide.TextElements()
		fmt.Fprintln(w, i18n.T("cli.inspect_slide", slide.Index+1, len(slide.Shapes), len(texts)))
		for _, sh := range texts {
			for _, p := range sh.Paragraphs {
				if len(p.Runs) == 0 {
					continue
				}
				r := p.Runs[0]
				color := "-"
				if r.Color != nil {
					color = r.Color.String()
				}
				fmt.Fprintf(w, "    [%2dpt %s] %s\n", r.Size, color, p.Text())
			}
		}
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	inspectCmd.Flags().Bool("json", false, "Print the summary as JSON")
	inspectCmd.Flags().Bool("outline", false, "Print only the text outline, read with GoPPT")
	rootCmd.AddCommand(inspectCmd)
}
