package i18n

var englishTranslations = map[string]string{
	"cli.generated":        "%s written (%d slides)",
	"cli.handout":          "Handout written: %s",
	"cli.copysheet":        "Copy sheet written: %s",
	"cli.done":             "%d deck(s) written to %s",
	"cli.unknown_deck":     "unknown deck: %s (available: %s)",
	"cli.unknown_theme":    "unknown theme: %s",
	"cli.list_header":      "Available decks:",
	"cli.list_row":         "  %-8s %-42s theme %-8s %d slides",
	"cli.inspect_header":   "%s: %d slides (%.2f x %.2f in)",
	"cli.inspect_slide":    "Slide %d: %d shapes, %d text boxes",
	"cli.log_file":         "Log: %s",
	"cli.invalid_override": "invalid theme override for %s: %v",
}
