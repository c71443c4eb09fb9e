package i18n

var portugueseTranslations = map[string]string{
	"cli.generated":        "%s gerado (%d slides)",
	"cli.handout":          "Resumo gerado: %s",
	"cli.copysheet":        "Folha de textos gerada: %s",
	"cli.done":             "%d apresentação(ões) gerada(s) em %s",
	"cli.unknown_deck":     "apresentação desconhecida: %s (disponíveis: %s)",
	"cli.unknown_theme":    "tema desconhecido: %s",
	"cli.list_header":      "Apresentações disponíveis:",
	"cli.list_row":         "  %-8s %-42s tema %-8s %d slides",
	"cli.inspect_header":   "%s: %d slides (%.2f x %.2f pol.)",
	"cli.inspect_slide":    "Slide %d: %d formas, %d caixas de texto",
	"cli.log_file":         "Registo: %s",
	"cli.invalid_override": "substituição de tema inválida para %s: %v",
}
