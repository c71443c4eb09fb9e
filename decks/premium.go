package decks

import "pitchdeck/export"

func init() {
	register(Entry{
		Name:     "premium",
		FileName: "Cafe_Point_Apple_SaaS_Premium.pptx",
		Theme:    export.ThemePremium,
		Success:  "PPT gerado com sucesso!",
		Build:    BuildPremium,
	})
}

// BuildPremium is the minimalist deck: a cover and seven one-sentence statements
func BuildPremium(theme export.StyleTheme) *export.Deck {
	d := export.NewDeck("Café Point", Author)
	d.AddTitleSlide("Café Point", "Gestão moderna para restaurantes modernos", theme)

	statements := []struct{ title, body string }{
		{"O Problema", "A maioria dos restaurantes ainda opera com sistemas fragmentados, lentos e sem visibilidade real."},
		{"A Solução", "Uma plataforma única que liga salão, cozinha e gestão em tempo real."},
		{"Atendimento", "Pedidos lançados na mesa. Menos passos. Menos erros. Mais mesas atendidas."},
		{"Cozinha", "Pedidos claros, prioridades visíveis e controlo total do tempo de preparação."},
		{"Stock", "Cada venda actualiza automaticamente custos e inventário."},
		{"Impacto", "Mais eficiência operacional. Menos desperdício. Decisões baseadas em dados."},
		{"Implementação", "Três semanas para entrar em produção com acompanhamento total."},
	}
	for _, s := range statements {
		d.AddStatementSlide(s.title, s.body, theme)
	}
	return d
}
