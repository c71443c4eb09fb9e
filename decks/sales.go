package decks

import "pitchdeck/export"

func init() {
	register(Entry{
		Name:     "sales",
		FileName: "Apresentacao_Venda_Cafe_Point.pptx",
		Theme:    export.ThemeSales,
		Success:  "PPT de Vendas (ROI Focado) gerado com sucesso!",
		Build:    BuildSales,
	})
}

// BuildSales is the short ROI-focused sales deck
func BuildSales(theme export.StyleTheme) *export.Deck {
	d := export.NewDeck("Café Point - Proposta Comercial", Author)
	d.AddTitleSlide("CAFÉ POINT", "O Fim do Caos Operacional no Seu Restaurante.", theme)

	d.AddDetailSlide("QUANTO DINHEIRO ESTAMOS PERDENDO?", "", []export.DetailItem{
		{Heading: "DESPERDÍCIO DE STOCK (20%)", Description: "Sem controlo rigoroso, ingredientes somem ou estragam. O lucro vai para o lixo antes de chegar ao prato."},
		{Heading: "ERROS DE PEDIDO", Description: "Letra ilegível e falhas de comunicação cozinha-garçom geram pratos devolvidos e clientes insatisfeitos."},
		{Heading: "LENTIDÃO NO ATENDIMENTO", Description: "Cada minuto de atraso é uma mesa que roda menos vezes na noite."},
	}, theme, export.WithHeadingColor(theme.Alert))

	d.AddDetailSlide("A SOLUÇÃO: CONTROLO TOTAL", "Uma plataforma única que conecta tudo em tempo real.", []export.DetailItem{
		{Heading: "📱 POS MÓVEL", Description: "O garçom lança o pedido na mesa. Zero erros. Zero deslocações inúteis."},
		{Heading: "👨‍🍳 KDS (COZINHA DIGITAL)", Description: "Ecrãs substituem papel. Fila organizada por ordem de chegada."},
		{Heading: "📉 STOCK AUTOMÁTICO", Description: "Vendeu um prato? O sistema baixa os ingredientes. Instantâneo."},
	}, theme, export.WithItemColor(theme.Accent), export.WithBodySize(20), export.WithItemMarker("• ", "   "))

	d.AddColumnsSlide("O IMPACTO FINANCEIRO (ROI)", []export.Column{
		{Heading: "🚀 AUMENTO DE RECEITA", Lines: []string{"+ Rotação de Mesas", "+ Ticket Médio (Upsell)", "+ Fidelização de Clientes"}},
		{Heading: "💰 REDUÇÃO DE CUSTOS", Lines: []string{"- Desperdício de Alimentos", "- Roubos e Desvios", "- Erros Operacionais"}},
	}, theme, export.WithHeadingColor(theme.Positive))

	d.AddClosingSlide("VAMOS MODERNIZAR?", "Implementação completa em 3 semanas.", theme,
		export.WithFooter("Agende o 'Go-Live' hoje."))
	return d
}
