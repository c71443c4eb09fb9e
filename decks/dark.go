package decks

import "pitchdeck/export"

func init() {
	register(Entry{
		Name:     "dark",
		FileName: "Cafe_Point_Presentation_V2_Dark.pptx",
		Theme:    export.ThemeDark,
		Success:  "Nova apresentação (visual Dark Mode) gerada com sucesso!",
		Build:    BuildDark,
	})
}

type contentSlide struct {
	title   string
	lead    string
	bullets []string
}

// BuildDark is the executive dark-mode deck
func BuildDark(theme export.StyleTheme) *export.Deck {
	d := export.NewDeck("Café Point - Apresentação Executiva", Author)
	d.AddTitleSlide("CAFÉ POINT", "O Futuro da Gestão de Restaurantes", theme,
		export.WithFooter("Apresentação Executiva 2026"))

	slides := []contentSlide{
		{
			title: "O Problema",
			lead:  "A ineficiência operacional está custando dinheiro e clientes todos os dias.",
			bullets: []string{
				"Pedidos no papel causam erros e atrasos na cozinha.",
				"Falta de visibilidade do stock em tempo real.",
				"Dificuldade em medir lucros e perdas por prato.",
			},
		},
		{
			title: "A Solução",
			lead:  "Uma plataforma digital unificada que conecta todos os pontos do restaurante.",
			bullets: []string{
				"POS Digital no Salão (Tablet/PC).",
				"KDS (Ecrã de Cozinha) automatizado.",
				"Backoffice financeiro integrado.",
			},
		},
		{
			title: "Eficiência no Salão",
			lead:  "Aumente a rotação de mesas em até 30% com pedidos instantâneos.",
			bullets: []string{
				"Status de mesas em tempo real (Sem gritos).",
				"Envio de pedidos directo para as estações de preparo.",
				"Redução drástica de erros de anotação.",
			},
		},
		{
			title: "Cozinha Inteligente",
			lead:  "Organize o caos e garanta que os pratos saiam na ordem certa.",
			bullets: []string{
				"Priorização automática de pedidos.",
				"Métricas de tempo de preparo.",
				"Comunicação visual clara e silenciosa.",
			},
		},
		{
			title: "Controlo Total",
			lead:  "Transforme stock em dinheiro e pare de adivinhar os custos.",
			bullets: []string{
				"Baixa automática de ingredientes por ficha técnica.",
				"Alertas de stock mínimo para compras.",
				"Relatórios de vendas detalhados por dia/mês.",
			},
		},
		{
			title: "Próximos Passos",
			lead:  "Plano de implementação rápida para resultados imediatos.",
			bullets: []string{
				"Semana 1: Configuração e Piloto.",
				"Semana 2: Formação da Equipa.",
				"Semana 3: Lançamento Oficial (Go-Live).",
			},
		},
	}
	for _, s := range slides {
		d.AddBulletSlide(s.title, s.bullets, theme, export.WithLead(s.lead))
	}

	d.AddClosingSlide("Obrigado", "cafepoint.sistema", theme)
	return d
}
