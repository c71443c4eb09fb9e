package decks

import "pitchdeck/export"

func init() {
	register(Entry{
		Name:     "branded",
		FileName: "Cafe_Point_Presentation_V3_Branded.pptx",
		Theme:    export.ThemeBranded,
		Success:  "Apresentação V3 (Branded) gerada com sucesso!",
		Build:    BuildBranded,
	})
}

// BuildBranded follows the product web page colors. Lines carry their own emoji markers.
func BuildBranded(theme export.StyleTheme) *export.Deck {
	d := export.NewDeck("Café Point - Sistema Integrado de Gestão", Author)
	d.AddTitleSlide("CAFÉ POINT", "Sistema Integrado de Gestão", theme,
		export.WithFooter("Modernização, Controlo e Eficiência Operacional"))

	d.AddBulletSlide("Desafios Operacionais Atuais", []string{
		"🛑 Ineficiência: Pedidos em papel causam erros e atrasos na comunicação.",
		"🛑 Quebras de Stock: Falta de rastreabilidade gera desperdícios.",
		"🛑 Falta de Dados: Gestão baseada em 'feeling', sem relatórios precisos.",
		"🛑 Experiência do Cliente: Tempo de espera elevado afecta a satisfação.",
	}, theme)

	d.AddBulletSlide("Solução: Café Point", []string{
		"Uma plataforma 'All-in-One' que conecta Salão, Cozinha e Backoffice.",
		"🎯 Foco: Eliminar papel, automatizar processos e garantir controlo.",
		"💻 Tecnologia: Sistema moderno, seguro e acessível via Tablets/PC.",
	}, theme)

	d.AddBulletSlide("Atendimento Ágil (POS)", []string{
		"✅ Mapa de Mesas Digital: Visualização em tempo real (Livre/Ocupada).",
		"✅ Pedido Mobile: Garçom lança o pedido na mesa.",
		"✅ Personalização: Adição fácil de observações (ex: 'sem gelo').",
	}, theme)

	d.AddBulletSlide("Cozinha Conectada (KDS)", []string{
		"👨‍🍳 Fim das 'Bonitas': Pedidos aparecem no ecrã da cozinha.",
		"⏱️ Controlo de Tempo: Cozinheiros sabem exactamante o que preparar.",
		"🔔 Status: Fluxo claro de Pendente -> Preparando -> Pronto.",
	}, theme)

	d.AddBulletSlide("Gestão de Stock", []string{
		"📦 Ficha Técnica: Baixa automática de ingredientes ao vender.",
		"⚠️ Alertas Inteligentes: Aviso automático de stock mínimo.",
		"📊 Histórico: Rastreio completo de todas as entradas e saídas.",
	}, theme)

	d.AddBulletSlide("Impacto Esperado (ROI)", []string{
		"🚀 Aumento de 30% na rotação de mesas.",
		"💰 Redução de 15% em desperdícios.",
		"⭐ Melhor experiência do cliente (menos erros).",
		"📈 Decisões baseadas em dados reais.",
	}, theme)

	d.AddBulletSlide("Roteiro de Implementação", []string{
		"1. Semana 1: Instalação Piloto e Configuração.",
		"2. Semana 2: Treinamento da Equipe.",
		"3. Semana 3: 'Go-Live' assistido.",
		"👉 Aprovação para iniciar o piloto.",
	}, theme)

	d.AddClosingSlide("Obrigado!", "Café Point 2026", theme)
	return d
}
