package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func renderAndRead(t *testing.T, d *Deck) *DeckSummary {
	t.Helper()
	data, err := NewPPTExportService().ExportDeckToPPT(d)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	summary, err := ReadPPTX(data)
	require.NoError(t, err)
	return summary
}

func firstRun(t *testing.T, sh ShapeSummary) RunSummary {
	t.Helper()
	run, ok := sh.FirstRun()
	require.True(t, ok, "shape %q has no runs", sh.Text())
	return run
}

func TestExportDeckToPPT_TitleSlideScenario(t *testing.T) {
	t.Log("rendering the sales cover")
	d := NewDeck("Café Point", "Café Point")
	d.AddTitleSlide("CAFÉ POINT", "O Fim do Caos Operacional no Seu Restaurante.", ThemeSales)

	summary := renderAndRead(t, d)
	require.Len(t, summary.Slides, 1)

	texts := summary.Slides[0].TextElements()
	require.Len(t, texts, 2)

	assert.Equal(t, "CAFÉ POINT", texts[0].Text())
	title := firstRun(t, texts[0])
	assert.Equal(t, ThemeSales.Sizes.Title, title.Size)
	require.NotNil(t, title.Color)
	assert.Equal(t, ThemeSales.Title, *title.Color)

	assert.Equal(t, "O Fim do Caos Operacional no Seu Restaurante.", texts[1].Text())
	sub := firstRun(t, texts[1])
	assert.Equal(t, ThemeSales.Sizes.Subtitle, sub.Size)
	require.NotNil(t, sub.Color)
	assert.Equal(t, ThemeSales.Subtitle, *sub.Color)

	// the slate background sits below the text
	decor := summary.Slides[0].Decorations()
	require.Len(t, decor, 1)
	assert.Equal(t, *ThemeSales.Background, *decor[0].Fill)
	t.Logf("cover has %d shapes", len(summary.Slides[0].Shapes))
}

func TestExportDeckToPPT_BulletScenario(t *testing.T) {
	bullets := []string{
		"📦 Ficha Técnica: Baixa automática de ingredientes ao vender.",
		"⚠️ Alertas Inteligentes: Aviso automático de stock mínimo.",
		"📊 Histórico: Rastreio completo de todas as entradas e saídas.",
	}
	d := NewDeck("Stock", "Café Point")
	d.AddBulletSlide("Gestão de Stock", bullets, ThemeSales)

	summary := renderAndRead(t, d)
	require.Len(t, summary.Slides, 1)

	texts := summary.Slides[0].TextElements()
	require.Len(t, texts, 2, "heading and one bullet frame")
	assert.Equal(t, "Gestão de Stock", texts[0].Text())

	lines := texts[1].Paragraphs
	require.Len(t, lines, 3)
	for i, want := range bullets {
		// each line keeps its own emoji as the marker
		assert.Equal(t, want, lines[i].Text())
	}
}

func TestExportDeckToPPT_PlainBulletsGetThemeMarker(t *testing.T) {
	d := NewDeck("Dark", "")
	d.AddBulletSlide("O Problema", []string{"Pedidos no papel.", "Falta de visibilidade."}, ThemeDark,
		WithLead("A ineficiência custa dinheiro."))

	summary := renderAndRead(t, d)
	texts := summary.Slides[0].TextElements()
	require.Len(t, texts, 3)

	assert.Equal(t, "O PROBLEMA", texts[0].Text())
	assert.Equal(t, "A ineficiência custa dinheiro.", texts[1].Text())
	assert.Equal(t, "• Pedidos no papel.\n• Falta de visibilidade.", texts[2].Text())
}

func TestExportDeckToPPT_EmptyBullets(t *testing.T) {
	d := NewDeck("Empty", "")
	d.AddBulletSlide("Só o título", nil, ThemePremium)
	d.AddBulletSlide("Lista vazia", []string{}, ThemeBranded)

	summary := renderAndRead(t, d)
	require.Len(t, summary.Slides, 2)
	for i, want := range []string{"Só o título", "Lista vazia"} {
		texts := summary.Slides[i].TextElements()
		require.Len(t, texts, 1, "slide %d should only carry its heading", i+1)
		assert.Equal(t, want, texts[0].Text())
	}
}

func TestExportDeckToPPT_EmptyStatementBody(t *testing.T) {
	d := NewDeck("Empty", "")
	d.AddStatementSlide("Impacto", "", ThemePremium)

	summary := renderAndRead(t, d)
	texts := summary.Slides[0].TextElements()
	require.Len(t, texts, 2)
	assert.Equal(t, "Impacto", texts[0].Text())
	assert.Equal(t, "", texts[1].Text())
}

func TestExportDeckToPPT_StyleOverrides(t *testing.T) {
	d := NewDeck("Sales", "")
	d.AddDetailSlide("QUANTO DINHEIRO ESTAMOS PERDENDO?", "", []DetailItem{
		{Heading: "ERROS DE PEDIDO", Description: "Pratos devolvidos."},
	}, ThemeSales, WithHeadingColor(ThemeSales.Alert))
	d.AddDetailSlide("A SOLUÇÃO", "Uma plataforma única.", []DetailItem{
		{Heading: "📱 POS MÓVEL", Description: "Zero erros."},
	}, ThemeSales, WithItemColor(ThemeSales.Accent), WithBodySize(20), WithItemMarker("• ", "   "))

	summary := renderAndRead(t, d)
	require.Len(t, summary.Slides, 2)

	problem := summary.Slides[0].TextElements()
	require.Len(t, problem, 2)
	heading := firstRun(t, problem[0])
	require.NotNil(t, heading.Color)
	assert.Equal(t, ThemeSales.Alert, *heading.Color)
	require.Len(t, problem[1].Paragraphs, 2)
	assert.Equal(t, ThemeSales.Sizes.Detail, problem[1].Paragraphs[1].Runs[0].Size)

	solution := summary.Slides[1].TextElements()
	require.Len(t, solution, 3)
	assert.Equal(t, "Uma plataforma única.", solution[1].Text())
	items := solution[2].Paragraphs
	require.Len(t, items, 2)
	// the marker goes in front of the emoji and the description keeps its indent
	assert.Equal(t, "• 📱 POS MÓVEL", items[0].Text())
	assert.Equal(t, "   Zero erros.", items[1].Text())
	assert.Equal(t, "ERROS DE PEDIDO", problem[1].Paragraphs[0].Text())
	require.NotNil(t, items[0].Runs[0].Color)
	assert.Equal(t, ThemeSales.Accent, *items[0].Runs[0].Color)
	assert.Equal(t, 20, items[1].Runs[0].Size)
}

func TestExportDeckToPPT_Columns(t *testing.T) {
	d := NewDeck("ROI", "")
	d.AddColumnsSlide("O IMPACTO FINANCEIRO (ROI)", []Column{
		{Heading: "🚀 AUMENTO DE RECEITA", Lines: []string{"+ Rotação de Mesas", "+ Ticket Médio (Upsell)"}},
		{Heading: "💰 REDUÇÃO DE CUSTOS", Lines: []string{"- Roubos e Desvios"}},
	}, ThemeSales, WithHeadingColor(ThemeSales.Positive))

	summary := renderAndRead(t, d)
	texts := summary.Slides[0].TextElements()
	require.Len(t, texts, 3)
	assert.Equal(t, "🚀 AUMENTO DE RECEITA\n• + Rotação de Mesas\n• + Ticket Médio (Upsell)", texts[1].Text())
	assert.Equal(t, "💰 REDUÇÃO DE CUSTOS\n• - Roubos e Desvios", texts[2].Text())
	assert.Less(t, texts[1].X, texts[2].X, "columns are laid out left to right")
}

func TestExportDeckToPPT_Decorations(t *testing.T) {
	d := NewDeck("Branded", "")
	d.AddTitleSlide("CAFÉ POINT", "Sistema Integrado de Gestão", ThemeBranded,
		WithFooter("Modernização, Controlo e Eficiência Operacional"))
	d.AddBulletSlide("Gestão de Stock", []string{"📦 Ficha Técnica"}, ThemeBranded)
	d.AddClosingSlide("Obrigado!", "Café Point 2026", ThemeBranded)

	summary := renderAndRead(t, d)
	require.Len(t, summary.Slides, 3)

	cover := summary.Slides[0]
	require.Len(t, cover.TextElements(), 3)
	decor := cover.Decorations()
	require.Len(t, decor, 2, "navy background and bottom strip")
	assert.Equal(t, *ThemeBranded.CoverBackground, *decor[0].Fill)
	assert.Equal(t, ThemeBranded.Accent, *decor[1].Fill)

	content := summary.Slides[1].Decorations()
	require.Len(t, content, 3, "background, header bar and underline")
	assert.Equal(t, *ThemeBranded.Background, *content[0].Fill)
	assert.Equal(t, ThemeBranded.Highlight, *content[2].Fill)

	closing := summary.Slides[2]
	texts := closing.TextElements()
	require.Len(t, texts, 2)
	assert.Equal(t, "Obrigado!", texts[0].Text())
	assert.Equal(t, ThemeBranded.Sizes.Closing, firstRun(t, texts[0]).Size)
}

func TestExportDeckToPPT_BackgroundCoversCanvas(t *testing.T) {
	for name, theme := range BuiltinThemes() {
		t.Run(name, func(t *testing.T) {
			d := NewDeck(name, "")
			d.AddTitleSlide("CAFÉ POINT", "O Fim do Caos Operacional no Seu Restaurante.", theme, WithFooter("2026"))
			d.AddBulletSlide("Gestão de Stock", []string{"📦 Ficha Técnica"}, theme)
			d.AddClosingSlide("Obrigado", "cafepoint.sistema", theme)

			summary := renderAndRead(t, d)
			assert.Equal(t, int64(10*emuPerInch), summary.SlideWidth)
			assert.Equal(t, int64(7.5*emuPerInch), summary.SlideHeight)

			for _, slide := range summary.Slides {
				for _, sh := range slide.Shapes {
					assert.LessOrEqual(t, sh.X+sh.W, summary.SlideWidth+1, "slide %d: shape %q past the right edge", slide.Index+1, sh.Text())
					assert.LessOrEqual(t, sh.Y+sh.H, summary.SlideHeight+1, "slide %d: shape %q past the bottom edge", slide.Index+1, sh.Text())
				}
				decor := slide.Decorations()
				if theme.Background == nil && theme.CoverBackground == nil {
					assert.Empty(t, decor)
					continue
				}
				require.NotEmpty(t, decor)
				assert.Equal(t, int64(0), decor[0].X)
				assert.Equal(t, int64(0), decor[0].Y)
				assert.Equal(t, summary.SlideWidth, decor[0].W)
				assert.Equal(t, summary.SlideHeight, decor[0].H)
			}
		})
	}
}

func TestExportDeckToPPT_DecorationsReachEdges(t *testing.T) {
	d := NewDeck("Decor", "")
	d.AddTitleSlide("CAFÉ POINT", "", ThemeDark)
	d.AddTitleSlide("CAFÉ POINT", "", ThemeBranded)

	summary := renderAndRead(t, d)
	require.Len(t, summary.Slides, 2)

	side := summary.Slides[0].Decorations()
	require.Len(t, side, 2, "background and side bar")
	assert.Equal(t, summary.SlideHeight, side[1].H, "the side bar runs the full height")

	strip := summary.Slides[1].Decorations()
	require.Len(t, strip, 2, "background and bottom strip")
	assert.InDelta(t, summary.SlideHeight, strip[1].Y+strip[1].H, 1, "the strip sits on the bottom edge")
	assert.Equal(t, summary.SlideWidth, strip[1].W)
}

func TestExportDeckToPPT_OrderPreserved(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		titles := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z0-9]{1,12}`), 1, 8).Draw(t, "titles")

		d := NewDeck("Order", "")
		for i, title := range titles {
			switch i % 3 {
			case 0:
				d.AddStatementSlide(title, "body", ThemePremium)
			case 1:
				d.AddBulletSlide(title, []string{"a", "b"}, ThemePremium)
			default:
				d.AddDetailSlide(title, "", nil, ThemePremium)
			}
		}

		data, err := NewPPTExportService().ExportDeckToPPT(d)
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		summary, err := ReadPPTX(data)
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if len(summary.Slides) != len(titles) {
			t.Fatalf("expected %d slides, got %d", len(titles), len(summary.Slides))
		}
		for i, title := range titles {
			texts := summary.Slides[i].TextElements()
			if len(texts) == 0 || texts[0].Text() != title {
				t.Fatalf("slide %d: expected heading %q", i+1, title)
			}
		}
	})
}

func TestExportDeckToPPT_Idempotent(t *testing.T) {
	build := func() *Deck {
		d := NewDeck("Café Point", "Café Point")
		d.AddTitleSlide("CAFÉ POINT", "O Futuro da Gestão de Restaurantes", ThemeDark, WithFooter("Apresentação Executiva 2026"))
		d.AddBulletSlide("A Solução", []string{"POS Digital", "KDS"}, ThemeDark, WithLead("Uma plataforma unificada."))
		d.AddClosingSlide("Obrigado", "cafepoint.sistema", ThemeDark)
		return d
	}

	a := renderAndRead(t, build())
	b := renderAndRead(t, build())
	assert.Equal(t, a.Slides, b.Slides)
}

func TestExportDeckToPPT_EmptyDeck(t *testing.T) {
	svc := NewPPTExportService()
	_, err := svc.ExportDeckToPPT(NewDeck("empty", ""))
	assert.ErrorIs(t, err, ErrEmptyDeck)

	_, err = svc.ExportDeckToPPT(nil)
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestSaveDeckToFile(t *testing.T) {
	var logs []string
	svc := NewPPTExportService()
	svc.SetLogger(func(msg string) { logs = append(logs, msg) })

	d := NewDeck("Café Point", "")
	d.AddTitleSlide("Café Point", "Gestão moderna para restaurantes modernos", ThemePremium)

	path := filepath.Join(t.TempDir(), "deck.pptx")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))
	require.NoError(t, svc.SaveDeckToFile(d, path))

	summary, err := OpenPPTX(path)
	require.NoError(t, err, "the previous file is overwritten")
	require.Len(t, summary.Slides, 1)
	assert.NotEmpty(t, logs)
	assert.True(t, strings.HasPrefix(logs[len(logs)-1], "saved "))
}

func TestSaveDeckToFile_WriteError(t *testing.T) {
	d := NewDeck("Café Point", "")
	d.AddStatementSlide("Stock", "Cada venda actualiza o inventário.", ThemePremium)

	path := filepath.Join(t.TempDir(), "missing", "dir", "deck.pptx")
	err := NewPPTExportService().SaveDeckToFile(d, path)
	require.Error(t, err)

	var werr *WriteError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, path, werr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), path)
}

func ExamplePPTExportService_SaveDeckToFile() {
	d := NewDeck("Café Point", "Café Point")
	d.AddTitleSlide("CAFÉ POINT", "O Fim do Caos Operacional no Seu Restaurante.", ThemeSales)
	d.AddClosingSlide("VAMOS MODERNIZAR?", "Implementação completa em 3 semanas.", ThemeSales)

	dir, _ := os.MkdirTemp("", "deck")
	defer os.RemoveAll(dir)
	err := NewPPTExportService().SaveDeckToFile(d, filepath.Join(dir, "Apresentacao_Venda_Cafe_Point.pptx"))
	fmt.Println(err == nil, d.Len())
	// Output: true 2
}
