package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportDeckToPDF(t *testing.T) {
	d := NewDeck("Café Point", "Café Point")
	d.AddTitleSlide("CAFÉ POINT", "O Fim do Caos Operacional no Seu Restaurante.", ThemeSales)
	d.AddBulletSlide("Gestão de Stock", []string{"📦 Ficha Técnica", "Alertas de stock mínimo"}, ThemeSales)
	d.AddDetailSlide("A SOLUÇÃO", "", []DetailItem{{Heading: "📱 POS MÓVEL", Description: "Zero erros."}}, ThemeSales,
		WithItemMarker("• ", "   "))

	data, err := NewPDFHandoutService().ExportDeckToPDF(d)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output is a PDF document")
	t.Logf("PDF handout: %d bytes", len(data))
}

func TestExportDeckToPDF_EmptyDeck(t *testing.T) {
	_, err := NewPDFHandoutService().ExportDeckToPDF(NewDeck("vazio", ""))
	assert.ErrorIs(t, err, ErrEmptyDeck)

	_, err = NewPDFHandoutService().ExportDeckToPDF(nil)
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestPDFText(t *testing.T) {
	cases := map[string]string{
		"📦 Ficha Técnica":        "Ficha Técnica",
		"• + Rotação de Mesas":    "• + Rotação de Mesas",
		"👨‍🍳 KDS (COZINHA DIGITAL)": "KDS (COZINHA DIGITAL)",
		"   Zero erros.":          "Zero erros.",
		"":                        "",
	}
	for in, want := range cases {
		assert.Equal(t, want, pdfText(in), "pdfText(%q)", in)
	}
}
