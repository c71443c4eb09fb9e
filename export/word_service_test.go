package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportDeckToWord(t *testing.T) {
	d := NewDeck("Café Point", "Café Point")
	d.AddTitleSlide("CAFÉ POINT", "O Fim do Caos Operacional no Seu Restaurante.", ThemeSales)
	d.AddBulletSlide("Gestão de Stock", []string{"📦 Ficha Técnica", "Alertas de stock mínimo"}, ThemeSales)

	data, err := NewWordHandoutService().ExportDeckToWord(d)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err, "a DOCX is a zip container")

	var body string
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		raw, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		body = string(raw)
	}
	require.NotEmpty(t, body, "word/document.xml not found")
	assert.True(t, strings.Contains(body, "Gestão de Stock"))
	assert.True(t, strings.Contains(body, "Alertas de stock mínimo"))
	t.Logf("handout: %d bytes", len(data))
}

func TestExportDeckToWord_EmptyDeck(t *testing.T) {
	_, err := NewWordHandoutService().ExportDeckToWord(NewDeck("empty", ""))
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestHandoutLines(t *testing.T) {
	spec := SlideSpec{
		Kind:    DetailSlide,
		Title:   "A SOLUÇÃO",
		Body:    "Uma plataforma única.",
		Items:   []DetailItem{{Heading: "📱 POS MÓVEL", Description: "Zero erros."}},
		Columns: []Column{{Heading: "Receita", Lines: []string{"+ Mesas"}}},
		Footer:  " ",
	}
	lines := handoutLines(spec)
	require.Len(t, lines, 5)
	assert.Equal(t, handoutLine{text: "Uma plataforma única."}, lines[0])
	assert.Equal(t, handoutLine{text: "📱 POS MÓVEL", bold: true}, lines[1])
	assert.Equal(t, handoutLine{text: "Zero erros.", indent: true}, lines[2])
	assert.Equal(t, handoutLine{text: "Receita", bold: true}, lines[3])
	assert.Equal(t, handoutLine{text: "• + Mesas", indent: true}, lines[4])
}
