package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewPPTX(t *testing.T) {
	d := NewDeck("Café Point", "Café Point")
	d.AddTitleSlide("Café Point", "Gestão moderna para restaurantes modernos", ThemePremium)
	d.AddStatementSlide("Stock", "Cada venda actualiza automaticamente custos e inventário.", ThemePremium)
	d.AddBulletSlide("Heading only", nil, ThemePremium)

	path := filepath.Join(t.TempDir(), "preview.pptx")
	require.NoError(t, NewPPTExportService().SaveDeckToFile(d, path))

	previews, err := PreviewPPTX(path, 0)
	require.NoError(t, err)
	require.Len(t, previews, 3)

	assert.Equal(t, "Café Point", previews[0].Title)
	assert.Equal(t, []string{"Gestão moderna para restaurantes modernos"}, previews[0].Texts)
	assert.Equal(t, "Stock", previews[1].Title)
	assert.Equal(t, "Heading only", previews[2].Title)
	assert.Empty(t, previews[2].Texts)

	limited, err := PreviewPPTX(path, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	_, err = PreviewPPTX(filepath.Join(t.TempDir(), "missing.pptx"), 0)
	assert.Error(t, err)
}
