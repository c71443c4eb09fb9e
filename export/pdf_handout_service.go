package export

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PDFHandoutService writes a deck outline as a PDF using maroto and its built-in Arial
type PDFHandoutService struct{}

// NewPDFHandoutService creates a new PDF handout service
func NewPDFHandoutService() *PDFHandoutService {
	return &PDFHandoutService{}
}

// ExportDeckToPDF writes the same outline as the Word handout: a numbered heading per
// slide, then its text lines
func (s *PDFHandoutService) ExportDeckToPDF(d *Deck) ([]byte, error) {
	if d == nil || d.Len() == 0 {
		return nil, ErrEmptyDeck
	}

	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   10,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		col.New(12).Add(
			text.New(pdfText(d.Title), props.Text{
				Family: fontfamily.Arial,
				Size:   18,
				Style:  fontstyle.Bold,
				Align:  align.Center,
			}),
		),
	)
	if d.Author != "" {
		m.AddRow(8,
			col.New(12).Add(
				text.New(pdfText(d.Author), props.Text{
					Family: fontfamily.Arial,
					Size:   9,
					Align:  align.Center,
					Color:  &props.Color{Red: 100, Green: 116, Blue: 139},
				}),
			),
		)
	}
	m.AddRow(5)

	for i, spec := range d.slides {
		s.addSlide(m, i, spec)
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return document.GetBytes(), nil
}

func (s *PDFHandoutService) addSlide(m core.Maroto, index int, spec SlideSpec) {
	accent := spec.Theme.Accent
	m.AddRow(9,
		col.New(12).Add(
			text.New(fmt.Sprintf("%d. %s", index+1, pdfText(spec.Theme.headingText(spec.Title))), props.Text{
				Family: fontfamily.Arial,
				Size:   13,
				Style:  fontstyle.Bold,
				Color:  &props.Color{Red: int(accent.R), Green: int(accent.G), Blue: int(accent.B)},
			}),
		),
	)

	for _, line := range handoutLines(spec) {
		t := props.Text{
			Family: fontfamily.Arial,
			Size:   10,
			Color:  &props.Color{Red: 51, Green: 65, Blue: 85},
		}
		if line.bold {
			t.Style = fontstyle.Bold
		}
		if line.indent {
			t.Left = 6
		}
		m.AddRow(6, col.New(12).Add(text.New(pdfText(line.text), t)))
	}
	m.AddRow(4)
}

// pdfText keeps the characters the built-in PDF fonts can draw (Latin-1 and the bullet)
// and drops the rest, emoji included
func pdfText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r <= 0xFF || r == '•' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
