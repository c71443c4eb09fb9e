package export

import (
	"fmt"
	"strings"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"
)

// WordHandoutService writes a deck outline as a Word document using GoWord (pure Go)
type WordHandoutService struct{}

// NewWordHandoutService creates a new Word handout service
func NewWordHandoutService() *WordHandoutService {
	return &WordHandoutService{}
}

// ExportDeckToWord writes one section per slide: heading, then every text line
func (s *WordHandoutService) ExportDeckToWord(d *Deck) ([]byte, error) {
	if d == nil || d.Len() == 0 {
		return nil, ErrEmptyDeck
	}

	doc := goword.New()
	doc.Properties.Title = d.Title
	doc.Properties.Creator = d.Author

	sec := doc.AddSection()
	sec.AddTitle(d.Title, 1)
	sec.AddTextBreak(1)

	for i, spec := range d.slides {
		heading := spec.Theme.headingText(spec.Title)
		sec.AddText(fmt.Sprintf("%d. %s", i+1, heading),
			&style.FontStyle{Bold: true, Size: 14, Color: spec.Theme.Accent.Hex()},
			&style.ParagraphStyle{SpaceAfter: 120})

		for _, line := range handoutLines(spec) {
			if line.indent {
				sec.AddText(line.text,
					&style.FontStyle{Size: 11, Color: "334155"},
					&style.ParagraphStyle{Indent: 360})
				continue
			}
			sec.AddText(line.text, &style.FontStyle{Size: 11, Color: "334155", Bold: line.bold}, nil)
		}
		sec.AddTextBreak(1)
	}

	data, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write Word file: %w", err)
	}
	return data, nil
}

type handoutLine struct {
	text   string
	bold   bool
	indent bool
}

func handoutLines(spec SlideSpec) []handoutLine {
	var out []handoutLine
	add := func(text string, bold, indent bool) {
		if strings.TrimSpace(text) != "" {
			out = append(out, handoutLine{text: text, bold: bold, indent: indent})
		}
	}

	add(spec.Subtitle, false, false)
	add(spec.Body, false, false)
	for _, b := range spec.Bullets {
		add(bulletLine("• ", b), false, true)
	}
	for _, item := range spec.Items {
		add(item.Heading, true, false)
		add(item.Description, false, true)
	}
	for _, col := range spec.Columns {
		add(col.Heading, true, false)
		for _, l := range col.Lines {
			add(bulletLine("• ", l), false, true)
		}
	}
	add(spec.Footer, false, false)
	return out
}
