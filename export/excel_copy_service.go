package export

import (
	"bytes"
	"fmt"
	"strings"

	gospreadsheet "github.com/VantageDataChat/GoExcel"
)

// CopySheetService writes the text of decks to a workbook for copy review and translation
type CopySheetService struct{}

// NewCopySheetService creates a new copy sheet service
func NewCopySheetService() *CopySheetService {
	return &CopySheetService{}
}

// NamedDeck pairs a deck with the sheet it is written to
type NamedDeck struct {
	Name string
	Deck *Deck
}

var copySheetColumns = []string{"Slide", "Kind", "Theme", "Element", "Text"}

// copyRow is one text element of a slide
type copyRow struct {
	element string
	text    string
}

// ExportDecksToExcel writes one sheet per deck with a row per text element, in slide order
func (s *CopySheetService) ExportDecksToExcel(decks []NamedDeck) ([]byte, error) {
	if len(decks) == 0 {
		return nil, fmt.Errorf("no decks to export")
	}

	wb := gospreadsheet.New()

	headerStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
			Name:  "Arial",
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: "4F46E5",
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		})

	dataStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Size: 10,
			Name: "Arial",
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
			WrapText:   true,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
		})

	for i, nd := range decks {
		if nd.Deck == nil || nd.Deck.Len() == 0 {
			return nil, fmt.Errorf("deck %s: %w", nd.Name, ErrEmptyDeck)
		}

		var ws *gospreadsheet.Worksheet
		if i == 0 {
			ws = wb.GetActiveSheet()
			ws.SetTitle(sheetTitle(nd.Name))
		} else {
			var err error
			ws, err = wb.AddSheet(sheetTitle(nd.Name))
			if err != nil {
				return nil, fmt.Errorf("failed to create sheet %s: %w", nd.Name, err)
			}
		}

		for col, title := range copySheetColumns {
			cellName, _ := gospreadsheet.CellName(0, col)
			ws.SetCellValue(cellName, title)
			ws.SetCellStyle(cellName, headerStyle)
		}
		ws.SetColumnWidth(0, 8)
		ws.SetColumnWidth(1, 12)
		ws.SetColumnWidth(2, 12)
		ws.SetColumnWidth(3, 16)
		ws.SetColumnWidth(4, 80)
		ws.SetRowHeight(0, 25)

		row := 1
		for idx, spec := range nd.Deck.slides {
			for _, r := range copyRows(spec) {
				values := []interface{}{idx + 1, spec.Kind.String(), spec.Theme.Name, r.element, r.text}
				for col, v := range values {
					cellName, _ := gospreadsheet.CellName(row, col)
					ws.SetCellValue(cellName, v)
					ws.SetCellStyle(cellName, dataStyle)
				}
				row++
			}
		}
		ws.FreezePane("A2")
	}

	wb.Properties.Title = "Café Point - textos das apresentações"
	wb.Properties.Creator = decks[0].Deck.Author

	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetTitle trims a name to Excel's 31 character limit
func sheetTitle(name string) string {
	r := []rune(strings.TrimSpace(name))
	if len(r) == 0 {
		return "deck"
	}
	if len(r) > 31 {
		r = r[:31]
	}
	return string(r)
}

func copyRows(spec SlideSpec) []copyRow {
	rows := []copyRow{{element: "heading", text: spec.Title}}
	if spec.Subtitle != "" {
		rows = append(rows, copyRow{element: "subtitle", text: spec.Subtitle})
	}
	if spec.Body != "" {
		rows = append(rows, copyRow{element: "body", text: spec.Body})
	} else if spec.Kind == StatementSlide {
		rows = append(rows, copyRow{element: "body"})
	}
	for _, b := range spec.Bullets {
		rows = append(rows, copyRow{element: "bullet", text: b})
	}
	for _, item := range spec.Items {
		rows = append(rows,
			copyRow{element: "item", text: item.Heading},
			copyRow{element: "description", text: item.Description})
	}
	for i, c := range spec.Columns {
		rows = append(rows, copyRow{element: fmt.Sprintf("column %d", i+1), text: c.Heading})
		for _, l := range c.Lines {
			rows = append(rows, copyRow{element: fmt.Sprintf("column %d line", i+1), text: l})
		}
	}
	if spec.Footer != "" {
		rows = append(rows, copyRow{element: "footer", text: spec.Footer})
	}
	return rows
}
