package export

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

// SlidePreview is the text outline of one slide: its first line and the lines after it
type SlidePreview struct {
	Title string   `json:"title"`
	Texts []string `json:"texts,omitempty"`
}

// PreviewPPTX reads a PPTX file with GoPPT's reader and returns the text outline of
// up to maxSlides slides (all slides when maxSlides <= 0). Empty lines are skipped.
func PreviewPPTX(filePath string, maxSlides int) ([]SlidePreview, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPT file: %w", err)
	}

	slides := pres.GetAllSlides()
	if len(slides) == 0 {
		return nil, fmt.Errorf("PPT file has no slides")
	}
	if maxSlides <= 0 || maxSlides > len(slides) {
		maxSlides = len(slides)
	}

	out := make([]SlidePreview, 0, maxSlides)
	for i := 0; i < maxSlides; i++ {
		sp := SlidePreview{}
		for _, shape := range slides[i].GetShapes() {
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			for _, para := range rts.GetParagraphs() {
				var text string
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok {
						text += run.GetText()
					}
				}
				text = strings.TrimSpace(text)
				if text == "" {
					continue
				}
				if sp.Title == "" {
					sp.Title = text
				} else {
					sp.Texts = append(sp.Texts, text)
				}
			}
		}
		out = append(out, sp)
	}
	return out, nil
}
