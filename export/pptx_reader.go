package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

// DeckSummary is what a produced PPTX file contains, read back from its XML parts
type DeckSummary struct {
	Title       string
	Creator     string
	SlideWidth  int64 // EMU
	SlideHeight int64 // EMU
	Slides      []SlideSummary
}

// SlideSummary lists the shapes of one slide in z-order
type SlideSummary struct {
	Index  int
	Shapes []ShapeSummary
}

// ShapeSummary is one shape: position, optional fill, text
type ShapeSummary struct {
	X, Y, W, H int64 // EMU
	Fill       *Color
	HasText    bool
	Paragraphs []ParagraphSummary
}

// ParagraphSummary is one paragraph of a text body
type ParagraphSummary struct {
	Align string
	Runs  []RunSummary
}

// RunSummary is one text run with its character properties
type RunSummary struct {
	Text  string
	Size  int // points
	Bold  bool
	Color *Color
	Font  string
}

// Text concatenates the runs of a paragraph
func (p ParagraphSummary) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Text joins the paragraphs of a shape with newlines
func (s ShapeSummary) Text() string {
	lines := make([]string, len(s.Paragraphs))
	for i, p := range s.Paragraphs {
		lines[i] = p.Text()
	}
	return strings.Join(lines, "\n")
}

// FirstRun returns the first run of the shape, if any
func (s ShapeSummary) FirstRun() (RunSummary, bool) {
	for _, p := range s.Paragraphs {
		if len(p.Runs) > 0 {
			return p.Runs[0], true
		}
	}
	return RunSummary{}, false
}

// TextElements returns the text boxes of the slide. Backgrounds and bars carry a
// fill and no text, text boxes carry a text body and no fill.
func (s SlideSummary) TextElements() []ShapeSummary {
	var out []ShapeSummary
	for _, sh := range s.Shapes {
		if sh.HasText && sh.Fill == nil {
			out = append(out, sh)
		}
	}
	return out
}

// Decorations returns the filled shapes of the slide
func (s SlideSummary) Decorations() []ShapeSummary {
	var out []ShapeSummary
	for _, sh := range s.Shapes {
		if sh.Fill != nil {
			out = append(out, sh)
		}
	}
	return out
}

// OpenPPTX reads a PPTX file from disk
func OpenPPTX(filename string) (*DeckSummary, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	return ReadPPTX(data)
}

// ReadPPTX parses PPTX bytes. Slide order follows the presentation's slide id list.
func ReadPPTX(data []byte) (*DeckSummary, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PPTX container: %w", err)
	}
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	var pres xmlPresentation
	if err := decodePart(files, "ppt/presentation.xml", &pres); err != nil {
		return nil, err
	}
	var rels xmlRelationships
	if err := decodePart(files, "ppt/_rels/presentation.xml.rels", &rels); err != nil {
		return nil, err
	}
	targets := make(map[string]string, len(rels.Items))
	for _, r := range rels.Items {
		targets[r.ID] = resolveTarget("ppt", r.Target)
	}

	summary := &DeckSummary{
		SlideWidth:  pres.SlideSize.Cx,
		SlideHeight: pres.SlideSize.Cy,
	}

	var core xmlCoreProperties
	if _, ok := files["docProps/core.xml"]; ok {
		if err := decodePart(files, "docProps/core.xml", &core); err != nil {
			return nil, err
		}
		summary.Title = core.Title
		summary.Creator = core.Creator
	}

	for i, id := range pres.SlideIDs {
		target, ok := targets[id.RID]
		if !ok {
			return nil, fmt.Errorf("slide %d: relationship %q not found", i+1, id.RID)
		}
		var sld xmlSlide
		if err := decodePart(files, target, &sld); err != nil {
			return nil, err
		}
		summary.Slides = append(summary.Slides, convertSlide(i, sld))
	}
	return summary, nil
}

func resolveTarget(base, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(base, target))
}

func decodePart(files map[string]*zip.File, name string, v interface{}) error {
	f, ok := files[name]
	if !ok {
		return fmt.Errorf("missing part %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open part %s: %w", name, err)
	}
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("failed to read part %s: %w", name, err)
	}
	if err := xml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to parse part %s: %w", name, err)
	}
	return nil
}

func convertSlide(index int, sld xmlSlide) SlideSummary {
	out := SlideSummary{Index: index}
	for _, sp := range sld.Shapes {
		sh := ShapeSummary{
			X: sp.Offset.X, Y: sp.Offset.Y,
			W: sp.Extent.Cx, H: sp.Extent.Cy,
			Fill: sp.Fill.color(),
		}
		if sp.TxBody != nil {
			for _, p := range sp.TxBody.Paragraphs {
				para := ParagraphSummary{}
				if p.Props != nil {
					para.Align = p.Props.Align
				}
				for _, r := range p.Runs {
					run := RunSummary{Text: r.Text}
					if r.Props != nil {
						run.Size = r.Props.Size / 100
						run.Bold = r.Props.Bold == "1" || r.Props.Bold == "true"
						run.Color = r.Props.Fill.color()
						if r.Props.Latin != nil {
							run.Font = r.Props.Latin.Typeface
						}
					}
					para.Runs = append(para.Runs, run)
				}
				sh.Paragraphs = append(sh.Paragraphs, para)
			}
			sh.HasText = len(sh.Paragraphs) > 0
		}
		out.Shapes = append(out.Shapes, sh)
	}
	return out
}

// XML parts. Tags carry local names only so any namespace prefix matches.

type xmlPresentation struct {
	SlideIDs []struct {
		RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
	SlideSize struct {
		Cx int64 `xml:"cx,attr"`
		Cy int64 `xml:"cy,attr"`
	} `xml:"sldSz"`
}

type xmlRelationships struct {
	Items []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type xmlCoreProperties struct {
	Title   string `xml:"title"`
	Creator string `xml:"creator"`
}

type xmlSlide struct {
	Shapes []xmlShape `xml:"cSld>spTree>sp"`
}

type xmlShape struct {
	Offset struct {
		X int64 `xml:"x,attr"`
		Y int64 `xml:"y,attr"`
	} `xml:"spPr>xfrm>off"`
	Extent struct {
		Cx int64 `xml:"cx,attr"`
		Cy int64 `xml:"cy,attr"`
	} `xml:"spPr>xfrm>ext"`
	Fill   *xmlSolidFill `xml:"spPr>solidFill"`
	TxBody *struct {
		Paragraphs []struct {
			Props *struct {
				Align string `xml:"algn,attr"`
			} `xml:"pPr"`
			Runs []struct {
				Props *struct {
					Size  int           `xml:"sz,attr"`
					Bold  string        `xml:"b,attr"`
					Fill  *xmlSolidFill `xml:"solidFill"`
					Latin *struct {
						Typeface string `xml:"typeface,attr"`
					} `xml:"latin"`
				} `xml:"rPr"`
				Text string `xml:"t"`
			} `xml:"r"`
		} `xml:"p"`
	} `xml:"txBody"`
}

type xmlSolidFill struct {
	SRGB *struct {
		Val string `xml:"val,attr"`
	} `xml:"srgbClr"`
}

func (f *xmlSolidFill) color() *Color {
	if f == nil || f.SRGB == nil {
		return nil
	}
	c, err := ParseHexColor(f.SRGB.Val)
	if err != nil {
		return nil
	}
	return &c
}
