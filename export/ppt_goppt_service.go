package export

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	ppt "github.com/VantageDataChat/GoPPT"
)

// GoPPTService renders decks to PowerPoint using GoPPT (pure Go, zero dependencies)
type GoPPTService struct {
	logger func(string)
}

// NewGoPPTService creates a new GoPPT service
func NewGoPPTService() *GoPPTService {
	return &GoPPTService{}
}

// SetLogger sets the callback used for progress messages
func (s *GoPPTService) SetLogger(logger func(string)) {
	s.logger = logger
}

func (s *GoPPTService) log(msg string) {
	if s.logger != nil {
		s.logger(msg)
	}
}

// Layout constants. Decks are set on the 4:3 screen layout, 10in x 7.5in.
const (
	emuPerInch = 914400

	canvasLayout = ppt.LayoutScreen4x3
	canvasWidth  = 10.0
	canvasHeight = 7.5

	contentLeft  = 0.5
	contentWidth = 9.0
	coverLeft    = 1.0
	coverWidth   = 8.0
	bottomMargin = 0.5
)

// box is a position and size in inches
type box struct {
	x, y, w, h float64
}

// textLine is one paragraph of a text box
type textLine struct {
	text  string
	size  int
	bold  bool
	color Color
}

// helper: create a solid fill
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// helper: set paragraph alignment to right
func alignRight(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
}

func applyAlignment(p *ppt.Paragraph, a Alignment) {
	switch a {
	case AlignCenter:
		alignCenter(p)
	case AlignRight:
		alignRight(p)
	}
}

func inches(v float64) int64 {
	return int64(v * emuPerInch)
}

// ExportDeckToPPT serialises every slide of the deck, in insertion order, to PPTX bytes
func (s *GoPPTService) ExportDeckToPPT(d *Deck) ([]byte, error) {
	if d == nil || d.Len() == 0 {
		return nil, ErrEmptyDeck
	}

	p := ppt.New()
	p.GetLayout().SetLayout(canvasLayout)
	p.GetDocumentProperties().Title = d.Title
	p.GetDocumentProperties().Creator = d.Author

	for i, spec := range d.slides {
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		s.renderSlide(slide, spec)
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}

	s.log(fmt.Sprintf("rendered %d slides for %q (%d bytes)", d.Len(), d.Title, buf.Len()))
	return buf.Bytes(), nil
}

func (s *GoPPTService) renderSlide(slide *ppt.Slide, spec SlideSpec) {
	th := spec.Theme

	bg := th.Background
	if spec.Kind == TitleSlide || spec.Kind == ClosingSlide {
		bg = th.coverBackground()
	}
	// the background goes first so every other shape sits above it
	if bg != nil {
		s.addRect(slide, box{0, 0, canvasWidth, canvasHeight}, *bg)
	}

	switch spec.Kind {
	case TitleSlide:
		s.addTitleSlide(slide, spec)
	case StatementSlide:
		s.addStatementSlide(slide, spec)
	case BulletSlide:
		s.addBulletSlide(slide, spec)
	case ClosingSlide:
		s.addClosingSlide(slide, spec)
	case DetailSlide:
		s.addDetailSlide(slide, spec)
	case ColumnsSlide:
		s.addColumnsSlide(slide, spec)
	}
}

// addRect adds a text-less filled rectangle (background, bars)
func (s *GoPPTService) addRect(slide *ppt.Slide, b box, c Color) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(inches(b.x)).SetOffsetY(inches(b.y))
	shape.SetWidth(inches(b.w)).SetHeight(inches(b.h))
	shape.SetFill(solidFill(c.ARGB()))
}

// addTextBox adds one text box with a paragraph per line
func (s *GoPPTService) addTextBox(slide *ppt.Slide, b box, font string, align Alignment, lines ...textLine) {
	shape := slide.CreateRichTextShape()
	shape.SetOffsetX(inches(b.x)).SetOffsetY(inches(b.y))
	shape.SetWidth(inches(b.w)).SetHeight(inches(b.h))

	for i, line := range lines {
		if i > 0 {
			shape.CreateParagraph()
		}
		tr := shape.CreateTextRun(line.text)
		tr.GetFont().SetSize(line.size).SetBold(line.bold).SetColor(ppt.NewColor(line.color.ARGB()))
		if font != "" {
			tr.GetFont().Name = font
		}
		applyAlignment(shape.GetActiveParagraph(), align)
	}
}

func (s *GoPPTService) addCoverDecor(slide *ppt.Slide, th StyleTheme) {
	switch th.Decor {
	case DecorSideBar:
		s.addRect(slide, box{0, 0, 0.3, canvasHeight}, th.Accent)
	case DecorHeaderBar:
		s.addRect(slide, box{0, canvasHeight - 0.3, canvasWidth, 0.3}, th.Accent)
	}
}

func (s *GoPPTService) addContentDecor(slide *ppt.Slide, th StyleTheme) {
	switch th.Decor {
	case DecorSideBar:
		s.addRect(slide, box{contentLeft, 0.5, 1.5, 0.1}, th.Accent)
	case DecorHeaderBar:
		s.addRect(slide, box{0, 0, canvasWidth, 0.15}, th.Accent)
		s.addRect(slide, box{contentLeft, 1.3, 3.0, 0.05}, th.Highlight)
	}
}

// addHeading adds the heading of a content slide and returns the y below it
func (s *GoPPTService) addHeading(slide *ppt.Slide, spec SlideSpec) float64 {
	th := spec.Theme
	s.addContentDecor(slide, th)

	align := AlignLeft
	if spec.Override.Align != "" {
		align = spec.Override.Align
	}
	y := 0.5
	if th.Decor == DecorSideBar {
		y = 0.8
	}
	s.addTextBox(slide, box{contentLeft, y, contentWidth, 1.0}, th.Font, align, textLine{
		text:  th.headingText(spec.Title),
		size:  pick(spec.Override.HeadingSize, th.Sizes.Heading),
		bold:  true,
		color: pickColor(spec.Override.HeadingColor, th.Heading),
	})
	return y + 1.3
}

func (s *GoPPTService) addTitleSlide(slide *ppt.Slide, spec SlideSpec) {
	th := spec.Theme
	s.addCoverDecor(slide, th)

	align := th.CoverAlign
	if spec.Override.Align != "" {
		align = spec.Override.Align
	}
	x := coverLeft
	if th.Decor == DecorSideBar {
		x = 1.5
	}

	s.addTextBox(slide, box{x, 2.5, coverWidth, 1.2}, th.Font, align, textLine{
		text:  spec.Title,
		size:  pick(spec.Override.HeadingSize, th.Sizes.Title),
		bold:  true,
		color: pickColor(spec.Override.HeadingColor, th.Title),
	})
	if spec.Subtitle != "" {
		s.addTextBox(slide, box{x, 3.8, coverWidth, 0.8}, th.Font, align, textLine{
			text:  spec.Subtitle,
			size:  pick(spec.Override.BodySize, th.Sizes.Subtitle),
			color: pickColor(spec.Override.BodyColor, th.Subtitle),
		})
	}
	if spec.Footer != "" {
		s.addTextBox(slide, box{x, 5.0, coverWidth, 0.8}, th.Font, align, textLine{
			text:  spec.Footer,
			size:  th.Sizes.Footer,
			color: th.Muted,
		})
	}
}

func (s *GoPPTService) addStatementSlide(slide *ppt.Slide, spec SlideSpec) {
	th := spec.Theme
	y := s.addHeading(slide, spec)

	// an empty body still gets its (empty) text frame
	s.addTextBox(slide, box{contentLeft, y + 0.3, contentWidth, 3.0}, th.Font, AlignLeft, textLine{
		text:  spec.Body,
		size:  pick(spec.Override.BodySize, th.Sizes.Body),
		color: pickColor(spec.Override.BodyColor, th.Body),
	})
}

func (s *GoPPTService) addBulletSlide(slide *ppt.Slide, spec SlideSpec) {
	th := spec.Theme
	y := s.addHeading(slide, spec)

	x := contentLeft
	if spec.Body != "" {
		s.addTextBox(slide, box{contentLeft, y, contentWidth, 1.4}, th.Font, AlignLeft, textLine{
			text:  spec.Body,
			size:  th.Sizes.Body,
			color: th.Body,
		})
		y += 1.5
		x += 0.4
	}

	if len(spec.Bullets) == 0 {
		return
	}
	lines := make([]textLine, len(spec.Bullets))
	for i, b := range spec.Bullets {
		lines[i] = textLine{
			text:  bulletLine(th.BulletMarker, b),
			size:  pick(spec.Override.BodySize, th.Sizes.Bullet),
			color: pickColor(spec.Override.BodyColor, th.Bullet),
		}
	}
	s.addTextBox(slide, box{x, y, contentWidth - (x - contentLeft), canvasHeight - y - bottomMargin}, th.Font, AlignLeft, lines...)
}

func (s *GoPPTService) addDetailSlide(slide *ppt.Slide, spec SlideSpec) {
	th := spec.Theme
	y := s.addHeading(slide, spec)

	if spec.Body != "" {
		s.addTextBox(slide, box{contentLeft, y - 0.1, contentWidth, 0.8}, th.Font, AlignLeft, textLine{
			text:  spec.Body,
			size:  th.Sizes.Body,
			color: th.Body,
		})
		y += 0.8
	}

	if len(spec.Items) == 0 {
		return
	}
	lines := make([]textLine, 0, len(spec.Items)*2)
	for _, item := range spec.Items {
		lines = append(lines,
			textLine{
				text:  spec.Override.ItemMarker + item.Heading,
				size:  th.Sizes.Item,
				bold:  true,
				color: pickColor(spec.Override.ItemColor, th.Body),
			},
			textLine{
				text:  spec.Override.DetailIndent + item.Description,
				size:  pick(spec.Override.BodySize, th.Sizes.Detail),
				color: pickColor(spec.Override.BodyColor, th.Muted),
			},
		)
	}
	s.addTextBox(slide, box{contentLeft, y, contentWidth, canvasHeight - y - bottomMargin}, th.Font, AlignLeft, lines...)
}

func (s *GoPPTService) addColumnsSlide(slide *ppt.Slide, spec SlideSpec) {
	th := spec.Theme
	y := s.addHeading(slide, spec)

	n := len(spec.Columns)
	if n == 0 {
		return
	}
	gap := 0.3
	colWidth := (contentWidth - float64(n-1)*gap) / float64(n)

	for i, col := range spec.Columns {
		lines := make([]textLine, 0, len(col.Lines)+1)
		lines = append(lines, textLine{
			text:  col.Heading,
			size:  th.Sizes.Item,
			bold:  true,
			color: pickColor(spec.Override.ItemColor, th.Body),
		})
		for _, l := range col.Lines {
			lines = append(lines, textLine{
				text:  bulletLine(th.BulletMarker, l),
				size:  pick(spec.Override.BodySize, th.Sizes.Bullet),
				color: pickColor(spec.Override.BodyColor, th.Bullet),
			})
		}
		x := contentLeft + float64(i)*(colWidth+gap)
		s.addTextBox(slide, box{x, y + 0.1, colWidth, canvasHeight - y - 0.1 - bottomMargin}, th.Font, AlignLeft, lines...)
	}
}

func (s *GoPPTService) addClosingSlide(slide *ppt.Slide, spec SlideSpec) {
	th := spec.Theme

	align := AlignCenter
	if spec.Override.Align != "" {
		align = spec.Override.Align
	}
	s.addTextBox(slide, box{coverLeft, 2.6, coverWidth, 1.2}, th.Font, align, textLine{
		text:  spec.Title,
		size:  pick(spec.Override.HeadingSize, th.Sizes.Closing),
		bold:  true,
		color: pickColor(spec.Override.HeadingColor, th.Closing),
	})
	if spec.Subtitle != "" {
		s.addTextBox(slide, box{coverLeft, 3.9, coverWidth, 0.8}, th.Font, align, textLine{
			text:  spec.Subtitle,
			size:  pick(spec.Override.BodySize, th.Sizes.Tagline),
			color: pickColor(spec.Override.BodyColor, th.Tagline),
		})
	}
	if spec.Footer != "" {
		s.addTextBox(slide, box{coverLeft, 4.8, coverWidth, 0.6}, th.Font, align, textLine{
			text:  spec.Footer,
			size:  th.Sizes.Footer,
			color: th.Muted,
		})
	}
}

func pick(override, fallback int) int {
	if override > 0 {
		return override
	}
	return fallback
}

func pickColor(override *Color, fallback Color) Color {
	if override != nil {
		return *override
	}
	return fallback
}

// bulletLine prefixes text with the marker unless it already starts with its own glyph
func bulletLine(marker, text string) string {
	if marker == "" || startsWithGlyph(text) {
		return text
	}
	return marker + text
}

func startsWithGlyph(text string) bool {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(text))
	if r == utf8.RuneError {
		return false
	}
	return unicode.Is(unicode.So, r) || strings.ContainsRune("•◦▪‣→", r)
}
