package export

// SlideKind identifies the layout variant of a slide
type SlideKind int

const (
	TitleSlide SlideKind = iota
	StatementSlide
	BulletSlide
	ClosingSlide
	DetailSlide
	ColumnsSlide
)

func (k SlideKind) String() string {
	switch k {
	case TitleSlide:
		return "title"
	case StatementSlide:
		return "statement"
	case BulletSlide:
		return "bullets"
	case ClosingSlide:
		return "closing"
	case DetailSlide:
		return "detail"
	case ColumnsSlide:
		return "columns"
	}
	return "unknown"
}

// DetailItem is a bold heading followed by a description paragraph
type DetailItem struct {
	Heading     string
	Description string
}

// Column is one column of a ColumnsSlide
type Column struct {
	Heading string
	Lines   []string
}

// StyleOverride replaces theme values for a single slide. Zero values keep the theme.
type StyleOverride struct {
	HeadingColor *Color
	HeadingSize  int
	BodyColor    *Color
	BodySize     int
	ItemColor    *Color
	Align        Alignment
	// ItemMarker and DetailIndent prefix detail item headings and descriptions as given
	ItemMarker   string
	DetailIndent string
}

// SlideSpec is the declarative description of one slide prior to rendering
type SlideSpec struct {
	Kind     SlideKind
	Title    string
	Subtitle string // title subtitle or closing tagline
	Body     string // statement body or the lead line of bullet/detail slides
	Footer   string
	Bullets  []string
	Items    []DetailItem
	Columns  []Column
	Theme    StyleTheme
	Override StyleOverride
}

// SlideOption customises a slide as it is added
type SlideOption func(*SlideSpec)

// WithFooter adds a small trailing line (cover footer, closing call to action)
func WithFooter(text string) SlideOption {
	return func(s *SlideSpec) { s.Footer = text }
}

// WithLead adds a highlighted sentence between the heading and the list
func WithLead(text string) SlideOption {
	return func(s *SlideSpec) { s.Body = text }
}

// WithHeadingColor overrides the heading color
func WithHeadingColor(c Color) SlideOption {
	return func(s *SlideSpec) { s.Override.HeadingColor = c.Ptr() }
}

// WithHeadingSize overrides the heading size in points
func WithHeadingSize(pt int) SlideOption {
	return func(s *SlideSpec) { s.Override.HeadingSize = pt }
}

// WithBodyColor overrides the body/bullet color
func WithBodyColor(c Color) SlideOption {
	return func(s *SlideSpec) { s.Override.BodyColor = c.Ptr() }
}

// WithBodySize overrides the body/bullet size in points
func WithBodySize(pt int) SlideOption {
	return func(s *SlideSpec) { s.Override.BodySize = pt }
}

// WithItemColor overrides the color of detail item headings
func WithItemColor(c Color) SlideOption {
	return func(s *SlideSpec) { s.Override.ItemColor = c.Ptr() }
}

// WithItemMarker prefixes every detail item heading with marker and every description
// with indent. The marker is written as is, even before an emoji.
func WithItemMarker(marker, indent string) SlideOption {
	return func(s *SlideSpec) {
		s.Override.ItemMarker = marker
		s.Override.DetailIndent = indent
	}
}

// WithAlignment overrides the heading alignment
func WithAlignment(a Alignment) SlideOption {
	return func(s *SlideSpec) { s.Override.Align = a }
}

// Deck is an ordered, append-only sequence of slide specifications.
// Nothing is written until the deck is exported.
type Deck struct {
	Title  string
	Author string
	slides []SlideSpec
}

// NewDeck creates an empty deck
func NewDeck(title, author string) *Deck {
	return &Deck{Title: title, Author: author}
}

// Len returns the number of slides added so far
func (d *Deck) Len() int {
	return len(d.slides)
}

// Slides returns copies of the slide specifications in insertion order
func (d *Deck) Slides() []SlideSpec {
	out := make([]SlideSpec, len(d.slides))
	for i, s := range d.slides {
		out[i] = s.clone()
	}
	return out
}

// AddTitleSlide appends a cover slide with a large heading and an optional subtitle
func (d *Deck) AddTitleSlide(title, subtitle string, theme StyleTheme, opts ...SlideOption) *Deck {
	return d.add(SlideSpec{Kind: TitleSlide, Title: title, Subtitle: subtitle}, theme, opts)
}

// AddStatementSlide appends a heading with a single paragraph of supporting text
func (d *Deck) AddStatementSlide(title, body string, theme StyleTheme, opts ...SlideOption) *Deck {
	return d.add(SlideSpec{Kind: StatementSlide, Title: title, Body: body}, theme, opts)
}

// AddBulletSlide appends a heading with a vertically stacked list of bullet lines.
// An empty list yields a heading-only slide.
func (d *Deck) AddBulletSlide(title string, bullets []string, theme StyleTheme, opts ...SlideOption) *Deck {
	return d.add(SlideSpec{Kind: BulletSlide, Title: title, Bullets: bullets}, theme, opts)
}

// AddClosingSlide appends a centered closing slide
func (d *Deck) AddClosingSlide(headline, tagline string, theme StyleTheme, opts ...SlideOption) *Deck {
	return d.add(SlideSpec{Kind: ClosingSlide, Title: headline, Subtitle: tagline}, theme, opts)
}

// AddDetailSlide appends a heading, an optional lead and heading/description pairs
func (d *Deck) AddDetailSlide(title, lead string, items []DetailItem, theme StyleTheme, opts ...SlideOption) *Deck {
	return d.add(SlideSpec{Kind: DetailSlide, Title: title, Body: lead, Items: items}, theme, opts)
}

// AddColumnsSlide appends a heading and side-by-side columns of lines
func (d *Deck) AddColumnsSlide(title string, columns []Column, theme StyleTheme, opts ...SlideOption) *Deck {
	return d.add(SlideSpec{Kind: ColumnsSlide, Title: title, Columns: columns}, theme, opts)
}

func (d *Deck) add(spec SlideSpec, theme StyleTheme, opts []SlideOption) *Deck {
	spec.Theme = theme
	for _, opt := range opts {
		if opt != nil {
			opt(&spec)
		}
	}
	// callers keep their slices; the deck keeps its own copy
	d.slides = append(d.slides, spec.clone())
	return d
}

func (s SlideSpec) clone() SlideSpec {
	out := s
	out.Theme = s.Theme.Clone()
	if s.Bullets != nil {
		out.Bullets = append([]string(nil), s.Bullets...)
	}
	if s.Items != nil {
		out.Items = append([]DetailItem(nil), s.Items...)
	}
	if s.Columns != nil {
		out.Columns = make([]Column, len(s.Columns))
		for i, c := range s.Columns {
			out.Columns[i] = Column{Heading: c.Heading, Lines: append([]string(nil), c.Lines...)}
		}
	}
	if s.Override.HeadingColor != nil {
		out.Override.HeadingColor = s.Override.HeadingColor.Ptr()
	}
	if s.Override.BodyColor != nil {
		out.Override.BodyColor = s.Override.BodyColor.Ptr()
	}
	if s.Override.ItemColor != nil {
		out.Override.ItemColor = s.Override.ItemColor.Ptr()
	}
	return out
}
