package export

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an explicit RGB triple
type Color struct {
	R, G, B uint8
}

// RGB creates a Color
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseHexColor parses "#RRGGBB", "RRGGBB" or "AARRGGBB" (alpha is dropped)
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 8 {
		hex = hex[2:]
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the color as "RRGGBB"
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ARGB returns the opaque GoPPT form "FFRRGGBB"
func (c Color) ARGB() string {
	return "FF" + c.Hex()
}

func (c Color) String() string {
	return "#" + c.Hex()
}

// Ptr returns a pointer to a copy of c
func (c Color) Ptr() *Color {
	return &c
}

// UnmarshalYAML accepts hex strings ("#4f46e5") or [r, g, b] sequences
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var parts []int
		if err := value.Decode(&parts); err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		if len(parts) != 3 {
			return fmt.Errorf("line %d: color needs 3 components, got %d", value.Line, len(parts))
		}
		for _, p := range parts {
			if p < 0 || p > 255 {
				return fmt.Errorf("line %d: color component %d out of range", value.Line, p)
			}
		}
		*c = RGB(uint8(parts[0]), uint8(parts[1]), uint8(parts[2]))
		return nil
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML writes the color as "#RRGGBB"
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// Alignment is the horizontal alignment of a paragraph
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Decor selects the decorative shapes drawn around the text
type Decor string

const (
	DecorNone      Decor = "none"
	DecorSideBar   Decor = "sidebar"
	DecorHeaderBar Decor = "headerbar"
)

// FontSizes holds point sizes per text role
type FontSizes struct {
	Title    int `yaml:"title" json:"title"`
	Subtitle int `yaml:"subtitle" json:"subtitle"`
	Footer   int `yaml:"footer" json:"footer"`
	Heading  int `yaml:"heading" json:"heading"`
	Body     int `yaml:"body" json:"body"`
	Bullet   int `yaml:"bullet" json:"bullet"`
	Item     int `yaml:"item" json:"item"`
	Detail   int `yaml:"detail" json:"detail"`
	Closing  int `yaml:"closing" json:"closing"`
	Tagline  int `yaml:"tagline" json:"tagline"`
}

// StyleTheme maps semantic roles to concrete colors and fonts.
// It is constant for the lifetime of one deck.
type StyleTheme struct {
	Name string `yaml:"name"`
	Font string `yaml:"font"`

	// Background of content slides; nil keeps the default white canvas.
	Background *Color `yaml:"background"`
	// CoverBackground is used by title and closing slides; nil falls back to Background.
	CoverBackground *Color `yaml:"coverBackground"`

	Title     Color `yaml:"title"`
	Subtitle  Color `yaml:"subtitle"`
	Heading   Color `yaml:"heading"`
	Body      Color `yaml:"body"`
	Bullet    Color `yaml:"bullet"`
	Muted     Color `yaml:"muted"`
	Accent    Color `yaml:"accent"`
	Highlight Color `yaml:"highlight"`
	Closing   Color `yaml:"closing"`
	Tagline   Color `yaml:"tagline"`
	Alert     Color `yaml:"alert"`
	Positive  Color `yaml:"positive"`

	Sizes FontSizes `yaml:"sizes"`

	CoverAlign        Alignment `yaml:"coverAlign"`
	BulletMarker      string    `yaml:"bulletMarker"`
	UppercaseHeadings bool      `yaml:"uppercaseHeadings"`
	Decor             Decor     `yaml:"decor"`
}

// Clone returns a deep copy of the theme
func (t StyleTheme) Clone() StyleTheme {
	out := t
	if t.Background != nil {
		out.Background = t.Background.Ptr()
	}
	if t.CoverBackground != nil {
		out.CoverBackground = t.CoverBackground.Ptr()
	}
	return out
}

func (t StyleTheme) coverBackground() *Color {
	if t.CoverBackground != nil {
		return t.CoverBackground
	}
	return t.Background
}

func (t StyleTheme) headingText(title string) string {
	if t.UppercaseHeadings {
		return strings.ToUpper(title)
	}
	return title
}

// Built-in palettes of the four Café Point decks.
var (
	// ThemePremium is the minimalist light palette: black on white, no decoration.
	ThemePremium = StyleTheme{
		Name:      "premium",
		Title:     RGB(0, 0, 0),
		Subtitle:  RGB(60, 60, 60),
		Heading:   RGB(0, 0, 0),
		Body:      RGB(60, 60, 60),
		Bullet:    RGB(60, 60, 60),
		Muted:     RGB(60, 60, 60),
		Accent:    RGB(0, 0, 0),
		Highlight: RGB(60, 60, 60),
		Closing:   RGB(0, 0, 0),
		Tagline:   RGB(60, 60, 60),
		Alert:     RGB(0, 0, 0),
		Positive:  RGB(0, 0, 0),
		Sizes: FontSizes{
			Title: 44, Subtitle: 20, Footer: 14,
			Heading: 30, Body: 24, Bullet: 20,
			Item: 22, Detail: 18,
			Closing: 44, Tagline: 20,
		},
		CoverAlign:   AlignCenter,
		BulletMarker: "• ",
		Decor:        DecorNone,
	}

	// ThemeDark is the dark-mode palette with an indigo side bar.
	ThemeDark = StyleTheme{
		Name:       "dark",
		Font:       "Arial",
		Background: RGB(19, 23, 34).Ptr(),
		Title:      RGB(79, 70, 229),
		Subtitle:   RGB(255, 255, 255),
		Heading:    RGB(255, 255, 255),
		Body:       RGB(203, 213, 225),
		Bullet:     RGB(255, 255, 255),
		Muted:      RGB(203, 213, 225),
		Accent:     RGB(79, 70, 229),
		Highlight:  RGB(79, 70, 229),
		Closing:    RGB(79, 70, 229),
		Tagline:    RGB(203, 213, 225),
		Alert:      RGB(239, 68, 68),
		Positive:   RGB(34, 197, 94),
		Sizes: FontSizes{
			Title: 64, Subtitle: 28, Footer: 14,
			Heading: 36, Body: 24, Bullet: 20,
			Item: 22, Detail: 18,
			Closing: 54, Tagline: 20,
		},
		CoverAlign:        AlignLeft,
		BulletMarker:      "• ",
		UppercaseHeadings: true,
		Decor:             DecorSideBar,
	}

	// ThemeBranded follows the product web page: navy covers, light content slides,
	// indigo header bar and amber accents.
	ThemeBranded = StyleTheme{
		Name:            "branded",
		Font:            "Segoe UI",
		Background:      RGB(248, 250, 252).Ptr(),
		CoverBackground: RGB(30, 27, 75).Ptr(),
		Title:           RGB(255, 255, 255),
		Subtitle:        RGB(245, 158, 11),
		Heading:         RGB(30, 27, 75),
		Body:            RGB(51, 51, 51),
		Bullet:          RGB(51, 51, 51),
		Muted:           RGB(226, 232, 240),
		Accent:          RGB(79, 70, 229),
		Highlight:       RGB(245, 158, 11),
		Closing:         RGB(255, 255, 255),
		Tagline:         RGB(245, 158, 11),
		Alert:           RGB(239, 68, 68),
		Positive:        RGB(34, 197, 94),
		Sizes: FontSizes{
			Title: 60, Subtitle: 32, Footer: 20,
			Heading: 36, Body: 22, Bullet: 22,
			Item: 22, Detail: 18,
			Closing: 54, Tagline: 24,
		},
		CoverAlign: AlignCenter,
		Decor:      DecorHeaderBar,
	}

	// ThemeSales is the slate palette of the ROI-focused sales deck.
	ThemeSales = StyleTheme{
		Name:       "sales",
		Font:       "Arial",
		Background: RGB(15, 23, 42).Ptr(),
		Title:      RGB(248, 250, 252),
		Subtitle:   RGB(99, 102, 241),
		Heading:    RGB(99, 102, 241),
		Body:       RGB(248, 250, 252),
		Bullet:     RGB(148, 163, 184),
		Muted:      RGB(148, 163, 184),
		Accent:     RGB(99, 102, 241),
		Highlight:  RGB(99, 102, 241),
		Closing:    RGB(99, 102, 241),
		Tagline:    RGB(248, 250, 252),
		Alert:      RGB(239, 68, 68),
		Positive:   RGB(34, 197, 94),
		Sizes: FontSizes{
			Title: 66, Subtitle: 28, Footer: 20,
			Heading: 32, Body: 24, Bullet: 20,
			Item: 24, Detail: 18,
			Closing: 48, Tagline: 24,
		},
		CoverAlign:   AlignLeft,
		BulletMarker: "• ",
		Decor:        DecorNone,
	}
)

// BuiltinThemes returns copies of the built-in themes keyed by name
func BuiltinThemes() map[string]StyleTheme {
	return map[string]StyleTheme{
		ThemePremium.Name: ThemePremium.Clone(),
		ThemeDark.Name:    ThemeDark.Clone(),
		ThemeBranded.Name: ThemeBranded.Clone(),
		ThemeSales.Name:   ThemeSales.Clone(),
	}
}

// BuiltinTheme looks up a built-in theme by name
func BuiltinTheme(name string) (StyleTheme, bool) {
	t, ok := BuiltinThemes()[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}
