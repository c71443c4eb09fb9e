package config

import "strings"

// ThemeOverride changes a few values of a theme for one batch run.
// Colors are hex strings ("#22c55e"); empty fields keep the theme value.
type ThemeOverride struct {
	Font      string `json:"font,omitempty"`
	Accent    string `json:"accent,omitempty"`
	Heading   string `json:"heading,omitempty"`
	Body      string `json:"body,omitempty"`
	TitleSize int    `json:"titleSize,omitempty"`
}

// Config structure
type Config struct {
	OutputDir     string   `json:"outputDir"`
	LogDir        string   `json:"logDir"`
	Language      string   `json:"language"`
	Decks         []string `json:"decks"`                   // empty generates every deck
	Handout       bool     `json:"handout"`                 // also write an outline per deck
	HandoutFormat string   `json:"handoutFormat,omitempty"` // "docx" (default) or "pdf"
	CopySheet     bool     `json:"copySheet"`               // also write one .xlsx with the text of every deck
	ThemeFile     string   `json:"themeFile,omitempty"`
	DetailedLog   bool     `json:"detailedLog"`

	// Themes maps a deck name to the theme it is rendered with (built-in or from ThemeFile)
	Themes map[string]string `json:"themes,omitempty"`
	// ThemeOverrides maps a theme name to per-run tweaks
	ThemeOverrides map[string]ThemeOverride `json:"themeOverrides,omitempty"`
}

const (
	LanguagePortuguese = "Português"
	LanguageEnglish    = "English"
)

// Handout formats
const (
	HandoutDOCX = "docx"
	HandoutPDF  = "pdf"
)

// Default returns the configuration used when no config file exists
func Default() Config {
	return Config{
		OutputDir:     ".",
		LogDir:        "logs",
		Language:      LanguagePortuguese,
		HandoutFormat: HandoutDOCX,
	}
}

// Validate fills empty fields with defaults and normalises deck names
func (c *Config) Validate() {
	def := Default()
	if strings.TrimSpace(c.OutputDir) == "" {
		c.OutputDir = def.OutputDir
	}
	if strings.TrimSpace(c.LogDir) == "" {
		c.LogDir = def.LogDir
	}
	switch c.Language {
	case LanguagePortuguese, LanguageEnglish:
	default:
		c.Language = def.Language
	}
	switch f := strings.ToLower(strings.TrimSpace(c.HandoutFormat)); f {
	case HandoutDOCX, HandoutPDF:
		c.HandoutFormat = f
	default:
		c.HandoutFormat = def.HandoutFormat
	}

	names := c.Decks[:0]
	seen := make(map[string]bool, len(c.Decks))
	for _, n := range c.Decks {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	c.Decks = names
}
