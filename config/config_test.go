package config

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestValidate_Defaults(t *testing.T) {
	var c Config
	c.Validate()
	assert.Equal(t, ".", c.OutputDir)
	assert.Equal(t, "logs", c.LogDir)
	assert.Equal(t, LanguagePortuguese, c.Language)
	assert.Equal(t, HandoutDOCX, c.HandoutFormat)
	assert.Empty(t, c.Decks)
}

func TestValidate_HandoutFormat(t *testing.T) {
	for in, want := range map[string]string{"pdf": HandoutPDF, " PDF ": HandoutPDF, "docx": HandoutDOCX, "odt": HandoutDOCX, "": HandoutDOCX} {
		c := Config{HandoutFormat: in}
		c.Validate()
		assert.Equal(t, want, c.HandoutFormat, "format %q", in)
	}
}

func TestValidate_KeepsValues(t *testing.T) {
	c := Config{OutputDir: "out", LogDir: "l", Language: LanguageEnglish, Decks: []string{" Sales", "sales", "", "DARK"}}
	c.Validate()
	assert.Equal(t, "out", c.OutputDir)
	assert.Equal(t, LanguageEnglish, c.Language)
	assert.Equal(t, []string{"sales", "dark"}, c.Decks)
}

// Property: Validate is idempotent and always leaves a supported language
func TestValidate_Properties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("validate twice == validate once", prop.ForAll(
		func(lang, out string, decks []string) bool {
			c := Config{Language: lang, OutputDir: out, Decks: decks}
			c.Validate()
			once := Config{Language: c.Language, OutputDir: c.OutputDir, LogDir: c.LogDir, Decks: append([]string(nil), c.Decks...)}
			c.Validate()
			if c.Language != LanguagePortuguese && c.Language != LanguageEnglish {
				return false
			}
			if c.Language != once.Language || c.OutputDir != once.OutputDir || len(c.Decks) != len(once.Decks) {
				return false
			}
			for i := range c.Decks {
				if c.Decks[i] != once.Decks[i] {
					return false
				}
			}
			return true
		},
		gen.OneConstOf("", "English", "Português", "简体中文"),
		gen.AlphaString(),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
