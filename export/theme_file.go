package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// themeFile is the on-disk layout:
//
//	themes:
//	  night-sales:
//	    base: sales
//	    accent: "#22c55e"
//	    sizes: {title: 60}
type themeFile struct {
	Themes map[string]yaml.Node `yaml:"themes"`
}

// LoadThemeFile reads YAML themes from path. Each theme starts from its "base"
// built-in (premium when omitted) and overrides only the keys it sets.
func LoadThemeFile(path string) (map[string]StyleTheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	return ParseThemes(data)
}

// ParseThemes parses YAML theme definitions
func ParseThemes(data []byte) (map[string]StyleTheme, error) {
	var file themeFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse themes: %w", err)
	}

	out := make(map[string]StyleTheme, len(file.Themes))
	for name, node := range file.Themes {
		var head struct {
			Base string `yaml:"base"`
		}
		if err := node.Decode(&head); err != nil {
			return nil, fmt.Errorf("theme %q: %w", name, err)
		}
		baseName := head.Base
		if baseName == "" {
			baseName = ThemePremium.Name
		}
		theme, ok := BuiltinTheme(baseName)
		if !ok {
			return nil, fmt.Errorf("theme %q: unknown base %q", name, baseName)
		}
		if err := node.Decode(&theme); err != nil {
			return nil, fmt.Errorf("theme %q: %w", name, err)
		}
		theme.Name = name
		out[name] = theme
	}
	return out, nil
}
