// Package decks holds the Café Point pitch decks as Go values.
package decks

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"pitchdeck/export"
)

// Author is written to the document properties of every deck
const Author = "Café Point"

// Entry is one deck of the catalogue
type Entry struct {
	Name     string
	FileName string
	Theme    export.StyleTheme
	// Success is printed once the file has been written
	Success string
	Build   func(theme export.StyleTheme) *export.Deck
}

var registry = map[string]Entry{}

func register(e Entry) {
	if _, dup := registry[e.Name]; dup {
		panic("decks: duplicate entry " + e.Name)
	}
	registry[e.Name] = e
}

// Lookup returns the entry registered under name (case-insensitive)
func Lookup(name string) (Entry, bool) {
	e, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

// Names returns the registered deck names, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// All returns every entry ordered by name
func All() []Entry {
	out := make([]Entry, 0, len(registry))
	for _, n := range Names() {
		out = append(out, registry[n])
	}
	return out
}

// Generate builds the deck with theme and writes it to dir/FileName.
// It returns the path written.
func (e Entry) Generate(svc *export.PPTExportService, theme export.StyleTheme, dir string) (string, error) {
	deck := e.Build(theme)
	path := filepath.Join(dir, e.FileName)
	if err := svc.SaveDeckToFile(deck, path); err != nil {
		return "", fmt.Errorf("deck %s: %w", e.Name, err)
	}
	return path, nil
}
