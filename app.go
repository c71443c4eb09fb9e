package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"pitchdeck/config"
	"pitchdeck/decks"
	"pitchdeck/export"
	"pitchdeck/i18n"
	"pitchdeck/logger"
)

// GenerateResult describes one deck written by a batch run
type GenerateResult struct {
	Deck    string
	Theme   string
	Path    string
	Handout string
	Slides  int
}

// CopySheetFileName is the workbook written next to the decks when CopySheet is on
const CopySheetFileName = "Cafe_Point_Textos.xlsx"

// App drives a batch run: config, themes, logging and the export services
type App struct {
	runID         string
	cfg           config.Config
	configService *ConfigService
	logger        *logger.Logger
	themes        map[string]export.StyleTheme
	pptService    *export.PPTExportService
	wordService   *export.WordHandoutService
	pdfService    *export.PDFHandoutService
	excelService  *export.CopySheetService
}

// NewApp creates an App reading its configuration from configPath (may be empty)
func NewApp(configPath string) *App {
	l := logger.NewLogger()
	return &App{
		runID:         uuid.New().String(),
		configService: NewConfigService(configPath, l.Log),
		logger:        l,
		pptService:    export.NewPPTExportService(),
		wordService:   export.NewWordHandoutService(),
		pdfService:    export.NewPDFHandoutService(),
		excelService:  export.NewCopySheetService(),
	}
}

// Log writes to the run log
func (a *App) Log(message string) {
	a.logger.Log(message)
}

// Config returns the active configuration
func (a *App) Config() config.Config {
	return a.cfg
}

// Startup loads the config, applies overrides, opens the log and resolves the themes.
// On failure the run log is already closed.
func (a *App) Startup(override func(*config.Config)) error {
	cfg, err := a.configService.GetConfig()
	if err != nil {
		return WrapOperationError("load config", err)
	}
	if override != nil {
		override(&cfg)
	}
	cfg.Validate()
	a.cfg = cfg

	i18n.SetLanguage(i18n.ParseLanguage(cfg.Language))

	if cfg.DetailedLog {
		if err := a.logger.Init(cfg.LogDir); err != nil {
			return WrapOperationError("initialize logging", err)
		}
		a.pptService.SetLogger(a.Log)
	}
	a.Log(fmt.Sprintf("[STARTUP] run %s, config %q, language %s", a.runID, a.configService.Path(), i18n.GetLanguage()))

	themes, err := loadThemes(cfg)
	if err != nil {
		a.Log(fmt.Sprintf("[STARTUP] failed: %v", err))
		a.logger.Close()
		return err
	}
	a.themes = themes
	return nil
}

// Shutdown closes the run log
func (a *App) Shutdown() {
	a.Log(fmt.Sprintf("[SHUTDOWN] run %s", a.runID))
	a.logger.Close()
}

// loadThemes merges the built-in themes, the theme file and the per-run overrides
func loadThemes(cfg config.Config) (map[string]export.StyleTheme, error) {
	themes := export.BuiltinThemes()
	if cfg.ThemeFile != "" {
		custom, err := export.LoadThemeFile(cfg.ThemeFile)
		if err != nil {
			return nil, WrapError("theme", "LoadThemeFile", err)
		}
		for name, th := range custom {
			themes[name] = th
		}
	}

	for name, o := range cfg.ThemeOverrides {
		th, ok := themes[name]
		if !ok {
			return nil, WrapError("theme", "ApplyOverride", fmt.Errorf("%s", i18n.T("cli.unknown_theme", name)))
		}
		applied, err := applyOverride(th, o)
		if err != nil {
			return nil, WrapError("theme", "ApplyOverride", fmt.Errorf("%s", i18n.T("cli.invalid_override", name, err)))
		}
		themes[name] = applied
	}
	return themes, nil
}

func applyOverride(th export.StyleTheme, o config.ThemeOverride) (export.StyleTheme, error) {
	th = th.Clone()
	if o.Font != "" {
		th.Font = o.Font
	}
	if o.TitleSize > 0 {
		th.Sizes.Title = o.TitleSize
	}
	colors := []struct {
		value string
		dst   *export.Color
	}{
		{o.Accent, &th.Accent},
		{o.Heading, &th.Heading},
		{o.Body, &th.Body},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		parsed, err := export.ParseHexColor(c.value)
		if err != nil {
			return th, err
		}
		*c.dst = parsed
	}
	return th, nil
}

// ResolveDecks maps names to catalogue entries. No names selects the configured decks,
// or every deck when none are configured.
func (a *App) ResolveDecks(names []string) ([]decks.Entry, error) {
	if len(names) == 0 {
		names = a.cfg.Decks
	}
	if len(names) == 0 {
		return decks.All(), nil
	}

	out := make([]decks.Entry, 0, len(names))
	for _, n := range names {
		e, ok := decks.Lookup(n)
		if !ok {
			return nil, fmt.Errorf("%s", i18n.T("cli.unknown_deck", n, strings.Join(decks.Names(), ", ")))
		}
		out = append(out, e)
	}
	return out, nil
}

// ThemeFor returns the theme a deck is rendered with
func (a *App) ThemeFor(e decks.Entry) (export.StyleTheme, error) {
	name := e.Theme.Name
	if configured, ok := a.cfg.Themes[e.Name]; ok && configured != "" {
		name = configured
	}
	th, ok := a.themes[name]
	if !ok {
		return export.StyleTheme{}, fmt.Errorf("%s", i18n.T("cli.unknown_theme", name))
	}
	return th, nil
}

// GenerateDecks writes the selected decks, one after the other, into the output directory.
// With CopySheet on, the text of every written deck also goes to one workbook.
func (a *App) GenerateDecks(names []string) ([]GenerateResult, error) {
	entries, err := a.ResolveDecks(names)
	if err != nil {
		return nil, WrapError("generate", "ResolveDecks", err)
	}
	if err := os.MkdirAll(a.cfg.OutputDir, 0755); err != nil {
		return nil, WrapError("generate", "CreateOutputDir", err)
	}

	results := make([]GenerateResult, 0, len(entries))
	built := make([]export.NamedDeck, 0, len(entries))
	for _, e := range entries {
		deck, res, err := a.generateOne(e)
		if err != nil {
			a.Log(fmt.Sprintf("[GENERATE] %s failed: %v", e.Name, err))
			return results, WrapError("generate", e.Name, err)
		}
		a.Log(fmt.Sprintf("[GENERATE] %s -> %s (%d slides, theme %s)", e.Name, res.Path, res.Slides, res.Theme))
		results = append(results, res)
		built = append(built, export.NamedDeck{Name: e.Name, Deck: deck})
	}

	if a.cfg.CopySheet {
		path, err := a.writeCopySheet(built)
		if err != nil {
			return results, WrapError("generate", "CopySheet", err)
		}
		a.Log("[GENERATE] copy sheet -> " + path)
	}
	return results, nil
}

// CopySheetPath is where the copy workbook of a run is written
func (a *App) CopySheetPath() string {
	return filepath.Join(a.cfg.OutputDir, CopySheetFileName)
}

func (a *App) writeCopySheet(built []export.NamedDeck) (string, error) {
	data, err := a.excelService.ExportDecksToExcel(built)
	if err != nil {
		return "", WrapOperationError("export copy sheet", err)
	}
	path := a.CopySheetPath()
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", &export.WriteError{Path: path, Err: err}
	}
	return path, nil
}

func (a *App) generateOne(e decks.Entry) (*export.Deck, GenerateResult, error) {
	theme, err := a.ThemeFor(e)
	if err != nil {
		return nil, GenerateResult{}, err
	}
	deck := e.Build(theme)
	path := filepath.Join(a.cfg.OutputDir, e.FileName)
	if err := a.pptService.SaveDeckToFile(deck, path); err != nil {
		return nil, GenerateResult{}, WrapOperationErrorf("save deck %s", err, e.Name)
	}

	res := GenerateResult{Deck: e.Name, Theme: theme.Name, Path: path, Slides: deck.Len()}
	if a.cfg.Handout {
		data, err := a.exportHandout(deck)
		if err != nil {
			return nil, res, WrapOperationErrorf("export handout %s", err, e.Name)
		}
		handout := strings.TrimSuffix(path, filepath.Ext(path)) + "." + a.cfg.HandoutFormat
		if err := os.WriteFile(handout, data, 0644); err != nil {
			return nil, res, &export.WriteError{Path: handout, Err: err}
		}
		res.Handout = handout
	}
	return deck, res, nil
}

func (a *App) exportHandout(deck *export.Deck) ([]byte, error) {
	if a.cfg.HandoutFormat == config.HandoutPDF {
		return a.pdfService.ExportDeckToPDF(deck)
	}
	return a.wordService.ExportDeckToWord(deck)
}
