package export

import (
	"os"
)

// PPTExportService handles deck serialisation using GoPPT (pure Go, zero dependencies)
type PPTExportService struct {
	service *GoPPTService
}

// NewPPTExportService creates a new PPT export service
func NewPPTExportService() *PPTExportService {
	return &PPTExportService{
		service: NewGoPPTService(),
	}
}

// SetLogger forwards progress messages to logger
func (s *PPTExportService) SetLogger(logger func(string)) {
	s.service.SetLogger(logger)
}

// ExportDeckToPPT renders the deck to PowerPoint bytes
func (s *PPTExportService) ExportDeckToPPT(d *Deck) ([]byte, error) {
	return s.service.ExportDeckToPPT(d)
}

// SaveDeckToFile renders the deck and writes it to path, replacing any previous file.
// Filesystem failures are reported as *WriteError.
func (s *PPTExportService) SaveDeckToFile(d *Deck, path string) error {
	data, err := s.service.ExportDeckToPPT(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	s.service.log("saved " + path)
	return nil
}
