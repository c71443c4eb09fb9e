package export

import (
	"errors"
	"fmt"
)

// ErrEmptyDeck is returned when a deck with no slides is exported
var ErrEmptyDeck = errors.New("deck has no slides")

// WriteError reports that the output file could not be created or written
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error
func (e *WriteError) Unwrap() error {
	return e.Err
}
