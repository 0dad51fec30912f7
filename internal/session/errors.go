package session

import (
	"errors"
	"fmt"

	"github.com/at-ishikawa/cardsmith/internal/generation"
)

var (
	ErrNothingToExport = errors.New("no flashcards to download")
	ErrCardNotFound    = errors.New("flashcard not found")
)

// InputError reports a problem with what the user submitted. It is returned
// before any extraction, network call or parsing happens.
type InputError struct {
	Field   string
	Message string
	Err     error
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// EmptyImportError is returned when an imported file has no valid line.
type EmptyImportError struct {
	Name string
}

func (e *EmptyImportError) Error() string {
	return fmt.Sprintf("no valid flashcards found in \"%s\"; ensure the format is Term;Definition;Hint;DifficultyLevel (one per line)", e.Name)
}

func (e *EmptyImportError) Is(target error) bool {
	return target == generation.ErrNoValidFlashcards
}
