package generation

import (
	"errors"
	"fmt"
)

const (
	OpGeneration     = "generation"
	OpFileProcessing = "file processing"
)

var (
	// ErrBusy is returned when another generation or import is in progress.
	ErrBusy = errors.New("another generation or import is already in progress")
	// ErrEmptyResponse is returned when the provider answered with no text.
	ErrEmptyResponse = errors.New("failed to generate flashcards or received an empty response")
	// ErrNoValidFlashcards is returned when no line of the response is a valid flashcard.
	ErrNoValidFlashcards = errors.New("no valid flashcards generated: response might be empty or not in the expected format (Term:Definition:Hint:DifficultyLevel)")
	// ErrEmptyDocument is returned when an uploaded document yields no text.
	ErrEmptyDocument = errors.New("document is empty or could not be read")
)

// CollaboratorError wraps a failure of an external collaborator: the
// generation provider or the document extractor.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("an error occurred during %s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
