package flashcard

import "fmt"

// ValidationError is returned when an edit cannot be saved. The edit session
// stays open so the caller can prompt again.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
