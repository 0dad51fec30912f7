package server

// Flashcard is the API representation of a card.
type Flashcard struct {
	ID              string           `json:"id"`
	Term            string           `json:"term"`
	Definition      string           `json:"definition"`
	Hint            string           `json:"hint,omitempty"`
	DifficultyLevel int              `json:"difficulty_level,omitempty"`
	DifficultyLabel string           `json:"difficulty_label,omitempty"`
	Color           string           `json:"color"`
	Editing         bool             `json:"editing"`
	Original        *FlashcardFields `json:"original,omitempty"`
}

// FlashcardFields are the values a card had when editing started.
type FlashcardFields struct {
	Term            string `json:"term"`
	Definition      string `json:"definition"`
	Hint            string `json:"hint,omitempty"`
	DifficultyLevel int    `json:"difficulty_level,omitempty"`
}

type ListFlashcardsRequest struct{}

type ListFlashcardsResponse struct {
	Flashcards []Flashcard `json:"flashcards"`
	Busy       bool        `json:"busy"`
}

type GenerateFromTopicRequest struct {
	Topic string `json:"topic"`
	Count int    `json:"count" validate:"gte=0,maxcount"`
}

type GenerateFromFileRequest struct {
	FileName string `json:"file_name" validate:"required"`
	Content  []byte `json:"content" validate:"required"`
	Count    int    `json:"count" validate:"gte=0,maxcount"`
}

type GenerateResponse struct {
	Flashcards []Flashcard `json:"flashcards"`
	Message    string      `json:"message"`
	Model      string      `json:"model,omitempty"`
}

type ImportFlashcardsRequest struct {
	FileName string `json:"file_name" validate:"required"`
	Content  []byte `json:"content" validate:"required"`
}

type ImportFlashcardsResponse struct {
	Imported []Flashcard `json:"imported"`
	Message  string      `json:"message"`
}

type ExportFlashcardsRequest struct{}

type ExportFlashcardsResponse struct {
	FileName string `json:"file_name"`
	Content  string `json:"content"`
}

type BeginEditRequest struct {
	ID string `json:"id" validate:"required"`
}

type CommitEditRequest struct {
	ID              string `json:"id" validate:"required"`
	Term            string `json:"term"`
	Definition      string `json:"definition"`
	Hint            string `json:"hint"`
	DifficultyLevel int    `json:"difficulty_level" validate:"gte=0"`
}

type CancelEditRequest struct {
	ID string `json:"id" validate:"required"`
}

// EditResponse returns the card after an edit transition. Changed is false
// when the transition was a no-op.
type EditResponse struct {
	Flashcard Flashcard `json:"flashcard"`
	Changed   bool      `json:"changed"`
}
