package generation

import (
	"context"
	"fmt"
	"strings"
)

// Subject is the text flashcards are generated from, and how it is
// described to the user.
type Subject struct {
	Text        string
	Description string
}

type Source interface {
	Load(ctx context.Context) (Subject, error)
}

type TopicSource struct {
	Topic string
}

func (s TopicSource) Load(ctx context.Context) (Subject, error) {
	topic := strings.TrimSpace(s.Topic)
	return Subject{
		Text:        topic,
		Description: fmt.Sprintf("for topic \"%s\"", topic),
	}, nil
}

type Extractor interface {
	Extract(ctx context.Context, name string, data []byte) (string, error)
}

// DocumentSource extracts the text of an uploaded document. Extraction runs
// when the orchestrator loads the source.
type DocumentSource struct {
	Name      string
	Data      []byte
	Extractor Extractor
}

func (s DocumentSource) Load(ctx context.Context) (Subject, error) {
	text, err := s.Extractor.Extract(ctx, s.Name, s.Data)
	if err != nil {
		return Subject{}, &CollaboratorError{Op: OpFileProcessing, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return Subject{}, fmt.Errorf("%s: %w", s.Name, ErrEmptyDocument)
	}
	return Subject{
		Text:        text,
		Description: fmt.Sprintf("from file \"%s\"", s.Name),
	}, nil
}
