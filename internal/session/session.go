// Package session holds the single in-memory authoring session: the deck,
// its edit sessions, and the generate/import/export operations on it.
package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/at-ishikawa/cardsmith/internal/extract"
	"github.com/at-ishikawa/cardsmith/internal/flashcard"
	"github.com/at-ishikawa/cardsmith/internal/generation"
	"github.com/at-ishikawa/cardsmith/internal/inference"
	"github.com/at-ishikawa/cardsmith/internal/record"
)

type Dependencies struct {
	Client    inference.Client
	Extractor generation.Extractor
	// IDs defaults to a NanoIDGenerator.
	IDs        flashcard.IDGenerator
	Generation generation.Options
	Logger     *zap.Logger
}

type Session struct {
	store        *flashcard.Store
	guard        *generation.Guard
	orchestrator *generation.Orchestrator
	extractor    generation.Extractor
	palette      *flashcard.Palette
	ids          flashcard.IDGenerator
	logger       *zap.Logger
}

func New(deps Dependencies) *Session {
	ids := deps.IDs
	if ids == nil {
		ids = flashcard.NewNanoIDGenerator()
	}
	store := flashcard.NewStore()
	guard := generation.NewGuard()
	palette := flashcard.NewPalette(nil)
	return &Session{
		store:        store,
		guard:        guard,
		orchestrator: generation.NewOrchestrator(deps.Client, guard, store, palette, ids, deps.Generation, deps.Logger),
		extractor:    deps.Extractor,
		palette:      palette,
		ids:          ids,
		logger:       deps.Logger,
	}
}

// GenerateFromTopic replaces the deck with cards generated about topic.
func (s *Session) GenerateFromTopic(ctx context.Context, topic string, count int) (generation.Result, error) {
	if strings.TrimSpace(topic) == "" {
		return generation.Result{}, &InputError{Field: "topic", Message: "Please enter a topic for generation."}
	}
	return s.orchestrator.Generate(ctx, generation.Request{
		Source: generation.TopicSource{Topic: topic},
		Count:  count,
	})
}

// GenerateFromFile replaces the deck with cards generated from a .txt or
// .pdf document.
func (s *Session) GenerateFromFile(ctx context.Context, name string, data []byte, count int) (generation.Result, error) {
	if !extract.Supported(name) {
		return generation.Result{}, &InputError{
			Field:   "file",
			Message: "Unsupported file type for generation. Please select a .txt or .pdf file.",
		}
	}

	result, err := s.orchestrator.Generate(ctx, generation.Request{
		Source: generation.DocumentSource{Name: name, Data: data, Extractor: s.extractor},
		Count:  count,
	})
	if errors.Is(err, generation.ErrEmptyDocument) {
		return generation.Result{}, &InputError{
			Field:   "file",
			Message: fmt.Sprintf("File \"%s\" is empty or could not be read.", name),
			Err:     err,
		}
	}
	return result, err
}

type ImportResult struct {
	Cards   []flashcard.Flashcard
	Message string
}

var importExtensions = map[string]string{
	".txt":  flashcard.IDPrefixImportText,
	".csv":  flashcard.IDPrefixImportText,
	".xlsx": flashcard.IDPrefixImportXLSX,
}

// Import appends the cards of a Term;Definition;Hint;DifficultyLevel file, or
// of the first sheet of an .xlsx workbook, to the deck.
func (s *Session) Import(ctx context.Context, name string, data []byte) (ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(name))
	prefix, ok := importExtensions[ext]
	if !ok {
		return ImportResult{}, &InputError{
			Field:   "file",
			Message: "Unsupported file type for import. Please select a .txt, .csv or .xlsx file with Term;Definition;Hint;DifficultyLevel format.",
		}
	}

	var result ImportResult
	err := s.guard.Do(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		parser := record.NewParser(record.ImportDialect, prefix, s.palette, s.ids)

		var cards []flashcard.Flashcard
		if ext == ".xlsx" {
			rows, err := record.ReadSpreadsheetRows(data)
			if err != nil {
				return &InputError{
					Field:   "file",
					Message: fmt.Sprintf("Error importing file: %v", err),
					Err:     err,
				}
			}
			cards = parser.ParseRows(rows)
		} else {
			cards = parser.Parse(string(data))
		}

		if len(cards) == 0 {
			return &EmptyImportError{Name: name}
		}
		s.store.Append(cards)
		result = ImportResult{
			Cards:   cards,
			Message: fmt.Sprintf("%d flashcards imported successfully from \"%s\".", len(cards), name),
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	s.logger.Info("flashcards imported",
		zap.String("file", name),
		zap.Int("imported", len(result.Cards)),
		zap.Int("total", s.store.Len()),
	)
	return result, nil
}

type Export struct {
	Filename string
	Content  string
}

// Export serializes the deck. Colours and edit sessions are not exported.
func (s *Session) Export() (Export, error) {
	cards := s.store.List()
	if len(cards) == 0 {
		return Export{}, ErrNothingToExport
	}
	return Export{
		Filename: record.ExportFilename,
		Content:  record.Format(cards),
	}, nil
}

// Card is a flashcard together with its edit session, if any.
type Card struct {
	flashcard.Flashcard
	Editing     bool
	EditSession flashcard.EditSession
}

func (s *Session) Cards() []Card {
	cards := s.store.List()
	views := make([]Card, 0, len(cards))
	for _, card := range cards {
		views = append(views, s.view(card))
	}
	return views
}

func (s *Session) view(card flashcard.Flashcard) Card {
	view := Card{Flashcard: card}
	if editSession, ok := s.store.EditSession(card.ID); ok {
		view.Editing = true
		view.EditSession = editSession
	}
	return view
}

// Busy reports whether a generation or import is running.
func (s *Session) Busy() bool {
	return s.guard.Busy()
}

// BeginEdit opens an edit session. It returns false when the card is
// already being edited.
func (s *Session) BeginEdit(id string) (bool, error) {
	if _, ok := s.store.Get(id); !ok {
		return false, ErrCardNotFound
	}
	return s.store.BeginEdit(id), nil
}

// CommitEdit saves an edit. It returns false when the card is not being
// edited, and a *flashcard.ValidationError when the values are rejected.
func (s *Session) CommitEdit(id string, edit flashcard.Edit) (bool, error) {
	if _, ok := s.store.Get(id); !ok {
		return false, ErrCardNotFound
	}
	return s.store.CommitEdit(id, edit)
}

// CancelEdit restores the values captured by BeginEdit.
func (s *Session) CancelEdit(id string) (bool, error) {
	if _, ok := s.store.Get(id); !ok {
		return false, ErrCardNotFound
	}
	return s.store.CancelEdit(id), nil
}

// Get returns a single card with its edit state.
func (s *Session) Get(id string) (Card, error) {
	card, ok := s.store.Get(id)
	if !ok {
		return Card{}, ErrCardNotFound
	}
	return s.view(card), nil
}
