// Package server provides the Connect RPC handlers and HTML pages for the
// flashcard authoring session.
package server

import (
	"context"
	"fmt"

	"connectrpc.com/connect"
	"go.uber.org/zap"

	"github.com/at-ishikawa/cardsmith/internal/flashcard"
	"github.com/at-ishikawa/cardsmith/internal/generation"
	"github.com/at-ishikawa/cardsmith/internal/session"
)

// Session is the authoring session served by the handlers.
type Session interface {
	GenerateFromTopic(ctx context.Context, topic string, count int) (generation.Result, error)
	GenerateFromFile(ctx context.Context, name string, data []byte, count int) (generation.Result, error)
	Import(ctx context.Context, name string, data []byte) (session.ImportResult, error)
	Export() (session.Export, error)
	Cards() []session.Card
	Get(id string) (session.Card, error)
	Busy() bool
	BeginEdit(id string) (bool, error)
	CommitEdit(id string, edit flashcard.Edit) (bool, error)
	CancelEdit(id string) (bool, error)
}

// FlashcardHandler implements FlashcardServiceHandler.
type FlashcardHandler struct {
	session   Session
	validator *requestValidator
	logger    *zap.Logger
}

func NewFlashcardHandler(s Session, maxCount int, logger *zap.Logger) (*FlashcardHandler, error) {
	v, err := newRequestValidator(maxCount)
	if err != nil {
		return nil, fmt.Errorf("newRequestValidator() > %w", err)
	}
	return &FlashcardHandler{
		session:   s,
		validator: v,
		logger:    logger,
	}, nil
}

// ListFlashcards returns the deck in order.
func (h *FlashcardHandler) ListFlashcards(
	ctx context.Context,
	req *connect.Request[ListFlashcardsRequest],
) (*connect.Response[ListFlashcardsResponse], error) {
	return connect.NewResponse(&ListFlashcardsResponse{
		Flashcards: toFlashcards(h.session.Cards()),
		Busy:       h.session.Busy(),
	}), nil
}

// GenerateFromTopic replaces the deck with generated cards.
func (h *FlashcardHandler) GenerateFromTopic(
	ctx context.Context,
	req *connect.Request[GenerateFromTopicRequest],
) (*connect.Response[GenerateResponse], error) {
	if err := h.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	result, err := h.session.GenerateFromTopic(ctx, req.Msg.Topic, req.Msg.Count)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(h.generateResponse(result)), nil
}

// GenerateFromFile replaces the deck with cards generated from an uploaded document.
func (h *FlashcardHandler) GenerateFromFile(
	ctx context.Context,
	req *connect.Request[GenerateFromFileRequest],
) (*connect.Response[GenerateResponse], error) {
	if err := h.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	result, err := h.session.GenerateFromFile(ctx, req.Msg.FileName, req.Msg.Content, req.Msg.Count)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(h.generateResponse(result)), nil
}

func (h *FlashcardHandler) generateResponse(result generation.Result) *GenerateResponse {
	cards := make([]session.Card, 0, len(result.Cards))
	for _, card := range result.Cards {
		cards = append(cards, session.Card{Flashcard: card})
	}
	return &GenerateResponse{
		Flashcards: toFlashcards(cards),
		Message:    result.Message,
		Model:      result.Model,
	}
}

// ImportFlashcards appends the cards of an uploaded file.
func (h *FlashcardHandler) ImportFlashcards(
	ctx context.Context,
	req *connect.Request[ImportFlashcardsRequest],
) (*connect.Response[ImportFlashcardsResponse], error) {
	if err := h.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	result, err := h.session.Import(ctx, req.Msg.FileName, req.Msg.Content)
	if err != nil {
		return nil, toConnectError(err)
	}

	imported := make([]session.Card, 0, len(result.Cards))
	for _, card := range result.Cards {
		imported = append(imported, session.Card{Flashcard: card})
	}
	return connect.NewResponse(&ImportFlashcardsResponse{
		Imported: toFlashcards(imported),
		Message:  result.Message,
	}), nil
}

// ExportFlashcards returns the deck in the import format.
func (h *FlashcardHandler) ExportFlashcards(
	ctx context.Context,
	req *connect.Request[ExportFlashcardsRequest],
) (*connect.Response[ExportFlashcardsResponse], error) {
	exported, err := h.session.Export()
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ExportFlashcardsResponse{
		FileName: exported.Filename,
		Content:  exported.Content,
	}), nil
}

// BeginEdit opens an edit session on a card.
func (h *FlashcardHandler) BeginEdit(
	ctx context.Context,
	req *connect.Request[BeginEditRequest],
) (*connect.Response[EditResponse], error) {
	if err := h.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	changed, err := h.session.BeginEdit(req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return h.editResponse(req.Msg.ID, changed)
}

// CommitEdit saves an edit. Invalid values leave the edit session open.
func (h *FlashcardHandler) CommitEdit(
	ctx context.Context,
	req *connect.Request[CommitEditRequest],
) (*connect.Response[EditResponse], error) {
	if err := h.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	changed, err := h.session.CommitEdit(req.Msg.ID, flashcard.Edit{
		Term:       req.Msg.Term,
		Definition: req.Msg.Definition,
		Hint:       req.Msg.Hint,
		Difficulty: req.Msg.DifficultyLevel,
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return h.editResponse(req.Msg.ID, changed)
}

// CancelEdit restores the values captured when editing started.
func (h *FlashcardHandler) CancelEdit(
	ctx context.Context,
	req *connect.Request[CancelEditRequest],
) (*connect.Response[EditResponse], error) {
	if err := h.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	changed, err := h.session.CancelEdit(req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return h.editResponse(req.Msg.ID, changed)
}

func (h *FlashcardHandler) editResponse(id string, changed bool) (*connect.Response[EditResponse], error) {
	card, err := h.session.Get(id)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&EditResponse{
		Flashcard: toFlashcard(card),
		Changed:   changed,
	}), nil
}

func toFlashcards(cards []session.Card) []Flashcard {
	result := make([]Flashcard, 0, len(cards))
	for _, card := range cards {
		result = append(result, toFlashcard(card))
	}
	return result
}

func toFlashcard(card session.Card) Flashcard {
	result := Flashcard{
		ID:         card.ID,
		Term:       card.Term,
		Definition: card.Definition,
		Hint:       card.Hint.OrZero(),
		Color:      card.Color,
		Editing:    card.Editing,
	}
	if difficulty, ok := card.Difficulty.Get(); ok {
		result.DifficultyLevel = int(difficulty)
		result.DifficultyLabel = difficulty.Label()
	}
	if card.Editing {
		original := card.EditSession.Original
		result.Original = &FlashcardFields{
			Term:            original.Term,
			Definition:      original.Definition,
			Hint:            original.Hint.OrZero(),
			DifficultyLevel: int(original.Difficulty.OrZero()),
		}
	}
	return result
}
