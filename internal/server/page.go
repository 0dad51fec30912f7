package server

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/at-ishikawa/cardsmith/internal/assets"
	"github.com/at-ishikawa/cardsmith/internal/flashcard"
	"github.com/at-ishikawa/cardsmith/internal/session"
)

const busyMessage = "Generating flashcards..."

var difficultyOptions = []assets.DifficultyOption{
	{Level: int(flashcard.DifficultyRemember), Label: flashcard.DifficultyRemember.Label()},
	{Level: int(flashcard.DifficultyAnalyze), Label: flashcard.DifficultyAnalyze.Label()},
	{Level: int(flashcard.DifficultySynthesize), Label: flashcard.DifficultySynthesize.Label()},
}

// PageHandler serves the card page and the export download.
type PageHandler struct {
	session Session
	page    *assets.CardsPage
	logger  *zap.Logger
}

func NewPageHandler(s Session, page *assets.CardsPage, logger *zap.Logger) *PageHandler {
	return &PageHandler{session: s, page: page, logger: logger}
}

// ServeCards renders every card in deck order.
func (h *PageHandler) ServeCards(w http.ResponseWriter, r *http.Request) {
	data := assets.CardsPageTemplate{
		Difficulties: difficultyOptions,
	}
	if h.session.Busy() {
		data.Message = busyMessage
	}
	for _, card := range h.session.Cards() {
		data.Cards = append(data.Cards, toPageCard(card))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.page.Write(w, data); err != nil {
		h.logger.Error("failed to render cards page", zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

// ServeExport downloads the deck as flashcards.txt.
func (h *PageHandler) ServeExport(w http.ResponseWriter, r *http.Request) {
	exported, err := h.session.Export()
	if err != nil {
		if errors.Is(err, session.ErrNothingToExport) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("failed to export flashcards", zap.Error(err))
		http.Error(w, "failed to export flashcards", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+exported.Filename+"\"")
	w.Header().Set("Content-Length", strconv.Itoa(len(exported.Content)))
	if _, err := w.Write([]byte(exported.Content)); err != nil {
		h.logger.Warn("failed to write export", zap.Error(err))
	}
}

func toPageCard(card session.Card) assets.PageCard {
	result := assets.PageCard{
		ID:         card.ID,
		Color:      card.Color,
		Term:       card.Term,
		Definition: card.Definition,
		Hint:       card.Hint.OrZero(),
		Editing:    card.Editing,
	}
	if difficulty, ok := card.Difficulty.Get(); ok {
		result.Difficulty = difficulty.Label()
	}
	if card.Editing {
		original := card.EditSession.Original
		result.Original = assets.PageCardFields{
			Term:       original.Term,
			Definition: original.Definition,
			Hint:       original.Hint.OrZero(),
			Difficulty: int(original.Difficulty.OrZero()),
		}
	}
	return result
}
