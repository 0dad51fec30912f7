package record

import (
	"strings"

	"github.com/at-ishikawa/cardsmith/internal/flashcard"
)

// Parser turns text in one dialect into new flashcards.
type Parser struct {
	dialect  Dialect
	idPrefix string
	palette  *flashcard.Palette
	ids      flashcard.IDGenerator
}

func NewParser(dialect Dialect, idPrefix string, palette *flashcard.Palette, ids flashcard.IDGenerator) *Parser {
	return &Parser{
		dialect:  dialect,
		idPrefix: idPrefix,
		palette:  palette,
		ids:      ids,
	}
}

// Parse splits text into lines and returns one card per accepted line, in
// line order. Rejected lines are dropped; an empty result is not an error.
func (p *Parser) Parse(text string) []flashcard.Flashcard {
	lines := strings.Split(text, "\n")
	cards := make([]flashcard.Flashcard, 0, len(lines))
	for i, line := range lines {
		if card, ok := p.build(i, p.dialect.ParseLine(line)); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// ParseRows applies the dialect to rows whose fields are already split.
func (p *Parser) ParseRows(rows [][]string) []flashcard.Flashcard {
	cards := make([]flashcard.Flashcard, 0, len(rows))
	for i, row := range rows {
		if card, ok := p.build(i, p.dialect.ParseFields(row)); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

func (p *Parser) build(index int, outcome Outcome) (flashcard.Flashcard, bool) {
	if !outcome.Accepted {
		return flashcard.Flashcard{}, false
	}
	return flashcard.Flashcard{
		ID:     p.ids.NewID(p.idPrefix, index),
		Color:  p.palette.Next(),
		Fields: outcome.Fields,
	}, true
}
