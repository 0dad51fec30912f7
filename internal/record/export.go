package record

import (
	"strings"

	"github.com/at-ishikawa/cardsmith/internal/flashcard"
)

// ExportFilename is the name offered for downloads.
const ExportFilename = "flashcards.txt"

// Format serializes cards in the import dialect, one card per line.
// Colours and edit sessions are not written. Fields are not escaped, so a
// ";" inside a field does not survive a round trip.
func Format(cards []flashcard.Flashcard) string {
	lines := make([]string, 0, len(cards))
	for _, card := range cards {
		difficulty := ""
		if d, ok := card.Difficulty.Get(); ok {
			difficulty = d.String()
		}
		lines = append(lines, strings.Join([]string{
			card.Term,
			card.Definition,
			card.Hint.OrZero(),
			difficulty,
		}, ImportDialect.Delimiter))
	}
	return strings.Join(lines, "\n")
}
