// Package record converts line-oriented text into flashcards and back.
//
// Two dialects are supported. The generation dialect reads model output in
// the form "Term: Definition: Hint: DifficultyLevel". The import dialect
// reads files in the form "Term;Definition;Hint;DifficultyLevel".
package record

import (
	"strconv"
	"strings"

	"github.com/at-ishikawa/cardsmith/internal/flashcard"
)

// Rejection reasons.
const (
	ReasonTooFewFields    = "too few fields"
	ReasonBlankTerm       = "blank term"
	ReasonBlankDefinition = "blank definition"
)

// Outcome is the result of parsing one line: either Accepted with Fields,
// or rejected with a Reason.
type Outcome struct {
	Accepted bool
	Fields   flashcard.Fields
	Reason   string
}

func accepted(fields flashcard.Fields) Outcome {
	return Outcome{Accepted: true, Fields: fields}
}

func rejected(reason string) Outcome {
	return Outcome{Reason: reason}
}

// Dialect is a delimiter with the rule interpreting the fields it splits.
type Dialect struct {
	Name      string
	Delimiter string
	interpret func(fields []string) Outcome
}

var (
	// GenerationDialect reads "Term:Definition:Hint:DifficultyLevel".
	GenerationDialect = Dialect{Name: "generation", Delimiter: ":", interpret: interpretGenerated}
	// ImportDialect reads "Term;Definition;Hint;DifficultyLevel".
	ImportDialect = Dialect{Name: "import", Delimiter: ";", interpret: interpretImported}
)

// ParseLine splits line on the dialect's delimiter and interprets it.
func (d Dialect) ParseLine(line string) Outcome {
	return d.interpret(strings.Split(line, d.Delimiter))
}

// ParseFields interprets fields that were split elsewhere, such as
// spreadsheet cells.
func (d Dialect) ParseFields(fields []string) Outcome {
	return d.interpret(fields)
}

func interpretGenerated(parts []string) Outcome {
	if len(parts) < 2 {
		return rejected(ReasonTooFewFields)
	}
	term := strings.TrimSpace(parts[0])
	if term == "" {
		return rejected(ReasonBlankTerm)
	}
	definition := strings.TrimSpace(parts[1])
	if definition == "" {
		return rejected(ReasonBlankDefinition)
	}

	if len(parts) >= 4 {
		hint := flashcard.HintOf(parts[2])
		if value, ok := hint.Get(); ok && value == flashcard.HintPlaceholder {
			hint = flashcard.None[string]()
		}
		return accepted(flashcard.Fields{
			Term:       term,
			Definition: definition,
			Hint:       hint,
			Difficulty: parseDifficulty(parts[3]),
		})
	}

	// Term:Definition or Term:Definition:Hint
	hint := flashcard.None[string]()
	if len(parts) > 2 {
		hint = flashcard.HintOf(strings.Join(parts[2:], ":"))
	}
	return accepted(flashcard.Fields{
		Term:       term,
		Definition: definition,
		Hint:       hint,
		Difficulty: flashcard.None[flashcard.Difficulty](),
	})
}

func interpretImported(parts []string) Outcome {
	if len(parts) < 2 {
		return rejected(ReasonTooFewFields)
	}
	term := strings.TrimSpace(parts[0])
	if term == "" {
		return rejected(ReasonBlankTerm)
	}
	definition := strings.TrimSpace(parts[1])
	if definition == "" {
		return rejected(ReasonBlankDefinition)
	}

	fields := flashcard.Fields{
		Term:       term,
		Definition: definition,
		Hint:       flashcard.None[string](),
		Difficulty: flashcard.None[flashcard.Difficulty](),
	}
	if len(parts) > 2 {
		fields.Hint = flashcard.HintOf(parts[2])
	}
	if len(parts) > 3 {
		fields.Difficulty = parseDifficulty(parts[3])
	}
	return accepted(fields)
}

// parseDifficulty reads the leading integer of s, so "2 (Apply)" is 2,
// and keeps it only when it is a valid tier.
func parseDifficulty(s string) flashcard.Optional[flashcard.Difficulty] {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return flashcard.None[flashcard.Difficulty]()
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return flashcard.None[flashcard.Difficulty]()
	}
	return flashcard.DifficultyOf(n)
}
