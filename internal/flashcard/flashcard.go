// Package flashcard holds the flashcard entity and the in-memory store
// that manages the ordered collection and per-card edit sessions.
package flashcard

import (
	"strconv"
	"strings"
)

// Difficulty is the cognitive tier of a card.
type Difficulty int

const (
	DifficultyRemember   Difficulty = 1
	DifficultyAnalyze    Difficulty = 2
	DifficultySynthesize Difficulty = 3
)

var difficultyLabels = map[Difficulty]string{
	DifficultyRemember:   "Level 1 (Remember/Understand)",
	DifficultyAnalyze:    "Level 2 (Analyze/Apply)",
	DifficultySynthesize: "Level 3 (Synthesize/Evaluate)",
}

// Valid reports whether d is one of the three tiers.
func (d Difficulty) Valid() bool {
	_, ok := difficultyLabels[d]
	return ok
}

// Label returns the human readable tier name, or "" for an invalid value.
func (d Difficulty) Label() string {
	return difficultyLabels[d]
}

func (d Difficulty) String() string {
	return strconv.Itoa(int(d))
}

// DifficultyOf keeps n only when it names one of the three tiers.
// Out-of-range values are dropped, never clamped.
func DifficultyOf(n int) Optional[Difficulty] {
	d := Difficulty(n)
	if !d.Valid() {
		return None[Difficulty]()
	}
	return Some(d)
}

// HintPlaceholder is the marker a generated line uses for "no hint".
const HintPlaceholder = "-"

// HintOf trims s and treats a blank string as absent.
func HintOf(s string) Optional[string] {
	s = strings.TrimSpace(s)
	if s == "" {
		return None[string]()
	}
	return Some(s)
}

// Fields is the editable part of a card.
type Fields struct {
	Term       string
	Definition string
	Hint       Optional[string]
	Difficulty Optional[Difficulty]
}

// Flashcard is a single card in a session.
type Flashcard struct {
	ID    string
	Color string
	Fields
}
