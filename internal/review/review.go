// Package review runs a self-graded terminal review of a deck.
package review

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/cardsmith/internal/flashcard"
)

var errEnd = errors.New("end of review")

// Score is the tally of a finished or interrupted review.
type Score struct {
	Known  int
	Total  int
	Missed []string
}

// ReviewCLI shows the term of each card, reads the learner's answer, reveals
// the back of the card and asks whether the answer was right.
type ReviewCLI struct {
	cards  []flashcard.Flashcard
	in     *bufio.Reader
	out    io.Writer
	bold   *color.Color
	italic *color.Color
	score  Score
}

func NewReviewCLI(cards []flashcard.Flashcard, in io.Reader, out io.Writer) *ReviewCLI {
	queue := make([]flashcard.Flashcard, len(cards))
	copy(queue, cards)
	return &ReviewCLI{
		cards:  queue,
		in:     bufio.NewReader(in),
		out:    out,
		bold:   color.New(color.Bold),
		italic: color.New(color.Italic),
	}
}

// ShuffleCards randomises the review order.
func (r *ReviewCLI) ShuffleCards() {
	rand.Shuffle(len(r.cards), func(i, j int) {
		r.cards[i], r.cards[j] = r.cards[j], r.cards[i]
	})
}

// GetCardCount returns the number of cards left to review.
func (r *ReviewCLI) GetCardCount() int {
	return len(r.cards)
}

// Run reviews cards until none are left, the input ends or ctx is done.
func (r *ReviewCLI) Run(ctx context.Context) (Score, error) {
	for {
		if err := ctx.Err(); err != nil {
			return r.score, nil
		}
		if err := r.next(); err != nil {
			if errors.Is(err, errEnd) || errors.Is(err, io.EOF) {
				r.printScore()
				return r.score, nil
			}
			return r.score, err
		}
	}
}

func (r *ReviewCLI) next() error {
	if len(r.cards) == 0 {
		_, _ = fmt.Fprintln(r.out, "No more cards to review!")
		return errEnd
	}
	card := r.cards[0]

	_, _ = r.bold.Fprintf(r.out, "%s: ", card.Term)
	answer, err := r.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && answer != "") {
		return err
	}

	_, _ = fmt.Fprintf(r.out, "Answer: %s\n", r.italic.Sprint(card.Definition))
	if hint, ok := card.Hint.Get(); ok {
		_, _ = fmt.Fprintf(r.out, "Hint: %s\n", hint)
	}
	if difficulty, ok := card.Difficulty.Get(); ok {
		_, _ = fmt.Fprintf(r.out, "Difficulty: %s\n", difficulty.Label())
	}

	known := false
	if strings.TrimSpace(answer) != "" {
		_, _ = fmt.Fprint(r.out, "Did you know it? [y/N]: ")
		reply, err := r.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && reply != "") {
			return err
		}
		known = strings.EqualFold(strings.TrimSpace(reply), "y")
	}

	r.score.Total++
	if known {
		r.score.Known++
		_, _ = fmt.Fprint(r.out, "✅ ")
		_, _ = color.New(color.FgGreen).Fprintf(r.out, "Marked %s as known\n", r.bold.Sprint(card.Term))
	} else {
		r.score.Missed = append(r.score.Missed, card.Term)
		_, _ = fmt.Fprint(r.out, "❌ ")
		_, _ = color.New(color.FgRed).Fprintf(r.out, "Marked %s for another look\n", r.bold.Sprint(card.Term))
	}
	_, _ = fmt.Fprintln(r.out)

	r.cards = r.cards[1:]
	return nil
}

func (r *ReviewCLI) printScore() {
	_, _ = fmt.Fprintf(r.out, "You knew %d of %d cards.\n", r.score.Known, r.score.Total)
	if len(r.score.Missed) > 0 {
		_, _ = fmt.Fprintf(r.out, "Review again: %s\n", strings.Join(r.score.Missed, ", "))
	}
}
