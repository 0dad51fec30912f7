package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDialect_Inspect(t *testing.T) {
	got := ImportDialect.Inspect("Sun;A star;;1\n\nbroken\n;No term\nMoon;Satellite;Pale;9")

	var lines []int
	var reasons []string
	for _, outcome := range got {
		lines = append(lines, outcome.Line)
		reasons = append(reasons, outcome.Reason)
	}
	assert.Equal(t, []int{1, 3, 4, 5}, lines)
	assert.Equal(t, []string{"", ReasonTooFewFields, ReasonBlankTerm, ""}, reasons)
	assert.True(t, got[3].Accepted)
	assert.False(t, got[3].Fields.Difficulty.Present())
}

func TestDialect_InspectRows(t *testing.T) {
	got := ImportDialect.InspectRows([][]string{
		{"Sun", "A star"},
		{"", ""},
		{"Moon"},
	})

	if assert.Len(t, got, 2) {
		assert.Equal(t, 1, got[0].Line)
		assert.True(t, got[0].Accepted)
		assert.Equal(t, 3, got[1].Line)
		assert.Equal(t, ReasonTooFewFields, got[1].Reason)
	}
}
