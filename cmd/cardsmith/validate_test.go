package main

import (
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/cardsmith/internal/testutil"
)

func TestFormatFlag_Set(t *testing.T) {
	tests := []struct {
		value   string
		want    FormatFlag
		wantErr bool
	}{
		{value: "text", want: FormatText},
		{value: "yaml", want: FormatYAML},
		{value: "json", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var f FormatFlag
			err := f.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
			assert.Equal(t, tt.value, f.String())
		})
	}
}

func TestValidateCommand(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	dir := t.TempDir()
	deck := testutil.WriteDeck(t, dir, "deck.txt",
		"Sun;A star;Hot;1",
		"broken line",
		"Moon;A satellite;;2",
	)

	t.Run("text", func(t *testing.T) {
		out, err := executeCommand(t, "validate", deck)
		require.NoError(t, err)
		assert.Contains(t, out, "line 2: too few fields")
		assert.Contains(t, out, "✓ 2 flashcard(s) accepted")
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := executeCommand(t, "validate", deck, "--format", "yaml")
		require.NoError(t, err)

		var got validationReport
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, validationReport{
			File: deck,
			Accepted: []acceptedLine{
				{Line: 1, Term: "Sun", Definition: "A star", Hint: "Hot", Difficulty: 1},
				{Line: 3, Term: "Moon", Definition: "A satellite", Difficulty: 2},
			},
			Rejected: []rejectedLine{{Line: 2, Reason: "too few fields"}},
		}, got)
	})

	t.Run("nothing accepted", func(t *testing.T) {
		empty := testutil.WriteDeck(t, dir, "empty.txt", "no separators")
		out, err := executeCommand(t, "validate", empty)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no valid flashcards found")
		assert.Contains(t, out, "✗ No valid flashcards")
	})

	t.Run("unsupported type", func(t *testing.T) {
		other := testutil.WriteDeck(t, dir, "deck.md", "Sun;A star")
		_, err := executeCommand(t, "validate", other)
		assert.ErrorContains(t, err, "unsupported file type")
	})

	t.Run("invalid format flag", func(t *testing.T) {
		_, err := executeCommand(t, "validate", deck, "--format", "json")
		assert.Error(t, err)
	})
}

func TestInspectDeck_Spreadsheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]string{"Sun", "A star", "", "1"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]string{"Moon"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	got, err := inspectDeck(path)
	require.NoError(t, err)
	require.Len(t, got.Accepted, 1)
	assert.Equal(t, "Sun", got.Accepted[0].Term)
	assert.Equal(t, []rejectedLine{{Line: 2, Reason: "too few fields"}}, got.Rejected)
}
