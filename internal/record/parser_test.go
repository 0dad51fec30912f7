package record

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/cardsmith/internal/flashcard"
)

type sequentialIDs struct {
	next int
}

func (s *sequentialIDs) NewID(prefix string, index int) string {
	s.next++
	return fmt.Sprintf("%s-%d-%d", prefix, index, s.next)
}

func fields(term, definition string, hint flashcard.Optional[string], difficulty flashcard.Optional[flashcard.Difficulty]) flashcard.Fields {
	return flashcard.Fields{Term: term, Definition: definition, Hint: hint, Difficulty: difficulty}
}

var (
	noHint       = flashcard.None[string]()
	noDifficulty = flashcard.None[flashcard.Difficulty]()
)

func TestGenerationDialect_ParseLine(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantReason string
		want       flashcard.Fields
	}{
		{
			name: "well formed line",
			line: "Apple:A fruit:Grows on trees:1",
			want: fields("Apple", "A fruit", flashcard.Some("Grows on trees"), flashcard.Some(flashcard.DifficultyRemember)),
		},
		{
			name: "spaces around fields are trimmed",
			line: "Apple: A common fruit : Grows on trees : 2",
			want: fields("Apple", "A common fruit", flashcard.Some("Grows on trees"), flashcard.Some(flashcard.DifficultyAnalyze)),
		},
		{
			name: "hint placeholder collapses to absent",
			line: "X:Y:-:2",
			want: fields("X", "Y", noHint, flashcard.Some(flashcard.DifficultyAnalyze)),
		},
		{
			name: "blank hint is absent",
			line: "X:Y:  :3",
			want: fields("X", "Y", noHint, flashcard.Some(flashcard.DifficultySynthesize)),
		},
		{
			name: "out of range difficulty is dropped",
			line: "X:Y:Z:7",
			want: fields("X", "Y", flashcard.Some("Z"), noDifficulty),
		},
		{
			name: "non numeric difficulty is dropped",
			line: "X:Y:Z:hard",
			want: fields("X", "Y", flashcard.Some("Z"), noDifficulty),
		},
		{
			name: "leading integer of difficulty is used",
			line: "X:Y:Z:2 (Analyze)",
			want: fields("X", "Y", flashcard.Some("Z"), flashcard.Some(flashcard.DifficultyAnalyze)),
		},
		{
			name: "fields after the fourth are ignored",
			line: "Meeting:Starts at 10:30:Bring notes:1",
			want: fields("Meeting", "Starts at 10", flashcard.Some("30"), noDifficulty),
		},
		{
			name: "two fields fall back to term and definition",
			line: "Moon:Earth's natural satellite",
			want: fields("Moon", "Earth's natural satellite", noHint, noDifficulty),
		},
		{
			name: "three fields keep the rest as hint",
			line: "Moon:Earth's natural satellite:Reflects sunlight",
			want: fields("Moon", "Earth's natural satellite", flashcard.Some("Reflects sunlight"), noDifficulty),
		},
		{
			name: "placeholder is kept in the fallback branch",
			line: "Moon:Satellite:-",
			want: fields("Moon", "Satellite", flashcard.Some("-"), noDifficulty),
		},
		{
			name:       "missing definition drops the line",
			line:       "OnlyTerm::-:1",
			wantReason: ReasonBlankDefinition,
		},
		{
			name:       "missing definition in fallback drops the line",
			line:       "OnlyTerm: ",
			wantReason: ReasonBlankDefinition,
		},
		{
			name:       "blank term drops the line",
			line:       " :Definition:-:1",
			wantReason: ReasonBlankTerm,
		},
		{
			name:       "single field drops the line",
			line:       "Here are your flashcards",
			wantReason: ReasonTooFewFields,
		},
		{
			name:       "empty line",
			line:       "",
			wantReason: ReasonTooFewFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerationDialect.ParseLine(tt.line)
			if tt.wantReason != "" {
				assert.False(t, got.Accepted)
				assert.Equal(t, tt.wantReason, got.Reason)
				return
			}
			require.True(t, got.Accepted, got.Reason)
			assert.Equal(t, tt.want, got.Fields)
		})
	}
}

func TestImportDialect_ParseLine(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantReason string
		want       flashcard.Fields
	}{
		{
			name: "all four fields",
			line: "Apple;A fruit;Grows on trees;1",
			want: fields("Apple", "A fruit", flashcard.Some("Grows on trees"), flashcard.Some(flashcard.DifficultyRemember)),
		},
		{
			name: "empty hint and difficulty",
			line: "Apple;A fruit;;",
			want: fields("Apple", "A fruit", noHint, noDifficulty),
		},
		{
			name: "two fields",
			line: "Apple;A fruit",
			want: fields("Apple", "A fruit", noHint, noDifficulty),
		},
		{
			name: "dash hint is kept",
			line: "Apple;A fruit;-;2",
			want: fields("Apple", "A fruit", flashcard.Some("-"), flashcard.Some(flashcard.DifficultyAnalyze)),
		},
		{
			name: "out of range difficulty is dropped",
			line: "Apple;A fruit;hint;0",
			want: fields("Apple", "A fruit", flashcard.Some("hint"), noDifficulty),
		},
		{
			name: "carriage return is trimmed",
			line: "Apple;A fruit;hint;3\r",
			want: fields("Apple", "A fruit", flashcard.Some("hint"), flashcard.Some(flashcard.DifficultySynthesize)),
		},
		{
			name:       "colon delimited line is not an import record",
			line:       "Apple:A fruit:hint:1",
			wantReason: ReasonTooFewFields,
		},
		{
			name:       "blank definition",
			line:       "Apple; ;hint;1",
			wantReason: ReasonBlankDefinition,
		},
		{
			name:       "blank term",
			line:       ";A fruit",
			wantReason: ReasonBlankTerm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImportDialect.ParseLine(tt.line)
			if tt.wantReason != "" {
				assert.False(t, got.Accepted)
				assert.Equal(t, tt.wantReason, got.Reason)
				return
			}
			require.True(t, got.Accepted, got.Reason)
			assert.Equal(t, tt.want, got.Fields)
		})
	}
}

func TestParser_Parse(t *testing.T) {
	palette := flashcard.NewPalette([]string{"red", "green"})
	parser := NewParser(GenerationDialect, flashcard.IDPrefixGenerated, palette, &sequentialIDs{})

	response := "Here are your flashcards:\n" +
		"Apple: A common fruit: Grows on trees: 1\n" +
		"\n" +
		"OnlyTerm::-:1\n" +
		"Photosynthesis: Converting light into chemical energy: Occurs in chloroplasts: 2\n" +
		"Moon: Earth's natural satellite"

	cards := parser.Parse(response)

	require.Len(t, cards, 3)
	assert.Equal(t, []string{"Apple", "Photosynthesis", "Moon"}, []string{cards[0].Term, cards[1].Term, cards[2].Term})
	assert.Equal(t, "gen-1-1", cards[0].ID)
	assert.Equal(t, "gen-4-2", cards[1].ID)
	assert.Equal(t, "gen-5-3", cards[2].ID)
	assert.Equal(t, []string{"red", "green", "red"}, []string{cards[0].Color, cards[1].Color, cards[2].Color})
}

func TestParser_Parse_NoValidLines(t *testing.T) {
	parser := NewParser(ImportDialect, flashcard.IDPrefixImportText, flashcard.NewPalette(nil), &sequentialIDs{})

	cards := parser.Parse("no delimiter here\n;\n")

	assert.Empty(t, cards)
	assert.NotNil(t, cards)
}

func TestParser_ParseRows(t *testing.T) {
	parser := NewParser(ImportDialect, flashcard.IDPrefixImportXLSX, flashcard.NewPalette(nil), &sequentialIDs{})

	cards := parser.ParseRows([][]string{
		{"Apple", "A fruit", "Grows on trees", "1"},
		{"Term"},
		{"Moon", "Satellite; of Earth"},
	})

	require.Len(t, cards, 2)
	assert.Equal(t, fields("Apple", "A fruit", flashcard.Some("Grows on trees"), flashcard.Some(flashcard.DifficultyRemember)), cards[0].Fields)
	assert.Equal(t, "Satellite; of Earth", cards[1].Definition)
	assert.Equal(t, "import-xlsx-2-2", cards[1].ID)
}
