package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/at-ishikawa/cardsmith/internal/flashcard"
)

func TestFormat(t *testing.T) {
	cards := []flashcard.Flashcard{
		{
			ID:     "gen-1",
			Color:  "#E3F2FD",
			Fields: fields("Apple", "A fruit", flashcard.Some("Grows on trees"), flashcard.Some(flashcard.DifficultyRemember)),
		},
		{
			ID:     "gen-2",
			Color:  "#FCE4EC",
			Fields: fields("Moon", "Satellite", noHint, noDifficulty),
		},
	}

	assert.Equal(t, "Apple;A fruit;Grows on trees;1\nMoon;Satellite;;", Format(cards))
	assert.Equal(t, "", Format(nil))
}

func TestFormat_RoundTrip(t *testing.T) {
	generated := NewParser(GenerationDialect, flashcard.IDPrefixGenerated, flashcard.NewPalette(nil), &sequentialIDs{}).
		Parse("Apple:A fruit:Grows on trees:1\nMoon:Satellite:-:2\nSun:Star:Hot:9\nMars:Planet")
	require.Len(t, generated, 4)

	imported := NewParser(ImportDialect, flashcard.IDPrefixImportText, flashcard.NewPalette(nil), &sequentialIDs{}).
		Parse(Format(generated))

	require.Len(t, imported, len(generated))
	for i := range generated {
		assert.Equal(t, generated[i].Fields, imported[i].Fields)
		assert.NotEqual(t, generated[i].ID, imported[i].ID)
	}
}

func TestReadSpreadsheetRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Apple", "A fruit", "Grows on trees", 1}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Moon", "Satellite"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ReadSpreadsheetRows(buf.Bytes())

	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Apple", "A fruit", "Grows on trees", "1"},
		{"Moon", "Satellite"},
	}, rows)
}

func TestReadSpreadsheetRows_InvalidFile(t *testing.T) {
	_, err := ReadSpreadsheetRows([]byte("not a spreadsheet"))
	assert.Error(t, err)
}
