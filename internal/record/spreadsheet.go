package record

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadSpreadsheetRows returns the rows of the first sheet of an .xlsx file.
// Columns are read as Term, Definition, Hint, DifficultyLevel.
func ReadSpreadsheetRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenReader() > %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("f.GetRows(%s) > %w", sheets[0], err)
	}
	return rows, nil
}
