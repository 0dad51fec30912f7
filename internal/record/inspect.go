package record

import "strings"

// LineOutcome is the outcome of one input line. Line counts from 1.
type LineOutcome struct {
	Line int
	Outcome
}

// Inspect reports the outcome of every non-blank line of text without
// building cards.
func (d Dialect) Inspect(text string) []LineOutcome {
	var result []LineOutcome
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		result = append(result, LineOutcome{Line: i + 1, Outcome: d.ParseLine(line)})
	}
	return result
}

// InspectRows is Inspect for rows that are already split into fields.
func (d Dialect) InspectRows(rows [][]string) []LineOutcome {
	var result []LineOutcome
	for i, row := range rows {
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		result = append(result, LineOutcome{Line: i + 1, Outcome: d.ParseFields(row)})
	}
	return result
}
