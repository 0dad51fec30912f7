package assets

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// StudySheetTemplate is the top-level data structure for the printable study sheet
type StudySheetTemplate struct {
	Title string
	Date  time.Time
	Cards []StudySheetCard
}

// StudySheetCard is one flashcard with its optional parts already resolved to text.
// Empty strings mean the part is absent.
type StudySheetCard struct {
	Term       string
	Definition string
	Hint       string
	Difficulty string
}

func WriteStudySheet(output io.Writer, templatePath string, data StudySheetTemplate, logger *zap.Logger) error {
	tmpl, err := parseTextTemplateWithFallback(templatePath, studySheetTemplateName, logger)
	if err != nil {
		return fmt.Errorf("parseTextTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, data); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
