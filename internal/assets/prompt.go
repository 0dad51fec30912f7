package assets

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// PromptTemplate is the data passed to the flashcard generation prompt.
type PromptTemplate struct {
	Count   int
	Content string
}

func WritePrompt(output io.Writer, templatePath string, data PromptTemplate, logger *zap.Logger) error {
	tmpl, err := parseTextTemplateWithFallback(templatePath, promptTemplateName, logger)
	if err != nil {
		return fmt.Errorf("parseTextTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, data); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
