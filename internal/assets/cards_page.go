package assets

import (
	"fmt"
	htmltemplate "html/template"
	"io"

	"go.uber.org/zap"
)

type CardsPageTemplate struct {
	Message      string
	Cards        []PageCard
	Difficulties []DifficultyOption
}

type PageCard struct {
	ID         string
	Color      string
	Term       string
	Definition string
	Hint       string
	Difficulty string
	Editing    bool
	// Original holds the values captured when editing started.
	Original PageCardFields
}

type PageCardFields struct {
	Term       string
	Definition string
	Hint       string
	Difficulty int
}

type DifficultyOption struct {
	Level int
	Label string
}

// CardsPage renders the flashcard page. The template is parsed once.
type CardsPage struct {
	tmpl *htmltemplate.Template
}

func NewCardsPage(templatePath string, logger *zap.Logger) (*CardsPage, error) {
	tmpl, err := parseHTMLTemplateWithFallback(templatePath, cardsPageTemplateName, logger)
	if err != nil {
		return nil, fmt.Errorf("parseHTMLTemplateWithFallback() > %w", err)
	}
	return &CardsPage{tmpl: tmpl}, nil
}

func (p *CardsPage) Write(output io.Writer, data CardsPageTemplate) error {
	if err := p.tmpl.Execute(output, data); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
