package assets

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var embedded embed.FS

const (
	promptTemplateName     = "prompt.txt.go.tmpl"
	studySheetTemplateName = "study-sheet.md.go.tmpl"
	cardsPageTemplateName  = "cards.html.go.tmpl"
)

var funcMap = template.FuncMap{
	"join": strings.Join,
	"inc":  func(i int) int { return i + 1 },
}

func embeddedTemplate(name string) (string, error) {
	content, err := embedded.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("embedded.ReadFile(%s) > %w", name, err)
	}
	return string(content), nil
}

// readOverride returns the content of templatePath when it exists and can be
// read. Any failure is logged and reported as no override.
func readOverride(templatePath string, logger *zap.Logger) (string, bool) {
	if templatePath == "" {
		return "", false
	}
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read a template file",
				zap.String("templatePath", templatePath),
				zap.Error(err),
			)
		}
		return "", false
	}
	return string(content), true
}

func parseTextTemplateWithFallback(templatePath string, fallbackName string, logger *zap.Logger) (*template.Template, error) {
	if content, ok := readOverride(templatePath, logger); ok {
		tmpl, err := template.New(filepath.Base(templatePath)).
			Funcs(funcMap).
			Parse(content)
		if err == nil {
			return tmpl, nil
		}
		logger.Warn("failed to parse a templatePath",
			zap.String("templatePath", templatePath),
			zap.Error(err),
		)
	}

	content, err := embeddedTemplate(fallbackName)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

func parseHTMLTemplateWithFallback(templatePath string, fallbackName string, logger *zap.Logger) (*htmltemplate.Template, error) {
	htmlFuncMap := htmltemplate.FuncMap(funcMap)
	if content, ok := readOverride(templatePath, logger); ok {
		tmpl, err := htmltemplate.New(filepath.Base(templatePath)).
			Funcs(htmlFuncMap).
			Parse(content)
		if err == nil {
			return tmpl, nil
		}
		logger.Warn("failed to parse a templatePath",
			zap.String("templatePath", templatePath),
			zap.Error(err),
		)
	}

	content, err := embeddedTemplate(fallbackName)
	if err != nil {
		return nil, err
	}
	tmpl, err := htmltemplate.New(fallbackName).
		Funcs(htmlFuncMap).
		Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
