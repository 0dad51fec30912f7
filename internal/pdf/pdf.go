package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

type Options struct {
	// Orientation is "P" (portrait) or "L" (landscape).
	Orientation string
	PageSize    string
	Dark        bool
}

func (o Options) withDefaults() Options {
	if o.Orientation == "" {
		o.Orientation = "P"
	}
	if o.PageSize == "" {
		o.PageSize = "A4"
	}
	return o
}

// ConvertMarkdownToPDF converts a markdown file to PDF using mdtopdf package
// The PDF file will be created next to the markdown file
func ConvertMarkdownToPDF(markdownPath string, options Options) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	if err := RenderMarkdown(content, pdfPath, options); err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

// RenderMarkdown writes content as a PDF file at pdfPath.
func RenderMarkdown(content []byte, pdfPath string, options Options) error {
	options = options.withDefaults()
	theme := mdtopdf.LIGHT
	if options.Dark {
		theme = mdtopdf.DARK
	}

	renderer := mdtopdf.NewPdfRenderer(options.Orientation, options.PageSize, pdfPath, "", nil, theme)
	if err := renderer.Process(content); err != nil {
		return fmt.Errorf("renderer.Process() > %w", err)
	}
	return nil
}
