// Package extract turns uploaded documents into plain text for generation.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

var supportedExtensions = []string{".txt", ".pdf"}

// Supported reports whether name has an extension the extractor reads.
func Supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, supported := range supportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

type Extractor struct {
	logger *zap.Logger
}

func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract returns the text content of a .txt or .pdf document. PDF pages are
// joined with a newline.
func (e *Extractor) Extract(ctx context.Context, name string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%s is not valid UTF-8 text", name)
		}
		return string(data), nil
	case ".pdf":
		return e.extractPDF(ctx, name, data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

func (e *Extractor) extractPDF(ctx context.Context, name string, data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to read PDF %s: %v", name, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf.NewReader() > %w", err)
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page.GetPlainText() page %d > %w", i, err)
		}
		pages = append(pages, content)
	}

	e.logger.Debug("extracted PDF text",
		zap.String("file", name),
		zap.Int("pages", numPages),
	)
	return strings.Join(pages, "\n"), nil
}
