// Package printout writes a deck as a printable study sheet.
package printout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/at-ishikawa/cardsmith/internal/assets"
	"github.com/at-ishikawa/cardsmith/internal/flashcard"
	"github.com/at-ishikawa/cardsmith/internal/pdf"
)

var ErrNoFlashcards = errors.New("no flashcards to print")

type StudySheetWriter struct {
	templatePath string
	logger       *zap.Logger
	now          func() time.Time
}

func NewStudySheetWriter(templatePath string, logger *zap.Logger) *StudySheetWriter {
	return &StudySheetWriter{
		templatePath: templatePath,
		logger:       logger,
		now:          time.Now,
	}
}

type Options struct {
	OutputDirectory string
	GeneratePDF     bool
	PDF             pdf.Options
}

// Result lists the files written. PDFPath is empty unless a PDF was requested.
type Result struct {
	MarkdownPath string
	PDFPath      string
}

// Write renders cards under title into <OutputDirectory>/<slug>.md.
func (w *StudySheetWriter) Write(title string, cards []flashcard.Flashcard, options Options) (Result, error) {
	if len(cards) == 0 {
		return Result{}, ErrNoFlashcards
	}

	outputDirectory := options.OutputDirectory
	if outputDirectory == "" {
		outputDirectory = "."
	}
	if err := os.MkdirAll(outputDirectory, 0755); err != nil {
		return Result{}, fmt.Errorf("os.MkdirAll(%s) > %w", outputDirectory, err)
	}

	outputFilename := filepath.Join(outputDirectory, Slug(title)+".md")
	if err := w.writeMarkdown(outputFilename, title, cards); err != nil {
		return Result{}, err
	}
	w.logger.Info("study sheet written", zap.String("path", outputFilename), zap.Int("cards", len(cards)))

	result := Result{MarkdownPath: outputFilename}
	if options.GeneratePDF {
		pdfPath, err := pdf.ConvertMarkdownToPDF(outputFilename, options.PDF)
		if err != nil {
			return result, fmt.Errorf("pdf.ConvertMarkdownToPDF(%s) > %w", outputFilename, err)
		}
		result.PDFPath = pdfPath
		w.logger.Info("study sheet PDF written", zap.String("path", pdfPath))
	}
	return result, nil
}

func (w *StudySheetWriter) writeMarkdown(outputFilename, title string, cards []flashcard.Flashcard) (err error) {
	output, err := os.Create(outputFilename)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", outputFilename, err)
	}
	defer func() {
		if closeErr := output.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("output.Close() > %w", closeErr)
		}
	}()

	if err := assets.WriteStudySheet(output, w.templatePath, toTemplate(title, w.now(), cards), w.logger); err != nil {
		return fmt.Errorf("assets.WriteStudySheet(%s, %s) > %w", outputFilename, w.templatePath, err)
	}
	return nil
}

func toTemplate(title string, date time.Time, cards []flashcard.Flashcard) assets.StudySheetTemplate {
	data := assets.StudySheetTemplate{
		Title: title,
		Date:  date,
		Cards: make([]assets.StudySheetCard, 0, len(cards)),
	}
	for _, card := range cards {
		sheetCard := assets.StudySheetCard{
			Term:       card.Term,
			Definition: card.Definition,
			Hint:       card.Hint.OrZero(),
		}
		if difficulty, ok := card.Difficulty.Get(); ok {
			sheetCard.Difficulty = difficulty.Label()
		}
		data.Cards = append(data.Cards, sheetCard)
	}
	return data
}

// Slug turns a title into a file name: lower case letters and digits joined
// by single hyphens. A title without either becomes "flashcards".
func Slug(title string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
			continue
		}
		hyphen = true
	}
	if b.Len() == 0 {
		return "flashcards"
	}
	return b.String()
}
