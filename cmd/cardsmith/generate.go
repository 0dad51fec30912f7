package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/cardsmith/internal/extract"
	"github.com/at-ishikawa/cardsmith/internal/generation"
	"github.com/at-ishikawa/cardsmith/internal/inference/provider"
	"github.com/at-ishikawa/cardsmith/internal/printout"
	"github.com/at-ishikawa/cardsmith/internal/record"
	"github.com/at-ishikawa/cardsmith/internal/session"
)

func newGenerateCommand() *cobra.Command {
	var (
		inputFile   string
		count       int
		outputFile  string
		studySheet  bool
		generatePDF bool
	)

	command := &cobra.Command{
		Use:   "generate [topic]",
		Short: "Generate a deck from a topic or a .txt/.pdf document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := strings.Join(args, " ")
			if (topic == "") == (inputFile == "") {
				return errors.New("specify either a topic or --file")
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			if count > cfg.Generation.MaxCount {
				return fmt.Errorf("--count must be %d or less", cfg.Generation.MaxCount)
			}
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			ctx := cmd.Context()
			client, err := provider.New(ctx, cfg, logger)
			if err != nil {
				return fmt.Errorf("provider.New() > %w", err)
			}
			s := session.New(session.Dependencies{
				Client:    client,
				Extractor: extract.NewExtractor(logger),
				Generation: generation.Options{
					DefaultCount:       cfg.Generation.DefaultCount,
					PromptTemplatePath: cfg.Templates.PromptTemplate,
				},
				Logger: logger,
			})

			var result generation.Result
			title := topic
			if inputFile != "" {
				data, err := os.ReadFile(inputFile)
				if err != nil {
					return fmt.Errorf("os.ReadFile(%s) > %w", inputFile, err)
				}
				title = titleOf(inputFile)
				result, err = s.GenerateFromFile(ctx, filepath.Base(inputFile), data, count)
				if err != nil {
					return err
				}
			} else {
				result, err = s.GenerateFromTopic(ctx, topic, count)
				if err != nil {
					return err
				}
			}

			if outputFile == "" {
				outputFile = record.ExportFilename
			}
			exported, err := s.Export()
			if err != nil {
				return fmt.Errorf("s.Export() > %w", err)
			}
			if err := os.WriteFile(outputFile, []byte(exported.Content), 0644); err != nil {
				return fmt.Errorf("os.WriteFile(%s) > %w", outputFile, err)
			}

			out := cmd.OutOrStdout()
			_, _ = successColor.Fprintln(out, result.Message)
			_, _ = fmt.Fprintf(out, "Flashcards written to: %s\n", outputFile)

			if studySheet || generatePDF {
				writer := printout.NewStudySheetWriter(cfg.Templates.StudySheetTemplate, logger)
				printed, err := writer.Write(title, result.Cards, printout.Options{
					OutputDirectory: cfg.Outputs.Directory,
					GeneratePDF:     generatePDF,
				})
				if err != nil {
					return fmt.Errorf("writer.Write() > %w", err)
				}
				printResult(cmd, printed)
			}
			return nil
		},
	}

	flags := command.Flags()
	flags.StringVarP(&inputFile, "file", "f", "", "generate from a .txt or .pdf document instead of a topic")
	flags.IntVarP(&count, "count", "n", 0, "number of flashcards to ask for (default from config)")
	flags.StringVarP(&outputFile, "output", "o", "", "file to write the deck to (default flashcards.txt)")
	flags.BoolVar(&studySheet, "study-sheet", false, "also write a markdown study sheet")
	flags.BoolVar(&generatePDF, "pdf", false, "also write the study sheet as PDF")
	return command
}

func printResult(cmd *cobra.Command, result printout.Result) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Study sheet written to: %s\n", result.MarkdownPath)
	if result.PDFPath != "" {
		_, _ = fmt.Fprintf(out, "PDF generated at: %s\n", result.PDFPath)
	}
}
