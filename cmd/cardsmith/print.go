package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/cardsmith/internal/printout"
)

func newPrintCommand() *cobra.Command {
	var (
		title       string
		generatePDF bool
	)

	command := &cobra.Command{
		Use:   "print <file>",
		Short: "Write a study sheet from an exported deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			cards, err := readDeck(cmd.Context(), args[0], logger)
			if err != nil {
				return err
			}
			if title == "" {
				title = titleOf(args[0])
			}

			writer := printout.NewStudySheetWriter(cfg.Templates.StudySheetTemplate, logger)
			result, err := writer.Write(title, cards, printout.Options{
				OutputDirectory: cfg.Outputs.Directory,
				GeneratePDF:     generatePDF,
			})
			if err != nil {
				return fmt.Errorf("writer.Write() > %w", err)
			}
			printResult(cmd, result)
			return nil
		},
	}

	command.Flags().StringVar(&title, "title", "", "study sheet title (default file name)")
	command.Flags().BoolVar(&generatePDF, "pdf", false, "also write the study sheet as PDF")
	return command
}
