package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/cardsmith/internal/record"
)

type FormatFlag string

const (
	FormatText FormatFlag = "text"
	FormatYAML FormatFlag = "yaml"
)

// Set implements pflag.Value.
func (f *FormatFlag) Set(v string) error {
	switch v {
	case string(FormatText):
		*f = FormatText
	case string(FormatYAML):
		*f = FormatYAML
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, FormatText, FormatYAML)
	}
	return nil
}

// String implements pflag.Value.
func (f *FormatFlag) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *FormatFlag) Type() string {
	return "FormatFlag"
}

var (
	_ pflag.Value = (*FormatFlag)(nil)
)

type validationReport struct {
	File     string         `yaml:"file"`
	Accepted []acceptedLine `yaml:"accepted"`
	Rejected []rejectedLine `yaml:"rejected"`
}

type acceptedLine struct {
	Line       int    `yaml:"line"`
	Term       string `yaml:"term"`
	Definition string `yaml:"definition"`
	Hint       string `yaml:"hint,omitempty"`
	Difficulty int    `yaml:"difficulty,omitempty"`
}

type rejectedLine struct {
	Line   int    `yaml:"line"`
	Reason string `yaml:"reason"`
}

func newValidateCommand() *cobra.Command {
	format := FormatText

	command := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a deck file against the Term;Definition;Hint;DifficultyLevel format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := inspectDeck(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case FormatYAML:
				encoder := yaml.NewEncoder(out)
				encoder.SetIndent(2)
				if err := encoder.Encode(report); err != nil {
					return fmt.Errorf("encoder.Encode() > %w", err)
				}
				if err := encoder.Close(); err != nil {
					return fmt.Errorf("encoder.Close() > %w", err)
				}
			default:
				displayValidationReport(out, report)
			}

			if len(report.Accepted) == 0 {
				return fmt.Errorf("no valid flashcards found in %s", args[0])
			}
			return nil
		},
	}

	command.Flags().Var(&format, "format", "Output format. Options: text, yaml")
	return command
}

func inspectDeck(path string) (validationReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return validationReport{}, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var outcomes []record.LineOutcome
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err := record.ReadSpreadsheetRows(data)
		if err != nil {
			return validationReport{}, fmt.Errorf("record.ReadSpreadsheetRows(%s) > %w", path, err)
		}
		outcomes = record.ImportDialect.InspectRows(rows)
	case ".txt", ".csv":
		outcomes = record.ImportDialect.Inspect(string(data))
	default:
		return validationReport{}, fmt.Errorf("unsupported file type %q, expected .txt, .csv or .xlsx", filepath.Ext(path))
	}

	report := validationReport{File: path}
	for _, outcome := range outcomes {
		if !outcome.Accepted {
			report.Rejected = append(report.Rejected, rejectedLine{Line: outcome.Line, Reason: outcome.Reason})
			continue
		}
		report.Accepted = append(report.Accepted, acceptedLine{
			Line:       outcome.Line,
			Term:       outcome.Fields.Term,
			Definition: outcome.Fields.Definition,
			Hint:       outcome.Fields.Hint.OrZero(),
			Difficulty: int(outcome.Fields.Difficulty.OrZero()),
		})
	}
	return report, nil
}

func displayValidationReport(out io.Writer, report validationReport) {
	_, _ = fmt.Fprintf(out, "=== %s ===\n", report.File)
	if len(report.Rejected) > 0 {
		_, _ = warningColor.Fprintf(out, "⚠ Rejected lines (%d):\n", len(report.Rejected))
		for _, line := range report.Rejected {
			_, _ = fmt.Fprintf(out, "  - line %d: %s\n", line.Line, line.Reason)
		}
	}
	if len(report.Accepted) == 0 {
		_, _ = warningColor.Fprintln(out, "✗ No valid flashcards")
		return
	}
	_, _ = successColor.Fprintf(out, "✓ %d flashcard(s) accepted\n", len(report.Accepted))
}
