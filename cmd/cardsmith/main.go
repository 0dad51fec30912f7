package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	debugMode  bool
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cardsmith",
		Short:         "Generate, check and print flashcard decks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path")
	flags.BoolVar(&debugMode, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newGenerateCommand(),
		newValidateCommand(),
		newPrintCommand(),
		newModelsCommand(),
		newReviewCommand(),
	)
	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
