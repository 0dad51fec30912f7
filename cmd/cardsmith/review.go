package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/cardsmith/internal/review"
)

func newReviewCommand() *cobra.Command {
	var shuffle bool

	command := &cobra.Command{
		Use:   "review <file>",
		Short: "Review a deck in the terminal and grade yourself",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			cli := review.NewReviewCLI(cards, cmd.InOrStdin(), cmd.OutOrStdout())
			if shuffle {
				cli.ShuffleCards()
			}
			if _, err := cli.Run(cmd.Context()); err != nil {
				return fmt.Errorf("cli.Run() > %w", err)
			}
			return nil
		},
	}

	command.Flags().BoolVar(&shuffle, "shuffle", false, "review the cards in random order")
	return command
}
