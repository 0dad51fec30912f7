package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/cardsmith/internal/inference/openai"
)

func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the OpenAI chat models available to the configured key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}

			models, err := openai.NewLister(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL).ListChatModels(cmd.Context())
			if err != nil {
				return fmt.Errorf("ListChatModels() > %w", err)
			}

			out := cmd.OutOrStdout()
			for _, model := range models {
				marker := " "
				if model == cfg.OpenAI.Model {
					marker = "*"
				}
				_, _ = fmt.Fprintf(out, "%s %s\n", marker, model)
			}
			return nil
		},
	}
}
