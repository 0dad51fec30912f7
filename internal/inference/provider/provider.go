// Package provider builds the inference client selected by configuration.
package provider

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/at-ishikawa/cardsmith/internal/config"
	"github.com/at-ishikawa/cardsmith/internal/inference"
	"github.com/at-ishikawa/cardsmith/internal/inference/gemini"
	"github.com/at-ishikawa/cardsmith/internal/inference/openai"
)

// New returns the configured provider wrapped in a circuit breaker.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*inference.BreakerClient, error) {
	var (
		client inference.Client
		err    error
	)
	switch cfg.Generation.Provider {
	case config.ProviderGemini, "":
		client, err = gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.BaseURL, logger)
		if err != nil {
			return nil, fmt.Errorf("gemini.NewClient() > %w", err)
		}
	case config.ProviderOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return nil, openai.ErrMissingAPIKey
		}
		client = openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL, cfg.OpenAI.MaxRetryAttempts, logger)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Generation.Provider)
	}

	return inference.NewBreakerClient(client, inference.BreakerSettings{
		Name:                   cfg.Generation.Provider,
		MaxConsecutiveFailures: cfg.Breaker.MaxConsecutiveFailures,
		OpenTimeout:            time.Duration(cfg.Breaker.OpenTimeoutSeconds) * time.Second,
	}, logger), nil
}
