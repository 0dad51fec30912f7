package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/at-ishikawa/cardsmith/internal/bootstrap"
	"github.com/at-ishikawa/cardsmith/internal/config"
	"github.com/at-ishikawa/cardsmith/internal/extract"
	"github.com/at-ishikawa/cardsmith/internal/generation"
	"github.com/at-ishikawa/cardsmith/internal/inference/provider"
	"github.com/at-ishikawa/cardsmith/internal/logging"
	"github.com/at-ishikawa/cardsmith/internal/server"
	"github.com/at-ishikawa/cardsmith/internal/session"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "cardsmith-server",
		Short:         "Cardsmith flashcard authoring HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	logger, err := logging.New(debugMode)
	if err != nil {
		return fmt.Errorf("logging.New() > %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	app := bootstrap.New(logger)

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

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

	srv, err := server.New(cfg, s, logger)
	if err != nil {
		return fmt.Errorf("server.New() > %w", err)
	}
	app.AddShutdownHook("http server", srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		logger.Info("starting server",
			zap.String("addr", srv.Addr),
			zap.String("provider", cfg.Generation.Provider),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe() > %w", err)
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
