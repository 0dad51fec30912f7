package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/at-ishikawa/cardsmith/internal/config"
	"github.com/at-ishikawa/cardsmith/internal/flashcard"
	"github.com/at-ishikawa/cardsmith/internal/logging"
	"github.com/at-ishikawa/cardsmith/internal/session"
)

var (
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func newLogger() (*zap.Logger, error) {
	logger, err := logging.New(debugMode)
	if err != nil {
		return nil, fmt.Errorf("logging.New() > %w", err)
	}
	return logger, nil
}

// readDeck imports a deck file the same way the server's import does.
func readDeck(ctx context.Context, path string, logger *zap.Logger) ([]flashcard.Flashcard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	s := session.New(session.Dependencies{Logger: logger})
	result, err := s.Import(ctx, filepath.Base(path), data)
	if err != nil {
		return nil, fmt.Errorf("session.Import(%s) > %w", path, err)
	}
	return result.Cards, nil
}

// titleOf derives a study sheet title from a file name.
func titleOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
