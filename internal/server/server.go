package server

import (
	"fmt"
	"net/http"

	"connectrpc.com/connect"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/cardsmith/internal/assets"
	"github.com/at-ishikawa/cardsmith/internal/config"
)

// readLimit is the largest request body accepted for an upload of maxUpload
// bytes. Bytes fields travel base64-encoded inside JSON.
func readLimit(maxUpload int) int {
	return maxUpload/3*4 + 4 + 64<<10
}

// NewHandler routes the flashcard service and the HTML pages.
func NewHandler(cfg *config.Config, s Session, logger *zap.Logger) (http.Handler, error) {
	flashcardHandler, err := NewFlashcardHandler(s, cfg.Generation.MaxCount, logger)
	if err != nil {
		return nil, fmt.Errorf("NewFlashcardHandler() > %w", err)
	}
	cardsPage, err := assets.NewCardsPage(cfg.Templates.CardsPageTemplate, logger)
	if err != nil {
		return nil, fmt.Errorf("assets.NewCardsPage() > %w", err)
	}
	pageHandler := NewPageHandler(s, cardsPage, logger)

	path, h := NewFlashcardServiceHandler(flashcardHandler,
		connect.WithInterceptors(NewLoggingInterceptor(logger)),
		connect.WithReadMaxBytes(readLimit(cfg.Server.MaxUploadBytes)),
	)

	mux := http.NewServeMux()
	mux.Handle(path, h)
	mux.HandleFunc("GET /{$}", pageHandler.ServeCards)
	mux.HandleFunc("GET /flashcards.txt", pageHandler.ServeExport)

	return cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms"},
		MaxAge:         3600,
	}).Handler(h2c.NewHandler(mux, &http2.Server{})), nil
}

// New returns the HTTP server listening on the configured port.
func New(cfg *config.Config, s Session, logger *zap.Logger) (*http.Server, error) {
	handler, err := NewHandler(cfg, s, logger)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: handler,
	}, nil
}
