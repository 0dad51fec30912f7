// Package generation turns a topic or document into flashcards through the
// configured inference provider.
package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/at-ishikawa/cardsmith/internal/assets"
	"github.com/at-ishikawa/cardsmith/internal/flashcard"
	"github.com/at-ishikawa/cardsmith/internal/inference"
	"github.com/at-ishikawa/cardsmith/internal/record"
)

const DefaultCount = 10

// Replacer receives a successful generation.
type Replacer interface {
	ReplaceAll(cards []flashcard.Flashcard)
}

type Request struct {
	Source Source
	// Count is the number of cards to ask for; 0 or less uses the default.
	Count int
}

type Result struct {
	Cards   []flashcard.Flashcard
	Model   string
	Message string
}

type Options struct {
	DefaultCount       int
	PromptTemplatePath string
}

type Orchestrator struct {
	client             inference.Client
	guard              *Guard
	store              Replacer
	parser             *record.Parser
	defaultCount       int
	promptTemplatePath string
	logger             *zap.Logger
}

func NewOrchestrator(
	client inference.Client,
	guard *Guard,
	store Replacer,
	palette *flashcard.Palette,
	ids flashcard.IDGenerator,
	options Options,
	logger *zap.Logger,
) *Orchestrator {
	defaultCount := options.DefaultCount
	if defaultCount <= 0 {
		defaultCount = DefaultCount
	}
	return &Orchestrator{
		client:             client,
		guard:              guard,
		store:              store,
		parser:             record.NewParser(record.GenerationDialect, flashcard.IDPrefixGenerated, palette, ids),
		defaultCount:       defaultCount,
		promptTemplatePath: options.PromptTemplatePath,
		logger:             logger,
	}
}

// Generate asks the provider once for flashcards about the request's source.
// On success the parsed cards replace the store's collection; on any failure
// the store is left untouched. Returns ErrBusy while another generation or
// import holds the guard.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	var result Result
	err := o.guard.Do(func() error {
		var err error
		result, err = o.generate(ctx, req)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return result, nil
}

func (o *Orchestrator) generate(ctx context.Context, req Request) (Result, error) {
	subject, err := req.Source.Load(ctx)
	if err != nil {
		return Result{}, err
	}

	count := req.Count
	if count <= 0 {
		count = o.defaultCount
	}
	prompt, err := o.BuildPrompt(count, subject.Text)
	if err != nil {
		return Result{}, fmt.Errorf("o.BuildPrompt() > %w", err)
	}

	startedAt := time.Now()
	response, err := o.client.GenerateText(ctx, inference.GenerateTextRequest{
		Prompt: prompt,
		Count:  count,
	})
	if err != nil {
		o.logger.Warn("flashcard generation failed",
			zap.Int("count", count),
			zap.Duration("elapsed", time.Since(startedAt)),
			zap.Error(err),
		)
		return Result{}, &CollaboratorError{Op: OpGeneration, Err: err}
	}
	if strings.TrimSpace(response.Text) == "" {
		return Result{}, ErrEmptyResponse
	}

	cards := o.parser.Parse(response.Text)
	if len(cards) == 0 {
		o.logger.Info("no valid flashcards in response",
			zap.String("model", response.Model),
			zap.Int("responseLength", len(response.Text)),
		)
		return Result{}, ErrNoValidFlashcards
	}

	o.store.ReplaceAll(cards)
	o.logger.Info("flashcards generated",
		zap.Int("requested", count),
		zap.Int("generated", len(cards)),
		zap.String("model", response.Model),
		zap.Duration("elapsed", time.Since(startedAt)),
	)
	return Result{
		Cards:   cards,
		Model:   response.Model,
		Message: fmt.Sprintf("%d flashcards generated successfully %s.", len(cards), subject.Description),
	}, nil
}

// BuildPrompt renders the generation prompt for count cards about content.
func (o *Orchestrator) BuildPrompt(count int, content string) (string, error) {
	var b strings.Builder
	if err := assets.WritePrompt(&b, o.promptTemplatePath, assets.PromptTemplate{
		Count:   count,
		Content: content,
	}, o.logger); err != nil {
		return "", fmt.Errorf("assets.WritePrompt() > %w", err)
	}
	return b.String(), nil
}
