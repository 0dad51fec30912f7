package gemini

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/at-ishikawa/cardsmith/internal/inference"
)

const DefaultModel = "gemini-2.5-flash"

var ErrMissingAPIKey = errors.New("gemini API key not found. Set GEMINI_API_KEY or gemini.api_key in the config file")

type Client struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewClient creates a client for the Gemini Developer API. An empty baseURL
// uses the SDK default endpoint.
func NewClient(ctx context.Context, apiKey, model, baseURL string, logger *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}

	config := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		config.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient() > %w", err)
	}
	return &Client{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (c *Client) GetModel() string {
	return c.model
}

// GenerateText implements the inference.Client interface
func (c *Client) GenerateText(
	ctx context.Context,
	params inference.GenerateTextRequest,
) (inference.GenerateTextResponse, error) {
	response, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(params.Prompt),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.7),
		},
	)
	if err != nil {
		return inference.GenerateTextResponse{}, fmt.Errorf("client.Models.GenerateContent() > %w", err)
	}

	model := response.ModelVersion
	if model == "" {
		model = c.model
	}
	c.logger.Debug("generateText response",
		zap.Int("count", params.Count),
		zap.String("model", model),
		zap.Int("candidates", len(response.Candidates)),
	)

	return inference.GenerateTextResponse{
		Text:  response.Text(),
		Model: model,
	}, nil
}
