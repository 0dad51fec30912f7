package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"go.uber.org/zap"
	"resty.dev/v3"

	"github.com/at-ishikawa/cardsmith/internal/inference"
)

const DefaultBaseURL = "https://api.openai.com/v1"

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
	logger           *zap.Logger
}

// NewClient creates a chat completions client. maxRetryAttempts is the
// number of extra attempts after a retryable failure; 0 calls the API once.
func NewClient(apiKey, model, baseURL string, maxRetryAttempts uint, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: maxRetryAttempts,
		logger:           logger,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	// 5xx and rate limiting
	if strings.Contains(errStr, "response error 5") || strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}

// GenerateText implements the inference.Client interface
func (client *Client) GenerateText(
	ctx context.Context,
	params inference.GenerateTextRequest,
) (inference.GenerateTextResponse, error) {
	var result inference.GenerateTextResponse
	if err := retry.Do(
		func() error {
			response, err := client.generateText(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			client.logger.Info("OpenAI API call failed",
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return inference.GenerateTextResponse{}, err
	}
	return result, nil
}

func (client *Client) generateText(
	ctx context.Context,
	params inference.GenerateTextRequest,
) (inference.GenerateTextResponse, error) {
	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.7,
		Messages: []Message{
			{Role: RoleUser, Content: params.Prompt},
		},
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return inference.GenerateTextResponse{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return inference.GenerateTextResponse{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return inference.GenerateTextResponse{}, nil
	}

	client.logger.Debug("generateText response",
		zap.Int("count", params.Count),
		zap.String("model", responseBody.Model),
		zap.Int("totalTokens", responseBody.Usage.TotalTokens),
	)

	return inference.GenerateTextResponse{
		Text:  responseBody.Choices[0].Message.Content,
		Model: responseBody.Model,
	}, nil
}
