package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client is the text generation collaborator. Implementations make one
// request per call and return the model's raw text.
type Client interface {
	GenerateText(ctx context.Context, params GenerateTextRequest) (GenerateTextResponse, error)
}

// GenerateTextRequest carries a fully composed prompt and the number of
// records the prompt asks for.
type GenerateTextRequest struct {
	Prompt string `json:"prompt"`
	Count  int    `json:"count"`
}

type GenerateTextResponse struct {
	Text  string `json:"text"`
	Model string `json:"model,omitempty"`
}
