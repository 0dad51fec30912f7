package openai

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
)

var ErrMissingAPIKey = errors.New("OpenAI API key not found. Set OPENAI_API_KEY or openai.api_key in the config file")

// Lister lists the chat models usable for generation.
type Lister struct {
	apiKey string
	client *goopenai.Client
}

func NewLister(apiKey, baseURL string) *Lister {
	config := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: goopenai.NewClientWithConfig(config),
	}
}

// ListChatModels returns the sorted ids of GPT/chat and o-series models.
func (l *Lister) ListChatModels(ctx context.Context) ([]string, error) {
	if l.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("client.ListModels() > %w", err)
	}

	var chatModels []string
	for _, model := range models.Models {
		id := model.ID
		if strings.Contains(id, "tts") || strings.Contains(id, "audio") || strings.Contains(id, "image") || strings.Contains(id, "moderation") {
			continue
		}
		if strings.Contains(id, "gpt") || strings.Contains(id, "chat") || strings.HasPrefix(id, "o") {
			chatModels = append(chatModels, id)
		}
	}
	sort.Strings(chatModels)
	return chatModels, nil
}
