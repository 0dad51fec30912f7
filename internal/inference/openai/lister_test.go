package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLister_ListChatModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","data":[
			{"id":"gpt-4o-mini","object":"model","owned_by":"openai"},
			{"id":"whisper-1","object":"model","owned_by":"openai"},
			{"id":"gpt-4o-mini-tts","object":"model","owned_by":"openai"},
			{"id":"o3-mini","object":"model","owned_by":"openai"},
			{"id":"dall-e-3","object":"model","owned_by":"openai"},
			{"id":"gpt-4.1","object":"model","owned_by":"openai"}
		]}`))
	}))
	defer server.Close()

	got, err := NewLister("key", server.URL).ListChatModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"gpt-4.1", "gpt-4o-mini", "o3-mini"}, got)
}

func TestLister_ListChatModels_MissingKey(t *testing.T) {
	_, err := NewLister("", "").ListChatModels(context.Background())
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
