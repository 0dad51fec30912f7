package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/cardsmith/internal/testutil"
)

func TestModelsCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"object": "list",
			"data": []map[string]any{
				{"id": "gpt-4o-mini", "object": "model", "owned_by": "openai"},
				{"id": "whisper-1", "object": "model", "owned_by": "openai"},
				{"id": "gpt-4.1", "object": "model", "owned_by": "openai"},
			},
		})
	}))
	defer server.Close()

	dir := t.TempDir()
	cfgPath := testutil.SetupTestConfigWithOpenAI(t, dir, server.URL)

	out, err := executeCommand(t, "--config", cfgPath, "models")
	require.NoError(t, err)
	assert.Equal(t, "  gpt-4.1\n* gpt-4o-mini\n", out)
}
