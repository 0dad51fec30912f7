// Package testutil provides shared test helpers for config files and deck fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig writes a config file whose outputs go under tmpDir and
// appends extra YAML to it. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, extra string) string {
	t.Helper()

	outputs := filepath.Join(tmpDir, "outputs")
	require.NoError(t, os.MkdirAll(outputs, 0755))

	configContent := fmt.Sprintf(`outputs:
  directory: %s
`, outputs) + extra

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithOpenAI selects the openai provider pointed at baseURL
// with a fake key.
func SetupTestConfigWithOpenAI(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()
	return SetupTestConfig(t, tmpDir, fmt.Sprintf(`generation:
  provider: openai
openai:
  api_key: fake-key-for-testing
  model: gpt-4o-mini
  base_url: %s
`, baseURL))
}

// WriteDeck writes lines as a deck file named name under dir.
func WriteDeck(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644))
	return path
}
