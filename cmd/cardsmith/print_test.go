package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/cardsmith/internal/testutil"
)

func TestPrintCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, dir, "")
	deck := testutil.WriteDeck(t, dir, "cell-biology.txt",
		"Cell;Basic unit of life;Tiny;1",
		"Osmosis;Diffusion of water;;2",
	)

	out, err := executeCommand(t, "--config", cfgPath, "print", deck, "--title", "Cell Biology")
	require.NoError(t, err)

	markdownPath := filepath.Join(dir, "outputs", "cell-biology.md")
	assert.Contains(t, out, "Study sheet written to: "+markdownPath)
	content, err := os.ReadFile(markdownPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Cell Biology")
	assert.Contains(t, string(content), "## 2. Osmosis")
}

func TestPrintCommand_MissingFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, dir, "")

	_, err := executeCommand(t, "--config", cfgPath, "print", filepath.Join(dir, "missing.txt"))
	assert.ErrorContains(t, err, "os.ReadFile")
}

func TestReviewCommand(t *testing.T) {
	dir := t.TempDir()
	deck := testutil.WriteDeck(t, dir, "deck.txt", "Sun;A star;;1", "Moon;A satellite")

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("a star\ny\n\n"))
	cmd.SetArgs([]string{"review", deck})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "You knew 1 of 2 cards.")
	assert.Contains(t, out.String(), "Review again: Moon")
}
