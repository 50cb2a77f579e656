package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpontes/stowaway/pkg/testutil"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootHasExpectedSubcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"deploy", "list", "docs", "version", "completion"} {
		assert.Contains(t, names, want)
	}
}

func TestListCommand(t *testing.T) {
	env := testutil.NewEnv(t)
	env.AddPackFile(t, "zsh", ".zshrc", "# z")
	env.AddPackFile(t, "i3", filepath.Join(".config", "i3", "config"), "c")

	out, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "zsh")
	assert.Contains(t, out, "i3")
}

func TestVersionCommand(t *testing.T) {
	_, err := execute(t, "version")
	require.NoError(t, err)
}

func TestDocsCommandFallsBackToRawMarkdown(t *testing.T) {
	// Test output is not a terminal, so the raw document is printed
	out, err := execute(t, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "stowaway quickstart")
}

func TestRenderMarkdownFallback(t *testing.T) {
	// Under test, stdout is not a tty; the content passes through
	assert.Equal(t, quickstartDoc, renderMarkdown(quickstartDoc))
}
