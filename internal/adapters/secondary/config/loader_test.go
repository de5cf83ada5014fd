package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.Highlight.Enabled)
	assert.NotEmpty(t, cfg.Highlight.Styles)
	assert.NotEmpty(t, cfg.Highlight.Scripts)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 1948, cfg.Server.Port)
}

func TestTOMLLoader_Load_NoFile(t *testing.T) {
	loader := NewTOMLLoader()

	cfg, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default().Server, cfg.Server)
}

func TestTOMLLoader_Load(t *testing.T) {
	dir := t.TempDir()
	content := `
[output]
path = "deck.html"

[cache]
dir = "/tmp/slidesmith-test-cache"

[highlight]
enabled = false

[server]
port = 9000
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))

	loader := NewTOMLLoader()
	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "deck.html", cfg.Output.Path)
	assert.Equal(t, "/tmp/slidesmith-test-cache", cfg.Cache.Dir)
	assert.False(t, cfg.Highlight.Enabled)
	assert.Equal(t, 9000, cfg.Server.Port)
	// Untouched sections keep their defaults.
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestTOMLLoader_Load_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("[broken"), 0o600))

	_, err := NewTOMLLoader().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}
