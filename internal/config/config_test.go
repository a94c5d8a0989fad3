package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default("clam")
	assert.Equal(t, "clam> ", cfg.Prompt)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "default", cfg.Theme)
	assert.Empty(t, cfg.HistoryFile)
	assert.Empty(t, cfg.TranscriptPath)
	assert.Empty(t, cfg.UsageLog)
	assert.False(t, cfg.AutoCorrect)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("clam")
	require.NoError(t, err)
	assert.Equal(t, Default("clam"), cfg)
}

func TestLoadReadsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "clam")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := `
prompt = "shell% "
history_file = "/tmp/clam_history"
color = "never"
theme = "dark"
auto_correct = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := Load("clam")
	require.NoError(t, err)
	assert.Equal(t, "shell% ", cfg.Prompt)
	assert.Equal(t, "/tmp/clam_history", cfg.HistoryFile)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, "dark", cfg.Theme)
	assert.True(t, cfg.AutoCorrect)
}

func TestLoadRejectsInvalidColor(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "clam")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`color = "sometimes"`), 0644))

	_, err := Load("clam")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sometimes")
}

func TestLoadFileExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`prompt = ">> "`), 0644))

	cfg, err := LoadFile("clam", path)
	require.NoError(t, err)
	assert.Equal(t, ">> ", cfg.Prompt)

	_, err = LoadFile("clam", filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "clam")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`color = "always"`), 0644))

	t.Setenv("CLAM_COLOR", "never")
	t.Setenv("CLAM_PROMPT", "env> ")
	t.Setenv("CLAM_AUTO_CORRECT", "true")

	cfg, err := Load("clam")
	require.NoError(t, err)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, "env> ", cfg.Prompt)
	assert.True(t, cfg.AutoCorrect)
}

func TestEnvPrefix(t *testing.T) {
	assert.Equal(t, "CLAM_", EnvPrefix("clam"))
	assert.Equal(t, "MY_APP_", EnvPrefix("my-app"))
}

func TestPathUnderConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	path, err := Path("clam")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "clam", "config.toml"), path)
}
