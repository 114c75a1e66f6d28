package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for configuration:
// - Defaults are valid and carry the expected levels and patterns
// - Config file values override defaults; env vars override the file
// - Validation rejects bad levels, colors, tokens, and worker counts
// - Source extensions derive from glob patterns

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))

	assert.Equal(t, "AA", cfg.Check.Level)
	assert.Equal(t, "#ffffff", cfg.Check.PageBG)
	assert.Equal(t, "bg-white", cfg.Context.DefaultBG)
	assert.Contains(t, cfg.Paths.Source, "**/*.tsx")
	assert.Contains(t, cfg.Paths.Ignore, "node_modules/**")
	assert.Zero(t, cfg.Extract.Workers)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfigFromDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default().Check.Level, cfg.Check.Level)
	assert.Equal(t, Default().Context.DefaultBG, cfg.Context.DefaultBG)
}

func TestLoad_ConfigFileOverrides(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, ".tailcheck")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	yml := `
check:
  level: AAA
  page_bg: "#0f172a"
context:
  default_bg: bg-background
  containers:
    Card: bg-card
    Dialog: bg-popover
theme:
  tokens:
    background: "#0f172a"
    card: "#1e293b"
extract:
  workers: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(yml), 0o644))

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "AAA", cfg.Check.Level)
	assert.Equal(t, "#0f172a", cfg.Check.PageBG)
	assert.Equal(t, "bg-background", cfg.Context.DefaultBG)
	assert.Equal(t, "bg-card", cfg.Context.Containers["Card"])
	assert.Equal(t, "#1e293b", cfg.Theme.Tokens["card"])
	assert.Equal(t, 4, cfg.Extract.Workers)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, ".tailcheck")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("check:\n  level: AA\n"), 0o644))

	t.Setenv("TAILCHECK_CHECK_LEVEL", "AAA")

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "AAA", cfg.Check.Level)
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, ".tailcheck")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("check:\n  level: AAAA\n"), 0o644))

	_, err := LoadConfigFromDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"bad level", func(c *Config) { c.Check.Level = "AAAA" }, ErrInvalidLevel},
		{"bad page bg", func(c *Config) { c.Check.PageBG = "not-a-color" }, ErrInvalidPageBG},
		{"empty default bg", func(c *Config) { c.Context.DefaultBG = " " }, ErrEmptyDefaultBG},
		{"empty container class", func(c *Config) { c.Context.Containers = map[string]string{"Card": ""} }, ErrInvalidContainer},
		{"bad theme token", func(c *Config) { c.Theme.Tokens = map[string]string{"brand": "blurple"} }, ErrInvalidToken},
		{"negative workers", func(c *Config) { c.Extract.Workers = -1 }, ErrInvalidWorkers},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tc.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate_LevelCaseInsensitive(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Check.Level = "aa"
	assert.NoError(t, Validate(cfg))
}

func TestSourceExtensions(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Paths.Source = []string{"**/*.tsx", "src/**/*.jsx", "*.html", "no-extension/**"}

	exts := cfg.SourceExtensions()
	assert.ElementsMatch(t, []string{".tsx", ".jsx", ".html"}, exts)
}
