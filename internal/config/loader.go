package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a configuration loader for the given project root.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (TAILCHECK_*)
// 2. Config file (.tailcheck/config.yml or .tailcheck/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(l.rootDir, ".tailcheck")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	// Environment overrides, e.g. TAILCHECK_CHECK_LEVEL=AAA
	v.SetEnvPrefix("TAILCHECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("check.level")
	v.BindEnv("check.page_bg")
	v.BindEnv("context.default_bg")
	v.BindEnv("extract.workers")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is acceptable; defaults + env vars apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("check.level", defaults.Check.Level)
	v.SetDefault("check.page_bg", defaults.Check.PageBG)

	v.SetDefault("paths.source", defaults.Paths.Source)
	v.SetDefault("paths.ignore", defaults.Paths.Ignore)

	v.SetDefault("context.containers", defaults.Context.Containers)
	v.SetDefault("context.default_bg", defaults.Context.DefaultBG)

	v.SetDefault("theme.tokens", defaults.Theme.Tokens)

	v.SetDefault("extract.workers", defaults.Extract.Workers)
}

// LoadConfig is a convenience function that creates a loader and loads
// config from the current working directory.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
