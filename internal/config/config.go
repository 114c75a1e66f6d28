// Package config loads and validates tailcheck project configuration
// from .tailcheck/config.yml with environment variable overrides.
package config

// Config represents the complete tailcheck configuration.
type Config struct {
	Check   CheckConfig   `yaml:"check" mapstructure:"check"`
	Paths   PathsConfig   `yaml:"paths" mapstructure:"paths"`
	Context ContextConfig `yaml:"context" mapstructure:"context"`
	Theme   ThemeConfig   `yaml:"theme" mapstructure:"theme"`
	Extract ExtractConfig `yaml:"extract" mapstructure:"extract"`
}

// CheckConfig selects the conformance level and the page background that
// semi-transparent colors composite against.
type CheckConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`     // "AA" or "AAA"
	PageBG string `yaml:"page_bg" mapstructure:"page_bg"` // hex color of the document body
}

// PathsConfig defines which files to audit and which to skip.
type PathsConfig struct {
	Source []string `yaml:"source" mapstructure:"source"` // glob patterns for markup files
	Ignore []string `yaml:"ignore" mapstructure:"ignore"` // glob patterns to ignore
}

// ContextConfig seeds the background context tracking.
type ContextConfig struct {
	// Containers maps component names to the background utility class
	// their children render on, e.g. Card -> bg-card.
	Containers map[string]string `yaml:"containers" mapstructure:"containers"`
	// DefaultBG applies when no enclosing container sets a background.
	DefaultBG string `yaml:"default_bg" mapstructure:"default_bg"`
}

// ThemeConfig maps custom theme token names to CSS color values, layered
// over the built-in palette.
type ThemeConfig struct {
	Tokens map[string]string `yaml:"tokens" mapstructure:"tokens"`
}

// ExtractConfig tunes the extraction driver.
type ExtractConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"` // 0 means one per CPU
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Check: CheckConfig{
			Level:  "AA",
			PageBG: "#ffffff",
		},
		Paths: PathsConfig{
			Source: []string{
				"**/*.tsx",
				"**/*.jsx",
				"**/*.html",
			},
			Ignore: []string{
				"node_modules/**",
				"dist/**",
				"build/**",
				".git/**",
				".next/**",
				"coverage/**",
				"storybook-static/**",
			},
		},
		Context: ContextConfig{
			Containers: map[string]string{},
			DefaultBG:  "bg-white",
		},
		Theme: ThemeConfig{
			Tokens: map[string]string{},
		},
		Extract: ExtractConfig{
			Workers: 0,
		},
	}
}

// SourceExtensions extracts unique file extensions from the source
// patterns, with leading dot (e.g. []string{".tsx", ".html"}).
func (c *Config) SourceExtensions() []string {
	extMap := make(map[string]bool)
	for _, pattern := range c.Paths.Source {
		if ext := extractExtension(pattern); ext != "" {
			extMap[ext] = true
		}
	}

	extensions := make([]string, 0, len(extMap))
	for ext := range extMap {
		extensions = append(extensions, ext)
	}
	return extensions
}

// extractExtension pulls the file extension out of a glob pattern.
// Examples: "**/*.tsx" -> ".tsx", "*.html" -> ".html".
func extractExtension(pattern string) string {
	for i := len(pattern) - 1; i >= 1; i-- {
		if pattern[i] == '.' && pattern[i-1] == '*' {
			return pattern[i:]
		}
	}
	return ""
}
