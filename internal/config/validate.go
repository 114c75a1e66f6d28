package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tailcheck/tailcheck/internal/color"
)

var (
	// ErrInvalidLevel indicates an unsupported conformance level
	ErrInvalidLevel = errors.New("invalid conformance level")

	// ErrInvalidPageBG indicates an unparseable page background color
	ErrInvalidPageBG = errors.New("invalid page background")

	// ErrEmptyDefaultBG indicates a missing default background class
	ErrEmptyDefaultBG = errors.New("empty default background")

	// ErrInvalidContainer indicates a malformed container mapping
	ErrInvalidContainer = errors.New("invalid container mapping")

	// ErrInvalidToken indicates an unparseable theme token value
	ErrInvalidToken = errors.New("invalid theme token")

	// ErrInvalidWorkers indicates an invalid worker count
	ErrInvalidWorkers = errors.New("invalid worker count")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateCheck(&cfg.Check); err != nil {
		errs = append(errs, err)
	}
	if err := validateContext(&cfg.Context); err != nil {
		errs = append(errs, err)
	}
	if err := validateTheme(&cfg.Theme); err != nil {
		errs = append(errs, err)
	}
	if err := validateExtract(&cfg.Extract); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func validateCheck(cfg *CheckConfig) error {
	var errs []error

	level := strings.ToUpper(cfg.Level)
	if level != "AA" && level != "AAA" {
		errs = append(errs, fmt.Errorf("%w: must be 'AA' or 'AAA', got '%s'", ErrInvalidLevel, cfg.Level))
	}

	if _, ok := color.ToHex(cfg.PageBG); !ok {
		errs = append(errs, fmt.Errorf("%w: cannot parse '%s' as a color", ErrInvalidPageBG, cfg.PageBG))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func validateContext(cfg *ContextConfig) error {
	var errs []error

	if strings.TrimSpace(cfg.DefaultBG) == "" {
		errs = append(errs, fmt.Errorf("%w: default_bg is required", ErrEmptyDefaultBG))
	}

	for component, bgClass := range cfg.Containers {
		if strings.TrimSpace(component) == "" || strings.TrimSpace(bgClass) == "" {
			errs = append(errs, fmt.Errorf("%w: '%s' -> '%s'", ErrInvalidContainer, component, bgClass))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func validateTheme(cfg *ThemeConfig) error {
	var errs []error

	for token, value := range cfg.Tokens {
		if _, ok := color.ToHex(value); !ok {
			errs = append(errs, fmt.Errorf("%w: '%s' -> '%s'", ErrInvalidToken, token, value))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func validateExtract(cfg *ExtractConfig) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative, got %d", ErrInvalidWorkers, cfg.Workers)
	}
	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
