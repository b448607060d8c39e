// Package config provides configuration loading and validation for Miles.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gerunddev/miles/internal/log"
	"github.com/gerunddev/miles/internal/prompt"
)

// Standard config file location.
const defaultConfigPath = "~/.config/miles/config.json"

// Config holds all Miles configuration settings.
type Config struct {
	LogLevel   string   `json:"log_level"`
	Extensions []string `json:"extensions"` // Paths to extension section files, relative to the config file
	Sections   []string `json:"sections"`   // Inline extension sections

	// expandedPaths tracks whether ExpandPaths has been called.
	expandedPaths bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// DefaultPath returns the expanded standard config location.
func DefaultPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load reads config from the standard location (~/.config/miles/config.json),
// falling back to defaults if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}
	return LoadFromPath(configPath)
}

// LoadFromPath reads config from a specific path.
// If the file doesn't exist, returns default config.
// If the file exists but is invalid, returns an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Debug("no config file, using defaults", "path", path)
		if err := cfg.ExpandPaths(); err != nil {
			return nil, fmt.Errorf("failed to expand paths: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg fileConfig
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	mergeConfig(cfg, &fileCfg)
	cfg.resolveRelativeTo(filepath.Dir(path))

	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	for i, section := range cfg.Sections {
		if prompt.Normalize(section) == "" {
			log.Warn("blank extension section will be skipped", "source", fmt.Sprintf("sections[%d]", i), "config", path)
		}
	}

	return cfg, nil
}

// resolveRelativeTo makes relative extension paths relative to dir, the
// directory holding the config file. ~ paths are left for ExpandPaths.
func (c *Config) resolveRelativeTo(dir string) {
	for i, p := range c.Extensions {
		if p == "" || strings.HasPrefix(p, "~") || filepath.IsAbs(p) {
			continue
		}
		c.Extensions[i] = filepath.Join(dir, p)
	}
}

// fileConfig is used for parsing JSON with pointer fields to detect what was set.
type fileConfig struct {
	LogLevel   *string   `json:"log_level"`
	Extensions *[]string `json:"extensions"`
	Sections   *[]string `json:"sections"`
}

// mergeConfig merges file config values into the default config.
// Only non-nil values from the file config are applied.
func mergeConfig(cfg *Config, fileCfg *fileConfig) {
	if fileCfg.LogLevel != nil {
		cfg.LogLevel = *fileCfg.LogLevel
	}
	if fileCfg.Extensions != nil {
		cfg.Extensions = append([]string(nil), *fileCfg.Extensions...)
	}
	if fileCfg.Sections != nil {
		cfg.Sections = append([]string(nil), *fileCfg.Sections...)
	}
}

// Validate checks that all config values are valid.
func (c *Config) Validate() error {
	var errs []error

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}

	for i, path := range c.Extensions {
		if strings.TrimSpace(path) == "" {
			errs = append(errs, fmt.Errorf("extensions[%d] must be non-empty", i))
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("extensions[%d] file does not exist: %s", i, path))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// ExpandPaths expands ~ to home directory in all path fields.
func (c *Config) ExpandPaths() error {
	if c.expandedPaths {
		return nil
	}

	for i, path := range c.Extensions {
		expanded, err := expandPath(path)
		if err != nil {
			return fmt.Errorf("failed to expand extensions[%d]: %w", i, err)
		}
		c.Extensions[i] = expanded
	}

	c.expandedPaths = true
	return nil
}

// ExtensionSections returns the configured extension sections: the contents
// of each extension file in listed order, then the inline sections.
// Content is returned verbatim; trimming happens at composition.
func (c *Config) ExtensionSections() ([]string, error) {
	sections := make([]string, 0, len(c.Extensions)+len(c.Sections))

	for _, path := range c.Extensions {
		content, err := ReadSectionFile(path)
		if err != nil {
			return nil, err
		}
		sections = append(sections, content)
	}

	sections = append(sections, c.Sections...)
	return sections, nil
}

// ReadSectionFile reads one extension section from disk.
func ReadSectionFile(path string) (string, error) {
	expanded, err := expandPath(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand section path %s: %w", path, err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to read section file %s: %w", path, err)
	}

	content := string(data)
	if prompt.Normalize(content) == "" {
		log.Warn("blank extension section will be skipped", "source", expanded)
	} else {
		log.Debug("loaded extension section", "path", expanded, "bytes", len(data))
	}
	return content, nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	return filepath.Clean(path), nil
}
