// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"lexiscan/internal/paths"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format           string `yaml:"format"`
		SeverityLevels   string `yaml:"severity_levels"`
		DocumentType     string `yaml:"document_type"`
		Jurisdiction     string `yaml:"jurisdiction"`
		Verbose          bool   `yaml:"verbose"`
		Debug            bool   `yaml:"debug"`
		NoColor          bool   `yaml:"no_color"`
		ShowExcerpts     bool   `yaml:"show_excerpts"`
		EnableExtractors bool   `yaml:"enable_extractors"`
	} `yaml:"defaults"`

	// Catalog points to a YAML pattern catalog that replaces the
	// built-in one. Empty means use the built-in catalog.
	Catalog string `yaml:"catalog"`

	// Suppressions points to the suppression rule file.
	Suppressions string `yaml:"suppressions"`

	// Profiles for different assessment scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents an assessment profile with specific settings
type Profile struct {
	Format           string `yaml:"format"`
	SeverityLevels   string `yaml:"severity_levels"`
	DocumentType     string `yaml:"document_type"`
	Jurisdiction     string `yaml:"jurisdiction"`
	Verbose          bool   `yaml:"verbose"`
	Debug            bool   `yaml:"debug"`
	NoColor          bool   `yaml:"no_color"`
	ShowExcerpts     bool   `yaml:"show_excerpts"`
	EnableExtractors bool   `yaml:"enable_extractors"`
	Description      string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.SeverityLevels = "all"
	config.Defaults.DocumentType = "contract"
	config.Defaults.Jurisdiction = "US"
	config.Defaults.Verbose = false
	config.Defaults.Debug = false
	config.Defaults.NoColor = false
	config.Defaults.ShowExcerpts = true
	config.Defaults.EnableExtractors = true

	// Built-in CI profile: machine output, only findings that should
	// block a pipeline.
	config.Profiles["ci"] = Profile{
		Format:           "json",
		SeverityLevels:   "high,medium",
		NoColor:          true,
		EnableExtractors: true,
		Description:      "Optimized for CI pipelines with JSON output and blocking severities only",
	}

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Store defaults that YAML unmarshaling would silently zero when the
	// key is absent from the file.
	defaultShowExcerpts := config.Defaults.ShowExcerpts
	defaultEnableExtractors := config.Defaults.EnableExtractors

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Restore defaults if not explicitly set in config file. YAML
	// unmarshaling zeroes bool fields that are absent from the file.
	if !containsField(data, "defaults", "show_excerpts") {
		config.Defaults.ShowExcerpts = defaultShowExcerpts
	}
	if !containsField(data, "defaults", "enable_extractors") {
		config.Defaults.EnableExtractors = defaultEnableExtractors
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// containsField checks whether a nested key path exists in the raw YAML.
func containsField(data []byte, path ...string) bool {
	var yamlData map[string]interface{}
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		return false
	}

	current := yamlData
	for i, key := range path {
		if i == len(path)-1 {
			_, exists := current[key]
			return exists
		}
		next, ok := current[key].(map[string]interface{})
		if !ok {
			return false
		}
		current = next
	}
	return false
}

// ValidateConfig checks configuration values that would otherwise fail
// deep inside the pipeline.
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	if config.Catalog != "" {
		if _, err := os.Stat(filepath.Clean(config.Catalog)); err != nil {
			return fmt.Errorf("catalog file not accessible: %w", err)
		}
	}

	return nil
}

// GetProfile returns a profile by name
func (c *Config) GetProfile(name string) (*Profile, error) {
	profile, exists := c.Profiles[name]
	if !exists {
		return nil, fmt.Errorf("profile '%s' not found", name)
	}
	return &profile, nil
}

// ListProfiles returns all available profile names
func (c *Config) ListProfiles() []string {
	var names []string
	for name := range c.Profiles {
		names = append(names, name)
	}
	return names
}

// FindConfigFile looks for a config file in standard locations
func FindConfigFile() string {
	candidates := []string{
		".lexiscan.yaml",
		".lexiscan.yml",
		"lexiscan.yaml",
		paths.GetConfigFile(),
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
