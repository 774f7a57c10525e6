package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Punctuation categories recognised by the pattern compiler
const (
	CategoryGeneral = "general"
	CategoryHyphens = "hyphens"
	CategoryArabic  = "arabic"
)

// Config is the normalization document
type Config struct {
	NonSpaceJoiners []string            `yaml:"non_space_joiners"`
	UnicodeRanges   map[string][]string `yaml:"unicode_ranges"`
	Punctuations    map[string][]string `yaml:"punctuations"`
	Characters      []string            `yaml:"characters"`
}

// ConfigError reports a missing, unreadable or malformed configuration
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load reads and parses the YAML document at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return cfg, nil
}

// Parse decodes a YAML document. Absent keys default to empty.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if cfg.UnicodeRanges == nil {
		cfg.UnicodeRanges = map[string][]string{}
	}
	if cfg.Punctuations == nil {
		cfg.Punctuations = map[string][]string{}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Punctuation returns the characters of a category, empty when absent
func (c *Config) Punctuation(category string) []string {
	return c.Punctuations[category]
}

// Ranges returns the range specifiers configured for lang, empty when absent
func (c *Config) Ranges(lang string) []string {
	return c.UnicodeRanges[lang]
}

func (c *Config) validate() error {
	if err := noEmpty("non_space_joiners", c.NonSpaceJoiners); err != nil {
		return err
	}
	if err := noEmpty("characters", c.Characters); err != nil {
		return err
	}
	for category, chars := range c.Punctuations {
		if err := noEmpty("punctuations."+category, chars); err != nil {
			return err
		}
	}
	for lang, ranges := range c.UnicodeRanges {
		if err := noEmpty("unicode_ranges."+lang, ranges); err != nil {
			return err
		}
	}
	return nil
}

var errEmptyEntry = errors.New("empty entry")

func noEmpty(key string, entries []string) error {
	for i, e := range entries {
		if e == "" {
			return fmt.Errorf("%s[%d]: %w", key, i, errEmptyEntry)
		}
	}
	return nil
}
