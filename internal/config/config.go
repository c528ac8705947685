// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by the build command
const (
	FormatJSON  = "json"
	FormatLaTeX = "tex"
	FormatHTML  = "html"
	FormatPDF   = "pdf"
)

// Environment variables read by ApplyEnv
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvPort        = "AUTORESUME_PORT"
	EnvLexicon     = "AUTORESUME_LEXICON"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Template string `json:"template,omitempty" yaml:"template,omitempty"` // Path to LaTeX template
	Lexicon  string `json:"lexicon,omitempty" yaml:"lexicon,omitempty"`   // Path to a custom lexicon table file

	// Output
	Format              string `json:"format,omitempty" yaml:"format,omitempty"`                               // json, tex, html or pdf
	MaxXyzBullets       int    `json:"max_xyz_bullets,omitempty" yaml:"max_xyz_bullets,omitempty"`             // Bullets per project/extracurricular
	PrintTimeoutSeconds int    `json:"print_timeout_seconds,omitempty" yaml:"print_timeout_seconds,omitempty"` // Headless Chrome timeout

	// Checks
	TabooPhrases []string `json:"taboo_phrases,omitempty" yaml:"taboo_phrases,omitempty"` // Phrases reported by lint and build
	Strict       bool     `json:"strict,omitempty" yaml:"strict,omitempty"`               // Treat validation issues as errors

	// Server
	Port        int    `json:"port,omitempty" yaml:"port,omitempty"`                 // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url,omitempty"` // PostgreSQL connection URL

	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Debug logging
}

// Defaults returns the built-in configuration values
func Defaults() Config {
	return Config{
		Format:              FormatJSON,
		MaxXyzBullets:       2,
		PrintTimeoutSeconds: 30,
		Port:                8080,
	}
}

// LoadConfig loads configuration from a .json, .yaml or .yml file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// ApplyEnv fills empty fields from the environment. Call after godotenv has
// loaded any .env file.
func (c *Config) ApplyEnv() error {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv(EnvDatabaseURL)
	}
	if c.Lexicon == "" {
		c.Lexicon = os.Getenv(EnvLexicon)
	}
	if c.Port == 0 {
		if raw := os.Getenv(EnvPort); raw != "" {
			port, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("config error: %s must be a number, got %q", EnvPort, raw)
			}
			c.Port = port
		}
	}
	return nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.Format {
	case "", FormatJSON, FormatLaTeX, FormatHTML, FormatPDF:
	default:
		return fmt.Errorf("config error: 'format' must be one of json, tex, html, pdf (got %q)", c.Format)
	}

	// Validate numeric ranges
	if c.MaxXyzBullets < 0 || c.MaxXyzBullets > 4 {
		return fmt.Errorf("config error: 'max_xyz_bullets' must be between 0 and 4")
	}
	if c.PrintTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'print_timeout_seconds' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	// Validate file paths exist (if specified)
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	if c.Lexicon != "" {
		if _, err := os.Stat(c.Lexicon); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon file not found: %s", c.Lexicon)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Lexicon == "" {
		result.Lexicon = defaults.Lexicon
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.MaxXyzBullets == 0 {
		result.MaxXyzBullets = defaults.MaxXyzBullets
	}
	if result.PrintTimeoutSeconds == 0 {
		result.PrintTimeoutSeconds = defaults.PrintTimeoutSeconds
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Taboo phrases from both sources, config file first
	if len(defaults.TabooPhrases) > 0 {
		result.TabooPhrases = append(append([]string(nil), c.TabooPhrases...), defaults.TabooPhrases...)
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
