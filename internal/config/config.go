package config

import (
	"fmt"
	"os"

	"github.com/harrison/lgrep/internal/display"
	"github.com/harrison/lgrep/internal/logger"
	"github.com/harrison/lgrep/internal/matcher"
	"github.com/harrison/lgrep/internal/scanner"
	"gopkg.in/yaml.v3"
)

// Config represents lgrep configuration options
type Config struct {
	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Encoding is the input encoding name (utf-8, latin1, utf-16, ...)
	Encoding string `yaml:"encoding"`

	// Mode selects how the pattern is interpreted (regex, literal)
	Mode string `yaml:"mode"`

	// Color controls result highlighting (auto, always, never)
	Color string `yaml:"color"`

	// Recursive enables recursive directory descent during glob resolution
	Recursive bool `yaml:"recursive"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "warn",
		Encoding:  "utf-8",
		Mode:      "regex",
		Color:     "auto",
		Recursive: false,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointers distinguish "absent" from zero values so only keys present in
	// the file override defaults.
	type yamlConfig struct {
		LogLevel  *string `yaml:"log_level"`
		Encoding  *string `yaml:"encoding"`
		Mode      *string `yaml:"mode"`
		Color     *string `yaml:"color"`
		Recursive *bool   `yaml:"recursive"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != nil {
		cfg.LogLevel = *yamlCfg.LogLevel
	}
	if yamlCfg.Encoding != nil {
		cfg.Encoding = *yamlCfg.Encoding
	}
	if yamlCfg.Mode != nil {
		cfg.Mode = *yamlCfg.Mode
	}
	if yamlCfg.Color != nil {
		cfg.Color = *yamlCfg.Color
	}
	if yamlCfg.Recursive != nil {
		cfg.Recursive = *yamlCfg.Recursive
	}

	return cfg, nil
}

// LoadRequiredConfig is LoadConfig for a file the user named explicitly:
// a missing file is an error instead of a fallback to defaults.
func LoadRequiredConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	return LoadConfig(path)
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(logLevel, encoding, mode, color *string, recursive *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if encoding != nil {
		c.Encoding = *encoding
	}
	if mode != nil {
		c.Mode = *mode
	}
	if color != nil {
		c.Color = *color
	}
	if recursive != nil {
		c.Recursive = *recursive
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if _, err := matcher.ParseMode(c.Mode); err != nil {
		return err
	}

	if _, err := display.ParseColorMode(c.Color); err != nil {
		return err
	}

	if _, err := scanner.LookupEncoding(c.Encoding); err != nil {
		return fmt.Errorf("invalid encoding: %w", err)
	}

	return nil
}
