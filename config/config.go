// Package config provides configuration loading and management for Semworld.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semworld/rdf"
	"github.com/c360studio/semworld/world"
)

// Config represents the complete Semworld configuration
type Config struct {
	// LogLevel is the minimum log level: debug, info, warn, or error
	LogLevel string       `yaml:"log_level"`
	World    WorldConfig  `yaml:"world"`
	Play     PlayConfig   `yaml:"play"`
	Export   ExportConfig `yaml:"export"`
}

// WorldConfig configures where world definitions come from
type WorldConfig struct {
	// BaseIRI is the prefix all minted entity IRIs share
	BaseIRI string `yaml:"base_iri"`
	// Files are glob patterns naming world definition files
	Files []string `yaml:"files"`
}

// PlayConfig configures the interactive session
type PlayConfig struct {
	// PlayerName names the player created when the world declares none
	PlayerName string `yaml:"player_name"`
	// Prompt is printed before each read of player input
	Prompt string `yaml:"prompt"`
}

// ExportConfig configures graph export
type ExportConfig struct {
	// Format is the serialization format: turtle, ntriples, nquads, or trig
	Format string `yaml:"format"`
	// Output is the file to write (empty = stdout)
	Output string `yaml:"output"`
	// Debounce is how long the watcher coalesces file changes
	Debounce time.Duration `yaml:"debounce"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		World: WorldConfig{
			BaseIRI: world.DefaultBaseIRI,
			Files:   nil,
		},
		Play: PlayConfig{
			PlayerName: "Explorer",
			Prompt:     "> ",
		},
		Export: ExportConfig{
			Format:   string(rdf.FormatTurtle),
			Output:   "",
			Debounce: world.DefaultDebounce,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error")
	}
	if c.World.BaseIRI == "" {
		return fmt.Errorf("world.base_iri is required")
	}
	if c.Play.PlayerName == "" {
		return fmt.Errorf("play.player_name is required")
	}
	if _, err := rdf.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}
	if c.Export.Debounce <= 0 {
		return fmt.Errorf("export.debounce must be positive")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}

	// World
	if other.World.BaseIRI != "" {
		c.World.BaseIRI = other.World.BaseIRI
	}
	if len(other.World.Files) > 0 {
		c.World.Files = other.World.Files
	}

	// Play
	if other.Play.PlayerName != "" {
		c.Play.PlayerName = other.Play.PlayerName
	}
	if other.Play.Prompt != "" {
		c.Play.Prompt = other.Play.Prompt
	}

	// Export
	if other.Export.Format != "" {
		c.Export.Format = other.Export.Format
	}
	if other.Export.Output != "" {
		c.Export.Output = other.Export.Output
	}
	if other.Export.Debounce != 0 {
		c.Export.Debounce = other.Export.Debounce
	}
}
