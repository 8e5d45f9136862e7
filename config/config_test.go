package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.World.BaseIRI == "" {
		t.Error("expected a default base IRI")
	}
	if cfg.Play.Prompt != "> " {
		t.Errorf("expected default prompt %q, got %q", "> ", cfg.Play.Prompt)
	}
	if cfg.Export.Format != "turtle" {
		t.Errorf("expected default export format turtle, got %s", cfg.Export.Format)
	}
	if cfg.Export.Debounce <= 0 {
		t.Errorf("expected a positive default debounce, got %v", cfg.Export.Debounce)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: true,
		},
		{
			name:    "missing base IRI",
			modify:  func(c *Config) { c.World.BaseIRI = "" },
			wantErr: true,
		},
		{
			name:    "missing player name",
			modify:  func(c *Config) { c.Play.PlayerName = "" },
			wantErr: true,
		},
		{
			name:    "unknown export format",
			modify:  func(c *Config) { c.Export.Format = "jsonld" },
			wantErr: true,
		},
		{
			name:    "format alias accepted",
			modify:  func(c *Config) { c.Export.Format = "ttl" },
			wantErr: false,
		},
		{
			name:    "zero debounce",
			modify:  func(c *Config) { c.Export.Debounce = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temp file with config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
log_level: debug
world:
  base_iri: "https://example.org/game"
  files:
    - "worlds/*.yaml"
    - "extra/castle.yaml"
play:
  player_name: "Wanderer"
export:
  format: nquads
  debounce: 750ms
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
	if cfg.World.BaseIRI != "https://example.org/game" {
		t.Errorf("expected base IRI https://example.org/game, got %s", cfg.World.BaseIRI)
	}
	if len(cfg.World.Files) != 2 {
		t.Errorf("expected 2 world file patterns, got %d", len(cfg.World.Files))
	}
	if cfg.Play.PlayerName != "Wanderer" {
		t.Errorf("expected player name Wanderer, got %s", cfg.Play.PlayerName)
	}
	// Omitted keys keep their defaults
	if cfg.Play.Prompt != "> " {
		t.Errorf("expected prompt to remain default, got %q", cfg.Play.Prompt)
	}
	if cfg.Export.Format != "nquads" {
		t.Errorf("expected export format nquads, got %s", cfg.Export.Format)
	}
	if cfg.Export.Debounce != 750*time.Millisecond {
		t.Errorf("expected debounce 750ms, got %v", cfg.Export.Debounce)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		LogLevel: "warn",
		World: WorldConfig{
			Files: []string{"override/*.yaml"},
		},
	}

	base.Merge(override)

	if base.LogLevel != "warn" {
		t.Errorf("expected log level warn, got %s", base.LogLevel)
	}
	if len(base.World.Files) != 1 || base.World.Files[0] != "override/*.yaml" {
		t.Errorf("expected overridden world files, got %v", base.World.Files)
	}
	// Base IRI should remain from base since override didn't set it
	if base.World.BaseIRI != DefaultConfig().World.BaseIRI {
		t.Errorf("expected base IRI to remain default, got %s", base.World.BaseIRI)
	}
	if base.Play.PlayerName != "Explorer" {
		t.Errorf("expected player name to remain default, got %s", base.Play.PlayerName)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Play.PlayerName = "Saved"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	// Load and verify
	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Play.PlayerName != "Saved" {
		t.Errorf("expected player name Saved, got %s", loaded.Play.PlayerName)
	}
}
