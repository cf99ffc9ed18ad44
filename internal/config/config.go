package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the application configuration
type Config struct {
	Resize   ResizeConfig   `json:"resize"`
	Move     MoveConfig     `json:"move"`
	Manifest ManifestConfig `json:"manifest"`
	Labeler  LabelerConfig  `json:"labeler"`
	Logging  LoggingConfig  `json:"logging"`
}

// ResizeConfig holds defaults for the resize operation
type ResizeConfig struct {
	Quality  int    `json:"quality"`
	Resample string `json:"resample"`
	Format   string `json:"format"`
	Lossless bool   `json:"lossless"`
}

// MoveConfig holds defaults for the move operation
type MoveConfig struct {
	OnCollision string `json:"on_collision"`
}

// ManifestConfig holds defaults for manifest generation
type ManifestConfig struct {
	Columns []string `json:"columns"`
}

// LabelerConfig holds the vision model connection settings
type LabelerConfig struct {
	URL         string `json:"url"`
	Model       string `json:"model"`
	MaxSendSize int    `json:"max_send_size"`
	SendQuality int    `json:"send_quality"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Resize: ResizeConfig{
			Quality:  90,
			Resample: "lanczos",
		},
		Move: MoveConfig{
			OnCollision: "skip",
		},
		Manifest: ManifestConfig{
			Columns: []string{"filename"},
		},
		Labeler: LabelerConfig{
			URL:         "http://localhost:11434",
			Model:       "openbmb/minicpm-v4.5",
			MaxSendSize: 1536,
			SendQuality: 85,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Resize.Quality < 1 || c.Resize.Quality > 100 {
		return fmt.Errorf("resize.quality must be between 1 and 100")
	}

	switch c.Resize.Resample {
	case "", "lanczos", "linear", "box", "nearest":
	default:
		return fmt.Errorf("resize.resample must be one of lanczos, linear, box, nearest")
	}

	switch c.Resize.Format {
	case "", "jpg", "jpeg", "png", "webp":
	default:
		return fmt.Errorf("resize.format must be one of jpg, jpeg, png, webp")
	}

	switch c.Move.OnCollision {
	case "", "skip", "overwrite":
	default:
		return fmt.Errorf("move.on_collision must be skip or overwrite")
	}

	if len(c.Manifest.Columns) == 0 {
		return fmt.Errorf("manifest.columns cannot be empty")
	}

	if c.Labeler.SendQuality < 1 || c.Labeler.SendQuality > 100 {
		return fmt.Errorf("labeler.send_quality must be between 1 and 100")
	}

	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "dataprep", "config.json")
}
