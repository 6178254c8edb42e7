// Package config loads and saves application settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the config file name inside the data directory.
const FileName = "config.json"

// Config holds all application settings. API keys are usually supplied via
// environment variables rather than the file.
type Config struct {
	GeminiAPIKey  string `json:"gemini_api_key,omitempty"`
	YouTubeAPIKey string `json:"youtube_api_key,omitempty"`
	Model         string `json:"model,omitempty"`
	DataDir       string `json:"data_dir,omitempty"`
	Debug         bool   `json:"debug,omitempty"`
}

// DefaultDataDir returns the per-user data directory.
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "chiseled"), nil
}

// Load reads the config file from dataDir and applies environment overrides.
// A missing file yields a config with defaults.
func Load(dataDir string) (*Config, error) {
	cfg := &Config{DataDir: dataDir}

	data, err := os.ReadFile(filepath.Join(dataDir, FileName))
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config as indented JSON. Keys may end up in the file, so
// it is not world-readable.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	path := filepath.Join(c.DataDir, FileName)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides. Environment
// always wins over the file, except GOOGLE_API_KEY which only fills a
// missing Gemini key.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.GeminiAPIKey = key
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" && c.GeminiAPIKey == "" {
		c.GeminiAPIKey = key
	}
	if key := os.Getenv("YOUTUBE_API_KEY"); key != "" {
		c.YouTubeAPIKey = key
	}
	if model := os.Getenv("CHISELED_MODEL"); model != "" {
		c.Model = model
	}
}
