package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the client configuration, read from a YAML file under the user
// config directory.
type Config struct {
	StoragePath      string        `yaml:"storage_path"`
	LogPath          string        `yaml:"log_path"`
	LogLevel         string        `yaml:"log_level"`
	Theme            string        `yaml:"theme"`
	DraftCommitDelay time.Duration `yaml:"draft_commit_delay"`
	SaveDelay        time.Duration `yaml:"save_delay"`
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "dayora")
}

func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yml")
}

func DefaultStoragePath() string {
	return filepath.Join(configDir(), "dayora.db")
}

func DefaultLogPath() string {
	return filepath.Join(configDir(), "dayora.log")
}

func defaults() *Config {
	return &Config{
		StoragePath:      DefaultStoragePath(),
		LogPath:          DefaultLogPath(),
		LogLevel:         "info",
		Theme:            "dark",
		DraftCommitDelay: 200 * time.Millisecond,
		SaveDelay:        300 * time.Millisecond,
	}
}

// Load reads the config at path, falling back to defaults when the file
// does not exist. Unset fields keep their defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.StoragePath == "" {
		cfg.StoragePath = DefaultStoragePath()
	}
	if cfg.LogPath == "" {
		cfg.LogPath = DefaultLogPath()
	}
	if cfg.DraftCommitDelay <= 0 {
		cfg.DraftCommitDelay = 200 * time.Millisecond
	}
	if cfg.SaveDelay <= 0 {
		cfg.SaveDelay = 300 * time.Millisecond
	}

	if cfg.StoragePath[0] == '~' {
		home, _ := os.UserHomeDir()
		cfg.StoragePath = filepath.Join(home, cfg.StoragePath[1:])
	}

	return cfg, nil
}

// Save writes the config, creating its directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
