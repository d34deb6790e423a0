// Package config loads app configuration from an optional YAML file and
// ORGANIQ_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Languages the content ships with.
const (
	LangEnglish = "en"
	LangGerman  = "de"
)

// Config holds all configuration for the app.
type Config struct {
	Language string    `mapstructure:"language"`
	Database DBConfig  `mapstructure:"database"`
	Log      LogConfig `mapstructure:"log"`
}

// DBConfig holds database configuration.
type DBConfig struct {
	// Path is the SQLite file path. Empty means the XDG default.
	Path string `mapstructure:"path"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
	// File receives log output, keeping the terminal free for the UI.
	// Empty discards logs.
	File string `mapstructure:"file"`
}

// Load reads configuration from $XDG_CONFIG_HOME/organiq/config.yaml
// (if present) and ORGANIQ_* environment variables. A missing config
// file is fine; everything has a default.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("ORGANIQ")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.Language != LangEnglish && cfg.Language != LangGerman {
		return nil, fmt.Errorf("unsupported language %q", cfg.Language)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("language", LangEnglish)
	v.SetDefault("database.path", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
}

// configDir resolves $XDG_CONFIG_HOME/organiq, falling back to
// ~/.config/organiq.
func configDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "organiq"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "organiq"), nil
}
