// Package config loads CLI settings from an optional config file and
// LEVELUP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName   = "levelup"
	configFormat = "yaml"
)

type Config struct {
	// Username selects the local profile. Defaults to the OS user.
	Username string `mapstructure:"username"`
	// DBPath overrides the database location.
	DBPath string `mapstructure:"db_path"`
	// MirrorURL is the optional best-effort sync endpoint. Empty
	// disables mirroring.
	MirrorURL string `mapstructure:"mirror_url"`
	// QuoteURL overrides the daily quote endpoint.
	QuoteURL string `mapstructure:"quote_url"`
	LogLevel string `mapstructure:"log_level"`
}

// Load reads ~/.config/levelup/levelup.yaml if present, then applies
// LEVELUP_* environment overrides. A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configFormat)
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "levelup"))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("LEVELUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Register every key so AutomaticEnv values survive Unmarshal.
	v.SetDefault("username", "")
	v.SetDefault("db_path", "")
	v.SetDefault("mirror_url", "")
	v.SetDefault("quote_url", "")
	v.SetDefault("log_level", "warn")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Username == "" {
		cfg.Username = defaultUsername()
	}
	return &cfg, nil
}

func defaultUsername() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	if u := os.Getenv("USERNAME"); u != "" {
		return u
	}
	return "player"
}
