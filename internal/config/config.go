package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"fivecarddraw/internal/util"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for dealing a round
type Config struct {
	loaded      bool
	PlayerCount int   `yaml:"playerCount" envconfig:"player_count"`
	Seed        int64 `yaml:"seed" envconfig:"seed"`
	Log         struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
	Output struct {
		Plain bool `yaml:"plain" envconfig:"plain"`
	} `yaml:"output"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		PlayerCount: 4,
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// Values come from the defaults, then the YAML file in FCD_CONFIG_FILE (config.yaml if unset, may be missing),
// then FCD_* environment variables. A .env file in the working directory is read into the environment first.
func Load() error {
	if err := godotenv.Load(util.Getenv("FCD_ENV_FILE", ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not load env file: %w", err)
	}

	cfg := DefaultConfig()

	configFile := util.Getenv("FCD_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("fcd", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate checks the values that can't be checked by decoding
func (c Config) Validate() error {
	if c.PlayerCount < 1 {
		return fmt.Errorf("playerCount must be at least 1, got %d", c.PlayerCount)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", c.Log.Format)
	}

	return nil
}
