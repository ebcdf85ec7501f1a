package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdem-analyzer/internal/util"
)

// Config provides configuration for the hand analyzer
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Players struct {
		Min int `yaml:"min" envconfig:"min"`
		Max int `yaml:"max" envconfig:"max"`
	} `yaml:"players"`
	ConcurrentEvaluation bool `yaml:"concurrentEvaluation" envconfig:"concurrent_evaluation"`
	CORS                 struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var cfg Config
	cfg.Addr = ":5000"
	cfg.Log.Level = "info"
	cfg.Players.Min = 2
	cfg.Players.Max = 8
	cfg.ConcurrentEvaluation = true
	cfg.CORS.AllowedOrigins = []string{"*"}

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

// Load will load the configuration
// The file named by HA_CONFIG_FILE (default: config.yaml) is optional. Environment
// variables prefixed with HA_ override anything in the file.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HA_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("ha", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate checks that the player limits make sense
func (c Config) Validate() error {
	if c.Players.Min < 2 {
		return fmt.Errorf("players.min must be at least 2, got %d", c.Players.Min)
	}

	if c.Players.Max < c.Players.Min {
		return fmt.Errorf("players.max (%d) cannot be less than players.min (%d)", c.Players.Max, c.Players.Min)
	}

	// 2 hole cards each plus a five card board must fit in one deck
	if c.Players.Max*2+5 > 52 {
		return fmt.Errorf("players.max cannot be greater than 23, got %d", c.Players.Max)
	}

	return nil
}
