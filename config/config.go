package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Game holds the board generation settings.
type Game struct {
	SeedCount   int     `yaml:"seed_count"`   // number of territories
	RegionShape string  `yaml:"region_shape"` // "square" or "disc"
	RandomSeed  *uint64 `yaml:"random_seed"`  // nil means time-seeded
}

// Config holds all launcher configuration.
type Config struct {
	Game     Game   `yaml:"game"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Game: Game{
			SeedCount:   24,
			RegionShape: "square",
		},
		LogLevel: "info",
	}
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not provided
	if cfg.Game.SeedCount == 0 {
		cfg.Game.SeedCount = 24
	}
	if cfg.Game.RegionShape == "" {
		cfg.Game.RegionShape = "square"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
