package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "indexer.yaml"

type Config struct {
	Log     LogConfig     `yaml:"log"`
	Extract ExtractConfig `yaml:"extract"`
	Rank    RankConfig    `yaml:"rank"`
	Serve   ServeConfig   `yaml:"serve"`
}

type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

type ExtractConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Cache    string   `yaml:"cache"` // SQLite file caching extracted text, disabled when empty
}

type RankConfig struct {
	Top int `yaml:"top"`
}

type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Extract: ExtractConfig{
			Includes: []string{"*"},
			Excludes: []string{".*"},
		},
		Rank: RankConfig{
			Top: 10,
		},
		Serve: ServeConfig{
			Addr: "127.0.0.1:6969",
		},
	}
}

// Load loads configuration from a YAML file, then applies the INDEXER_* environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config.Load: cannot read `%s`: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config.Load: cannot parse `%s`: %w", path, err)
		}
	}

	if level := os.Getenv("INDEXER_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if cache, ok := os.LookupEnv("INDEXER_CACHE"); ok {
		cfg.Extract.Cache = cache
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Rank.Top < 0 {
		return fmt.Errorf("config: rank.top must not be negative, got %d", c.Rank.Top)
	}
	if c.Serve.Addr == "" {
		return fmt.Errorf("config: serve.addr must not be empty")
	}
	return nil
}
