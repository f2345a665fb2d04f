package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds optional settings loaded from a YAML file. A file value is
// applied only when the corresponding flag still equals its default, so a
// flag set to a non-default value wins. A flag explicitly set to its
// default is indistinguishable from an unset one and the file value is
// used.
type Config struct {
	Timeout         duration `yaml:"timeout"`
	Delay           duration `yaml:"delay"`
	PageDelay       duration `yaml:"page_delay"`
	MaxListingPages int      `yaml:"max_listing_pages"`
	APIKey          string   `yaml:"api_key"`
	Cache           string   `yaml:"cache"`
}

// duration is a time.Duration that unmarshals from YAML strings like "2s".
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = duration(parsed)
	return nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// merge applies config file values onto CLI flags that were left at their
// defaults.
func (cfg *Config) merge(cli *CLI) {
	if cfg.Timeout != 0 && cli.Timeout == 30*time.Second {
		cli.Timeout = time.Duration(cfg.Timeout)
	}
	if cfg.Delay != 0 && cli.Delay == 2*time.Second {
		cli.Delay = time.Duration(cfg.Delay)
	}
	if cfg.PageDelay != 0 && cli.PageDelay == time.Second {
		cli.PageDelay = time.Duration(cfg.PageDelay)
	}
	if cfg.MaxListingPages != 0 && cli.MaxPages == 0 {
		cli.MaxPages = cfg.MaxListingPages
	}
	if cfg.APIKey != "" && cli.APIKey == "" {
		cli.APIKey = cfg.APIKey
	}
	if cfg.Cache != "" && cli.Cache == "" {
		cli.Cache = cfg.Cache
	}
}
