package sched

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml
type Config struct {
	Policy  string `yaml:"policy"`  // FCFS (by default)
	Quantum int    `yaml:"quantum"` // 2 (by default), only read by RR
}

// If the config file is not found, we use default values
func defaultConfig() Config {
	return Config{
		Policy:  KeyFCFS,
		Quantum: 2,
	}
}

// DefaultConfig returns the values used when no config file is given.
func DefaultConfig() Config { return defaultConfig() }

// Load reads YAML and overrides defaults; empty path or missing file = defaults only.
// A quantum left in the file as zero or negative is kept so RR reports it.
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Policy = strings.ToUpper(strings.TrimSpace(cfg.Policy))
	if cfg.Policy == "" {
		cfg.Policy = KeyFCFS
	}

	return cfg, nil
}

// ResolvePolicy resolves the configured policy key in the default registry.
func (c Config) ResolvePolicy() (Policy, error) {
	return Lookup(c.Policy)
}
