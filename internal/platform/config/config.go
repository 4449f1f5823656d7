// Package config loads the daemon configuration: a YAML fleet file listing
// the miners to poll, plus environment overrides for deploy-time settings so
// main stays lean.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Miner is one unit to poll.
type Miner struct {
	ID   string `yaml:"id"`
	Host string `yaml:"host"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	// Model overrides auto-detection when the overview page is unreadable.
	Model string `yaml:"model,omitempty"`
}

// Redis captures snapshot-cache connection settings. An empty URL disables
// the cache and the daemon keeps the latest snapshot in memory only.
type Redis struct {
	URL          string        `yaml:"url"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Config is the full daemon configuration.
type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSigningKey string        `yaml:"jwt_signing_key"`
	PollInterval  time.Duration `yaml:"poll_interval"`
	FetchTimeout  time.Duration `yaml:"fetch_timeout"`
	MaxConcurrent int           `yaml:"max_concurrent"`
	Miners        []Miner       `yaml:"miners"`
	Redis         Redis         `yaml:"redis"`
}

// Defaults applied when the file and environment leave a field unset.
const (
	defaultAddr         = ":8090"
	defaultPollInterval = 30 * time.Second
	defaultFetchTimeout = 30 * time.Second
	defaultConcurrency  = 8
)

// Load reads the YAML fleet file at path (optional; empty path skips it) and
// applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Config{
		Addr:          defaultAddr,
		PollInterval:  defaultPollInterval,
		FetchTimeout:  defaultFetchTimeout,
		MaxConcurrent: defaultConcurrency,
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if v := os.Getenv("CHIPSCOPE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("CHIPSCOPE_JWT_SIGNING_KEY"); v != "" {
		cfg.JWTSigningKey = v
	}
	if v := os.Getenv("CHIPSCOPE_REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}
	if v := os.Getenv("CHIPSCOPE_POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse CHIPSCOPE_POLL_INTERVAL: %w", err)
		}
		cfg.PollInterval = d
	}

	seen := make(map[string]bool, len(cfg.Miners))
	for i, m := range cfg.Miners {
		if m.ID == "" {
			return Config{}, fmt.Errorf("miner %d: id is required", i)
		}
		if seen[m.ID] {
			return Config{}, fmt.Errorf("duplicate miner id %q", m.ID)
		}
		seen[m.ID] = true
	}

	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = defaultConcurrency
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}
	return cfg, nil
}
