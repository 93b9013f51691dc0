package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the application's configuration model. It captures where
// the catalog and scenario fixtures come from and the optional
// metrics listener. The ranking engine itself takes no configuration.
type Config struct {
	Catalog   CatalogConfig   `yaml:"catalog"`
	Scenarios ScenariosConfig `yaml:"scenarios"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type CatalogConfig struct {
	// YAML catalog path. Empty means the built-in seed catalog.
	Path string `yaml:"path"`
	// SQLite catalog path. Takes precedence over Path when set.
	DBPath string `yaml:"dbPath"`
}

type ScenariosConfig struct {
	// YAML scenarios path. Empty means the built-in presets.
	Path string `yaml:"path"`
}

type MetricsConfig struct {
	// Listen address for /metrics, e.g. ":9090". Empty disables it.
	Addr string `yaml:"addr"`
}

// Default returns a sensible default configuration.
func Default() Config {
	return Config{
		Catalog:   CatalogConfig{Path: "", DBPath: ""},
		Scenarios: ScenariosConfig{Path: ""},
		Metrics:   MetricsConfig{Addr: ""},
	}
}

// ResolveEnv fills in config fields from environment variables if not set.
func (c *Config) ResolveEnv() {
	if c.Catalog.Path == "" {
		c.Catalog.Path = os.Getenv("CHANNELRANK_CATALOG")
	}
	if c.Catalog.DBPath == "" {
		c.Catalog.DBPath = os.Getenv("CHANNELRANK_DB")
	}
	if c.Scenarios.Path == "" {
		c.Scenarios.Path = os.Getenv("CHANNELRANK_SCENARIOS")
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = os.Getenv("METRICS_ADDR")
	}
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.ResolveEnv()
	return cfg, nil
}

// LoadOrDefault loads config from path, falling back to defaults when
// the file does not exist.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default()
		cfg.ResolveEnv()
		return cfg, nil
	}
	return cfg, err
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
