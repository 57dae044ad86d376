// Package config loads runtime settings from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the retrieval and storage settings.
type Config struct {
	// Contact is the email or URL embedded in the SEC User-Agent
	// header, required by the fair-access policy.
	Contact string `yaml:"contact"`

	// CleanHTML strips presentational markup from retrieved filings.
	CleanHTML bool `yaml:"clean_html"`

	// CacheDir holds downloaded documents; empty disables caching.
	CacheDir string `yaml:"cache_dir"`

	// FormTypes restricts which filings are retrieved. Empty means
	// every supported form.
	FormTypes []string `yaml:"form_types"`

	// DatabaseURL enables persistence when set.
	DatabaseURL string `yaml:"database_url"`

	// RequestsPerSecond caps the EDGAR request rate. Zero uses the
	// SEC fair-access default of 10.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// Load reads the config file at path. A missing file yields the zero
// config rather than an error, so a bare environment still works.
// DATABASE_URL and EDGAR_CONTACT environment variables override the
// file's values.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("EDGAR_CONTACT"); v != "" {
		cfg.Contact = v
	}
	return cfg, nil
}
