// Package config loads the server configuration from a YAML file and
// the environment.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds everything the server needs at startup. Environment
// variables prefixed with THATSAWRAP_ override the file values. The
// tags carry the full variable names because envconfig prepends the
// nested struct field name when building prefixed keys.
type Config struct {
	Server struct {
		Port        int `yaml:"port" envconfig:"THATSAWRAP_SERVER_PORT"`
		MetricsPort int `yaml:"metrics_port" envconfig:"THATSAWRAP_METRICS_PORT"`
	} `yaml:"server"`
	Pricing struct {
		TaxRate       float64 `yaml:"tax_rate" envconfig:"THATSAWRAP_TAX_RATE"`
		ComboDiscount float64 `yaml:"combo_discount" envconfig:"THATSAWRAP_COMBO_DISCOUNT"`
	} `yaml:"pricing"`
	CustomItemsFile string `yaml:"custom_items_file" envconfig:"THATSAWRAP_CUSTOM_ITEMS_FILE"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.MetricsPort = 9090
	cfg.Pricing.TaxRate = 0.125
	cfg.Pricing.ComboDiscount = 0.95
	cfg.CustomItemsFile = "customitems.json"
	return cfg
}

// Load reads the YAML file at path and applies environment overrides.
// An empty path skips the file and uses the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := envconfig.Process("thatsawrap", cfg); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}
	return cfg, nil
}
