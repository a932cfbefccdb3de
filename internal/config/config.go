// Package config loads CLI and server settings from the environment. Flags
// parsed by the command override these values.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds process level settings.
type Config struct {
	Addr         string `env:"FEATUREGRID_ADDR" envDefault:"localhost:8088"`
	Renderer     string `env:"FEATUREGRID_RENDERER" envDefault:"html"`
	FeaturesFile string `env:"FEATUREGRID_FEATURES_FILE"`
	ThemeFile    string `env:"FEATUREGRID_THEME_FILE"`
	Theme        string `env:"FEATUREGRID_THEME"`
	ThemeVariant string `env:"FEATUREGRID_THEME_VARIANT"`
	AssetPrefix  string `env:"FEATUREGRID_ASSET_PREFIX" envDefault:"/assets"`
	HeadingLevel int    `env:"FEATUREGRID_HEADING_LEVEL" envDefault:"3"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the supplied key/value map instead of the process
// environment.
func LoadFrom(environment map[string]string) (Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.Addr = strings.TrimSpace(c.Addr)
	c.Renderer = strings.TrimSpace(c.Renderer)
	c.FeaturesFile = strings.TrimSpace(c.FeaturesFile)
	c.ThemeFile = strings.TrimSpace(c.ThemeFile)
	c.Theme = strings.TrimSpace(c.Theme)
	c.ThemeVariant = strings.TrimSpace(c.ThemeVariant)
	c.AssetPrefix = "/" + strings.Trim(strings.TrimSpace(c.AssetPrefix), "/")
	if c.AssetPrefix == "/" {
		c.AssetPrefix = "/assets"
	}
}
