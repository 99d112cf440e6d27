// Package config provides configuration loading for the election atlas.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the complete atlas configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DataConfig describes where the two datasets come from. Exactly one
// results source must be set: a CSV glob, an HTTP URL, or a SQL DSN.
// The boundary dataset is a GeoJSON file path or URL.
type DataConfig struct {
	// ResultsGlob matches per-year result CSV files, e.g.
	// "data/results/tn_*.csv".
	ResultsGlob string `yaml:"results_glob"`
	// ResultsURL fetches one results CSV over HTTP.
	ResultsURL string `yaml:"results_url"`
	// SQLDriver is "postgres" or "sqlite3"; SQLDSN its connection string.
	SQLDriver string `yaml:"sql_driver"`
	SQLDSN    string `yaml:"sql_dsn"`

	// GeoJSONPath or GeoJSONURL locates the boundary dataset.
	GeoJSONPath string `yaml:"geojson_path"`
	GeoJSONURL  string `yaml:"geojson_url"`

	// Watch re-ingests everything when files under the results glob or
	// the boundary path change.
	Watch bool `yaml:"watch"`

	// Strict fails the load on validation violations instead of
	// logging them.
	Strict bool `yaml:"strict"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Data: DataConfig{
			ResultsGlob: "data/results/*.csv",
			GeoJSONPath: "data/boundaries/tn_assembly.geojson",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error; the defaults
// plus environment apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Server.Port)
	}

	sources := 0
	if c.Data.ResultsGlob != "" {
		sources++
	}
	if c.Data.ResultsURL != "" {
		sources++
	}
	if c.Data.SQLDSN != "" {
		sources++
	}
	if sources == 0 {
		return fmt.Errorf("config: no results source configured")
	}
	if sources > 1 {
		return fmt.Errorf("config: multiple results sources configured")
	}
	if c.Data.SQLDSN != "" && c.Data.SQLDriver != "postgres" && c.Data.SQLDriver != "sqlite3" {
		return fmt.Errorf("config: unsupported sql driver %q", c.Data.SQLDriver)
	}
	if c.Data.GeoJSONPath == "" && c.Data.GeoJSONURL == "" {
		return fmt.Errorf("config: no boundary source configured")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}

// applyEnv overrides file values with ATLAS_* environment variables.
func (c *Config) applyEnv() {
	c.Server.Host = GetEnv("ATLAS_HOST", c.Server.Host)
	c.Server.Port = GetEnvInt("ATLAS_PORT", c.Server.Port)
	// Pointing the environment at a different results source replaces
	// the configured one rather than conflicting with it.
	if v := GetEnv("ATLAS_RESULTS_GLOB", ""); v != "" {
		c.Data.ResultsGlob, c.Data.ResultsURL, c.Data.SQLDSN = v, "", ""
	}
	if v := GetEnv("ATLAS_RESULTS_URL", ""); v != "" {
		c.Data.ResultsURL, c.Data.ResultsGlob, c.Data.SQLDSN = v, "", ""
	}
	if v := GetEnv("ATLAS_SQL_DSN", ""); v != "" {
		c.Data.SQLDSN, c.Data.ResultsGlob, c.Data.ResultsURL = v, "", ""
	}
	c.Data.SQLDriver = GetEnv("ATLAS_SQL_DRIVER", c.Data.SQLDriver)
	c.Data.GeoJSONPath = GetEnv("ATLAS_GEOJSON_PATH", c.Data.GeoJSONPath)
	c.Data.GeoJSONURL = GetEnv("ATLAS_GEOJSON_URL", c.Data.GeoJSONURL)
	c.Data.Watch = GetEnvBool("ATLAS_WATCH", c.Data.Watch)
	c.Data.Strict = GetEnvBool("ATLAS_STRICT", c.Data.Strict)
	c.Log.Level = GetEnv("ATLAS_LOG_LEVEL", c.Log.Level)
}
