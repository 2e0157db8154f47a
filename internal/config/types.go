package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int             `yaml:"port"`
	Env            string          `yaml:"env"` // "development" | "production"
	Database       DatabaseConfig  `yaml:"database"`
	Upload         UploadConfig    `yaml:"upload"`
	Analytics      AnalyticsConfig `yaml:"analytics"`
	Sweep          SweepConfig     `yaml:"sweep"`
	AllowedOrigins []string        `yaml:"allowed_origins"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// DatabaseConfig describes the MySQL connection, either as a full DSN or as
// individual fields assembled by DSNValue.
type DatabaseConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
	Loc      string `yaml:"loc"`
}

// UploadConfig locates the attachment root directory.
type UploadConfig struct {
	Dir string `yaml:"dir"`
}

// AnalyticsConfig tunes the visitor-tracking collaborators.
type AnalyticsConfig struct {
	// GeoAPIBase is the ipapi.co-compatible lookup endpoint.
	GeoAPIBase string `yaml:"geo_api_base"`
	// FallbackCountry labels visits whose lookup failed, and the bucket that
	// NULL/empty countries fold into.
	FallbackCountry string `yaml:"fallback_country"`
	// DevPlaceholderIP replaces loopback caller addresses before lookup so
	// local development still produces resolvable visits.
	DevPlaceholderIP string `yaml:"dev_placeholder_ip"`
}

// SweepConfig tunes the orphaned-attachment reconciliation job. Durations are
// written in Go notation ("30m", "2h").
type SweepConfig struct {
	Interval time.Duration `yaml:"interval"`
	MaxAge   time.Duration `yaml:"max_age"`
}

func (s *SweepConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Interval string `yaml:"interval"`
		MaxAge   string `yaml:"max_age"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Interval != "" {
		d, err := time.ParseDuration(raw.Interval)
		if err != nil {
			return fmt.Errorf("sweep interval: %w", err)
		}
		s.Interval = d
	}
	if raw.MaxAge != "" {
		d, err := time.ParseDuration(raw.MaxAge)
		if err != nil {
			return fmt.Errorf("sweep max_age: %w", err)
		}
		s.MaxAge = d
	}
	return nil
}
