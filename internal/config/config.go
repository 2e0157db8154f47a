package config

import (
	"fmt"
	neturl "net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort              = 3000
	defaultEnv               = "development"
	defaultDBHost            = "127.0.0.1"
	defaultDBPort            = 3306
	defaultDBUser            = "root"
	defaultDBPassword        = "password"
	defaultDBName            = "portfolio"
	defaultDBCharset         = "utf8mb4"
	defaultDBLoc             = "Local"
	defaultUploadDir         = "uploads"
	defaultGeoAPIBase        = "https://ipapi.co"
	defaultFallbackCountry   = "Unknown"
	defaultDevPlaceholderIP  = "8.8.8.8"
	defaultSweepInterval     = time.Hour
	defaultSweepMaxAge       = time.Hour
	envPrefix                = "FOLIO_"
)

// Load reads the YAML config file at path, applies FOLIO_* environment
// overrides, and fills defaults. A missing file is not an error; defaults and
// environment alone make a runnable development config.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to defaults
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v, ok := envInt("PORT"); ok {
		cfg.Port = v
	}
	if v, ok := envStr("ENV"); ok {
		cfg.Env = v
	}
	if v, ok := envStr("DB_DSN"); ok {
		cfg.Database.DSN = v
	}
	if v, ok := envStr("DB_HOST"); ok {
		cfg.Database.Host = v
	}
	if v, ok := envInt("DB_PORT"); ok {
		cfg.Database.Port = v
	}
	if v, ok := envStr("DB_USER"); ok {
		cfg.Database.User = v
	}
	if v, ok := envStr("DB_PASSWORD"); ok {
		cfg.Database.Password = v
	}
	if v, ok := envStr("DB_NAME"); ok {
		cfg.Database.Name = v
	}
	if v, ok := envStr("UPLOAD_DIR"); ok {
		cfg.Upload.Dir = v
	}
	if v, ok := envStr("GEO_API_BASE"); ok {
		cfg.Analytics.GeoAPIBase = v
	}
	if v, ok := envStr("FALLBACK_COUNTRY"); ok {
		cfg.Analytics.FallbackCountry = v
	}
	if v, ok := envStr("ALLOWED_ORIGINS"); ok {
		cfg.AllowedOrigins = splitList(v)
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = defaultEnv
	}
	if strings.TrimSpace(cfg.Upload.Dir) == "" {
		cfg.Upload.Dir = defaultUploadDir
	}
	if strings.TrimSpace(cfg.Analytics.GeoAPIBase) == "" {
		cfg.Analytics.GeoAPIBase = defaultGeoAPIBase
	}
	if strings.TrimSpace(cfg.Analytics.FallbackCountry) == "" {
		cfg.Analytics.FallbackCountry = defaultFallbackCountry
	}
	if strings.TrimSpace(cfg.Analytics.DevPlaceholderIP) == "" {
		cfg.Analytics.DevPlaceholderIP = defaultDevPlaceholderIP
	}
	if cfg.Sweep.Interval <= 0 {
		cfg.Sweep.Interval = defaultSweepInterval
	}
	if cfg.Sweep.MaxAge <= 0 {
		cfg.Sweep.MaxAge = defaultSweepMaxAge
	}
}

// DSNValue returns the configured DSN, assembling one from individual fields
// when no full DSN is given.
func (c DatabaseConfig) DSNValue() string {
	if v := strings.TrimSpace(c.DSN); v != "" {
		return v
	}

	host := strings.TrimSpace(c.Host)
	if host == "" {
		host = defaultDBHost
	}
	port := c.Port
	if port == 0 {
		port = defaultDBPort
	}
	user := strings.TrimSpace(c.User)
	if user == "" {
		user = defaultDBUser
	}
	password := c.Password
	if password == "" {
		password = defaultDBPassword
	}
	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = defaultDBName
	}
	charset := strings.TrimSpace(c.Charset)
	if charset == "" {
		charset = defaultDBCharset
	}
	loc := strings.TrimSpace(c.Loc)
	if loc == "" {
		loc = defaultDBLoc
	}

	params := neturl.Values{}
	params.Set("charset", charset)
	params.Set("parseTime", "True")
	params.Set("loc", loc)

	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", user, password, host, port, name, params.Encode())
}

func envStr(name string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(envPrefix + name))
	return v, v != ""
}

func envInt(name string) (int, bool) {
	raw, ok := envStr(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
