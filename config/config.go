package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Dashboard specifics
	Session      SessionConfig
	Upload       UploadConfig
	Schedule     ScheduleConfig
	Zone         ZoneConfig
	Auth         AuthConfig
	GoogleSheets GoogleSheetsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SessionConfig controls the lifetime of one uploaded table per browser session.
type SessionConfig struct {
	TTL             time.Duration
	CleanupInterval time.Duration
	CookieName      string
	HeaderName      string
}

type UploadConfig struct {
	MaxBytes        int64
	RateLimitPerMin int
	DefaultSheet    string
	SkipRows        int
}

type ScheduleConfig struct {
	Timezone           string
	UpcomingWindowDays int
	CurveStepDays      int
}

type ZoneConfig struct {
	KeywordFile string // optional YAML file replacing the built-in keyword table
}

// AuthConfig describes the upstream identity proxy. The service never checks credentials itself.
type AuthConfig struct {
	Required       bool
	IdentityHeader string
}

type GoogleSheetsConfig struct {
	CredentialsPath string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Session
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.CleanupInterval = viper.GetDuration("session.cleanup_interval")
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.HeaderName = viper.GetString("session.header_name")

	// Upload
	cfg.Upload.MaxBytes = viper.GetInt64("upload.max_bytes")
	cfg.Upload.RateLimitPerMin = viper.GetInt("upload.rate_limit_per_min")
	cfg.Upload.DefaultSheet = viper.GetString("upload.default_sheet")
	cfg.Upload.SkipRows = viper.GetInt("upload.skip_rows")

	// Schedule
	cfg.Schedule.Timezone = viper.GetString("schedule.timezone")
	cfg.Schedule.UpcomingWindowDays = viper.GetInt("schedule.upcoming_window_days")
	cfg.Schedule.CurveStepDays = viper.GetInt("schedule.curve_step_days")

	cfg.Zone.KeywordFile = viper.GetString("zone.keyword_file")

	cfg.Auth.Required = viper.GetBool("auth.required")
	cfg.Auth.IdentityHeader = viper.GetString("auth.identity_header")

	cfg.GoogleSheets.CredentialsPath = viper.GetString("google_sheets.credentials_path")
	if creds := viper.GetString("google_sheets_credentials"); creds != "" {
		cfg.GoogleSheets.CredentialsPath = creds
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("session.ttl", "2h")
	viper.SetDefault("session.cleanup_interval", "10m")
	viper.SetDefault("session.cookie_name", "pm_session")
	viper.SetDefault("session.header_name", "X-Session-ID")

	viper.SetDefault("upload.max_bytes", 20<<20)
	viper.SetDefault("upload.rate_limit_per_min", 30)

	viper.SetDefault("schedule.timezone", "Asia/Jakarta")
	viper.SetDefault("schedule.upcoming_window_days", 7)
	viper.SetDefault("schedule.curve_step_days", 7)

	viper.SetDefault("auth.required", false)
	viper.SetDefault("auth.identity_header", "X-Forwarded-User")
}

// validate checks values that would otherwise fail late at request time.
func validate(cfg *Config) error {
	if cfg.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	if cfg.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload.max_bytes must be positive")
	}
	if cfg.Upload.SkipRows < 0 {
		return fmt.Errorf("upload.skip_rows must not be negative")
	}
	if cfg.Schedule.CurveStepDays <= 0 {
		return fmt.Errorf("schedule.curve_step_days must be positive")
	}
	if cfg.Schedule.UpcomingWindowDays < 0 {
		return fmt.Errorf("schedule.upcoming_window_days must not be negative")
	}
	if cfg.Auth.Required && cfg.Auth.IdentityHeader == "" {
		return fmt.Errorf("auth.identity_header is required when auth.required is set")
	}
	return nil
}
