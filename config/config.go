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

	// Life Admin API
	Backend        BackendConfig
	Gemini         GeminiConfig
	GoogleCalendar GoogleCalendarConfig
	Timeline       TimelineConfig
	Documents      DocumentsConfig

	// Record store
	Postgres PostgresConfig
	Auth     AuthConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port         int
	Mode         string
	AllowOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendConfig points the API at the record store.
// When AccessToken is empty the API logs in with Username/Password at startup.
type BackendConfig struct {
	URL         string
	AccessToken string
	Username    string
	Password    string
	Timeout     time.Duration
}

type GeminiConfig struct {
	APIKey             string
	Model              string
	APIURL             string
	RequestsPerMin     int
	ChecklistCacheSize int
	ChecklistCacheTTL  time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// TimelineConfig sets the location "today" is computed in.
type TimelineConfig struct {
	Timezone string
}

type DocumentsConfig struct {
	MaxSizeBytes int
}

type PostgresConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	Issuer    string
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
	cfg.HTTPServer.AllowOrigins = viper.GetStringSlice("http_server.allow_origins")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Record store client
	cfg.Backend.URL = viper.GetString("backend.url")
	cfg.Backend.AccessToken = viper.GetString("backend.access_token")
	cfg.Backend.Username = viper.GetString("backend.username")
	cfg.Backend.Password = viper.GetString("backend.password")
	cfg.Backend.Timeout = viper.GetDuration("backend.timeout")
	if apiBaseURL := viper.GetString("api_base_url"); apiBaseURL != "" {
		cfg.Backend.URL = apiBaseURL
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.RequestsPerMin = viper.GetInt("gemini.requests_per_min")
	cfg.Gemini.ChecklistCacheSize = viper.GetInt("gemini.checklist_cache_size")
	cfg.Gemini.ChecklistCacheTTL = viper.GetDuration("gemini.checklist_cache_ttl")
	if apiKey := viper.GetString("gemini_api_key"); apiKey != "" {
		cfg.Gemini.APIKey = apiKey
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Timeline.Timezone = viper.GetString("timeline.timezone")
	cfg.Documents.MaxSizeBytes = viper.GetInt("documents.max_size_bytes")

	// Record store
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	if databaseURL := viper.GetString("database_url"); databaseURL != "" {
		cfg.Postgres.DSN = databaseURL
	}

	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	cfg.Auth.TokenTTL = viper.GetDuration("auth.token_ttl")
	cfg.Auth.Issuer = viper.GetString("auth.issuer")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}

	return cfg, nil
}

// ValidateAPI checks the settings cmd/api cannot run without.
func (c *Config) ValidateAPI() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}
	if c.Backend.AccessToken == "" && (c.Backend.Username == "" || c.Backend.Password == "") {
		return fmt.Errorf("backend.access_token or backend.username/backend.password is required")
	}
	if c.Gemini.RequestsPerMin <= 0 {
		return fmt.Errorf("gemini.requests_per_min must be positive")
	}
	if c.Documents.MaxSizeBytes <= 0 {
		return fmt.Errorf("documents.max_size_bytes must be positive")
	}
	return nil
}

// ValidateBackend checks the settings cmd/backend cannot run without.
func (c *Config) ValidateBackend() error {
	if c.Postgres.DSN == "" {
		return fmt.Errorf("postgres.dsn is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 bytes")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.allow_origins", []string{"*"})
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("backend.url", "http://localhost:8000")
	viper.SetDefault("backend.timeout", "15s")

	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.api_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("gemini.requests_per_min", 30)
	viper.SetDefault("gemini.checklist_cache_size", 256)
	viper.SetDefault("gemini.checklist_cache_ttl", "24h")

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")

	viper.SetDefault("timeline.timezone", "Asia/Dubai")
	viper.SetDefault("documents.max_size_bytes", 500*1024)

	viper.SetDefault("postgres.max_open_conns", 10)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("auth.token_ttl", "168h")
	viper.SetDefault("auth.issuer", "life-admin")
}
