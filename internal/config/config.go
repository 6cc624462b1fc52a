package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all gateway configuration.
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Session SessionConfig
	Redis   RedisConfig
	Notify  NotifyConfig
	CORS    CORSConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// BackendConfig points at the IntelliDocs API origin.
type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SessionConfig holds session store and cookie settings.
type SessionConfig struct {
	Store        string        `mapstructure:"store"`
	Secret       string        `mapstructure:"secret"`
	TTL          time.Duration `mapstructure:"ttl"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
}

// RedisConfig holds Redis settings for the shared session store.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// NotifyConfig holds notification polling settings.
type NotifyConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the IDOCS_
// prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("IDOCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8090")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Backend defaults
	v.SetDefault("backend.base_url", "http://localhost:8000")
	v.SetDefault("backend.timeout", "30s")

	// Session defaults
	v.SetDefault("session.store", "memory")
	v.SetDefault("session.secret", "change-me-in-production")
	v.SetDefault("session.ttl", "12h")
	v.SetDefault("session.cookie_secure", false)

	// Redis defaults
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Notification polling defaults
	v.SetDefault("notify.poll_interval", "30s")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":           "IDOCS_SERVER_PORT",
		"server.read_timeout":   "IDOCS_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "IDOCS_SERVER_WRITE_TIMEOUT",
		"server.environment":    "IDOCS_SERVER_ENVIRONMENT",
		"backend.base_url":      "IDOCS_BACKEND_BASE_URL",
		"backend.timeout":       "IDOCS_BACKEND_TIMEOUT",
		"session.store":         "IDOCS_SESSION_STORE",
		"session.secret":        "IDOCS_SESSION_SECRET",
		"session.ttl":           "IDOCS_SESSION_TTL",
		"session.cookie_secure": "IDOCS_SESSION_COOKIE_SECURE",
		"redis.addr":            "IDOCS_REDIS_ADDR",
		"redis.password":        "IDOCS_REDIS_PASSWORD",
		"redis.db":              "IDOCS_REDIS_DB",
		"notify.poll_interval":  "IDOCS_NOTIFY_POLL_INTERVAL",
		"cors.allowed_origins":  "IDOCS_CORS_ALLOWED_ORIGINS",
		"log.level":             "IDOCS_LOG_LEVEL",
		"log.format":            "IDOCS_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if IDOCS_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("IDOCS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Backend = BackendConfig{
		BaseURL: v.GetString("backend.base_url"),
		Timeout: v.GetDuration("backend.timeout"),
	}
	cfg.Session = SessionConfig{
		Store:        v.GetString("session.store"),
		Secret:       v.GetString("session.secret"),
		TTL:          v.GetDuration("session.ttl"),
		CookieSecure: v.GetBool("session.cookie_secure"),
	}
	cfg.Redis = RedisConfig{
		Addr:     v.GetString("redis.addr"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	}
	cfg.Notify = NotifyConfig{
		PollInterval: v.GetDuration("notify.poll_interval"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
