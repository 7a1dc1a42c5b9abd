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

	// Task board
	Board     BoardConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BoardConfig controls the per-session boards and the defaults applied to
// new tasks.
type BoardConfig struct {
	Timezone        string
	SessionTTL      time.Duration
	MaxSessions     int
	DefaultCategory string
	DefaultPriority string
}

type RateLimitConfig struct {
	RequestsPerMin int
	MaxClients     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Board
	cfg.Board.Timezone = v.GetString("board.timezone")
	cfg.Board.SessionTTL = v.GetDuration("board.session_ttl")
	cfg.Board.MaxSessions = v.GetInt("board.max_sessions")
	cfg.Board.DefaultCategory = v.GetString("board.default_category")
	cfg.Board.DefaultPriority = v.GetString("board.default_priority")

	// Rate limit
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid http_server.port: %d", cfg.HTTPServer.Port)
	}
	if cfg.Board.SessionTTL < 0 {
		return fmt.Errorf("invalid board.session_ttl: %s", cfg.Board.SessionTTL)
	}
	if cfg.Board.MaxSessions < 0 {
		return fmt.Errorf("invalid board.max_sessions: %d", cfg.Board.MaxSessions)
	}
	if cfg.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("invalid rate_limit.requests_per_min: %d", cfg.RateLimit.RequestsPerMin)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("board.timezone", "UTC")
	v.SetDefault("board.session_ttl", "2h")
	v.SetDefault("board.max_sessions", 1000)
	v.SetDefault("board.default_category", "General")
	v.SetDefault("board.default_priority", "Medium")

	v.SetDefault("rate_limit.requests_per_min", 120)
	v.SetDefault("rate_limit.max_clients", 10000)
}
