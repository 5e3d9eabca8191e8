package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a setting outside its allowed values.
var ErrInvalidConfig = errors.New("invalid config")

// Config defines server configuration.
type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	Activity  ActivityConfig  `yaml:"activity"`
	Transport TransportConfig `yaml:"transport"`
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// StorageConfig selects where the catalog lives.
type StorageConfig struct {
	// Backend is one of memory, csv, json, yaml or sqlite.
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
	// Autoload loads Path at startup when the file exists.
	Autoload bool `yaml:"autoload"`
}

type ActivityConfig struct {
	DBPath string `yaml:"db_path"`
}

type TransportConfig struct {
	// Mode is stdio or http.
	Mode string `yaml:"mode"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// AuthConfig protects the HTTP transport. An empty APIKey disables auth.
type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend:  "json",
			Path:     "catalog.json",
			Autoload: true,
		},
		Activity: ActivityConfig{
			DBPath: ":memory:",
		},
		Transport: TransportConfig{
			Mode: "stdio",
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Log: LogConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("ARTVAULT_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if backend := os.Getenv("ARTVAULT_STORAGE_BACKEND"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if path := os.Getenv("ARTVAULT_STORAGE_PATH"); path != "" {
		cfg.Storage.Path = path
	}
	if v := os.Getenv("ARTVAULT_STORAGE_AUTOLOAD"); v != "" {
		autoload, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ARTVAULT_STORAGE_AUTOLOAD: %w", err)
		}
		cfg.Storage.Autoload = autoload
	}
	if dbPath := os.Getenv("ARTVAULT_ACTIVITY_DB_PATH"); dbPath != "" {
		cfg.Activity.DBPath = dbPath
	}
	if mode := os.Getenv("ARTVAULT_TRANSPORT"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if host := os.Getenv("ARTVAULT_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("ARTVAULT_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ARTVAULT_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if key := os.Getenv("ARTVAULT_API_KEY"); key != "" {
		cfg.Auth.APIKey = key
	}
	if level := os.Getenv("ARTVAULT_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("ARTVAULT_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if v := os.Getenv("ARTVAULT_METRICS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ARTVAULT_METRICS_ENABLED: %w", err)
		}
		cfg.Metrics.Enabled = enabled
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case "memory", "csv", "json", "yaml", "sqlite":
	default:
		return fmt.Errorf("%w: storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}
	if c.Storage.Backend != "memory" && c.Storage.Path == "" {
		return fmt.Errorf("%w: storage path is required for the %s backend", ErrInvalidConfig, c.Storage.Backend)
	}
	switch c.Transport.Mode {
	case "stdio", "http":
	default:
		return fmt.Errorf("%w: transport mode %q", ErrInvalidConfig, c.Transport.Mode)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d", ErrInvalidConfig, c.Server.Port)
	}
	if c.Transport.Mode == "http" && c.Auth.APIKey == "" && !isLoopback(c.Server.Host) {
		return fmt.Errorf("%w: http transport on %q requires auth.api_key", ErrInvalidConfig, c.Server.Host)
	}
	return nil
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// ParseLogLevel maps a level name to a slog level. Unknown names mean info.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
