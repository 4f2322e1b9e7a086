package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/kanban/internal/database"
)

// Defaults
const (
	DefaultDatabaseURI     = "sqlite://kanban.db"
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 3333
	DefaultCacheTTL        = 5 * time.Minute
	DefaultShutdownTimeout = 10 * time.Second
)

// Environment variables
const (
	EnvConfigFile  = "KANBAN_CONFIG"
	EnvDatabaseURI = "KANBAN_DATABASE_URI"
	EnvHost        = "KANBAN_HOST"
	EnvPort        = "KANBAN_PORT"
	EnvDebug       = "KANBAN_DEBUG"
	EnvRedisURL    = "KANBAN_REDIS_URL"
	EnvCacheTTL    = "KANBAN_CACHE_TTL"
)

// Config represents the application configuration
type Config struct {
	DatabaseURI     string        `yaml:"database_uri"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Debug           bool          `yaml:"debug"`
	RedisURL        string        `yaml:"redis_url"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoadOptions selects where configuration is read from.
// Empty fields fall back to the environment and the XDG config path.
type LoadOptions struct {
	ConfigPath string
	EnvFile    string
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		DatabaseURI:     DefaultDatabaseURI,
		Host:            DefaultHost,
		Port:            DefaultPort,
		CacheTTL:        DefaultCacheTTL,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Load builds the configuration from defaults, the YAML file, an optional
// .env file and KANBAN_* environment variables, later sources winning.
// A missing config file or .env file is not an error.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	path := opts.ConfigPath
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		if p, err := getConfigPath(); err == nil {
			path = p
		}
	}

	if path != "" {
		if err := cfg.loadFile(path, opts.ConfigPath != ""); err != nil {
			return nil, err
		}
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// godotenv never overrides variables that are already set
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

// loadFile merges the YAML file at path into c. A missing file is only an
// error when the path was asked for explicitly.
func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDatabaseURI); v != "" {
		c.DatabaseURI = v
	}
	if v := os.Getenv(EnvHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		c.Port = port
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvDebug, v, err)
		}
		c.Debug = debug
	}
	if v := os.Getenv(EnvRedisURL); v != "" {
		c.RedisURL = v
	}
	if v := os.Getenv(EnvCacheTTL); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvCacheTTL, v, err)
		}
		c.CacheTTL = ttl
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DatabaseURI == "" {
		c.DatabaseURI = DefaultDatabaseURI
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = DefaultCacheTTL
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
}

// Validate checks the values a server needs before it starts
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}
	if _, _, err := database.ParseURI(c.DatabaseURI); err != nil {
		return fmt.Errorf("invalid database_uri: %w", err)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("invalid cache_ttl %s: must not be negative", c.CacheTTL)
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("invalid shutdown_timeout %s: must not be negative", c.ShutdownTimeout)
	}
	return nil
}

// Addr returns host:port for the HTTP listener
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kanban", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "kanban", "config.yaml"), nil
}
