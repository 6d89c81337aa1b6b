package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

const (
	configFileEnv = "CONFIG_FILE"

	defaultPort     = "8080"
	defaultTimezone = "UTC"
)

// Config is built from defaults, then the optional TOML file named by CONFIG_FILE,
// then environment variables.
type Config struct {
	Port       string            `toml:"port"`
	LogLevel   string            `toml:"log-level"`
	LogFile    string            `toml:"log-file"`
	Timezone   string            `toml:"timezone"`
	Database   *DatabaseConfig   `toml:"database"`
	Redis      *RedisConfig      `toml:"redis"`
	Optimizer  *OptimizerConfig  `toml:"optimizer"`
	Scheduling *SchedulingConfig `toml:"scheduling"`

	location *time.Location
}

func Default() *Config {
	return &Config{
		Port:       defaultPort,
		LogLevel:   "info",
		Timezone:   defaultTimezone,
		Database:   defaultDatabaseConfig(),
		Redis:      defaultRedisConfig(),
		Optimizer:  defaultOptimizerConfig(),
		Scheduling: defaultSchedulingConfig(),
	}
}

func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(configFileEnv); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, cfg.Timezone)
	}
	cfg.location = loc

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	meta, err := toml.Decode(string(data), c)
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		slog.Warn("unknown keys in config file",
			slog.String("path", path),
			slog.Any("keys", undecoded),
		)
	}
	return nil
}

func (c *Config) loadEnv() error {
	c.Port = getEnvOrDefault("PORT", c.Port)
	c.LogLevel = getEnvOrDefault("LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnvOrDefault("LOG_FILE", c.LogFile)
	c.Timezone = getEnvOrDefault("TIMEZONE", c.Timezone)

	if err := c.Database.loadEnv(); err != nil {
		return err
	}
	if err := c.Redis.loadEnv(); err != nil {
		return err
	}
	if err := c.Optimizer.loadEnv(); err != nil {
		return err
	}
	return c.Scheduling.loadEnv()
}

// Location is the zone in which weeks, dates and slots are interpreted.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func (c *Config) SlogLevel() slog.Level {
	return parseLogLevel(c.LogLevel)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidInteger, key, raw)
	}
	return v, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidDuration, key, raw)
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	return raw == "true"
}
