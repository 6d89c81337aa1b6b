package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("OPTIMIZER_URL", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Errorf("expected port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Location() != time.UTC {
		t.Errorf("expected UTC location, got %v", cfg.Location())
	}
	if cfg.Optimizer.ConnectTimeout != 5*time.Second {
		t.Errorf("expected connect timeout 5s, got %v", cfg.Optimizer.ConnectTimeout)
	}
	if cfg.Optimizer.ReadTimeout != 120*time.Second {
		t.Errorf("expected read timeout 120s, got %v", cfg.Optimizer.ReadTimeout)
	}
	if cfg.Scheduling.BreakMinutes != 15 || cfg.Scheduling.DeadlineBufferDays != 2 {
		t.Errorf("unexpected scheduling defaults: %+v", cfg.Scheduling)
	}
	if cfg.Redis.Enabled() {
		t.Error("redis should be disabled without REDIS_ADDR")
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.toml")
	content := `
port = "9090"
timezone = "Asia/Tokyo"

[optimizer]
url = "http://optimizer.internal/optimize"
read-timeout = "30s"

[scheduling]
break-minutes = 10

[redis]
addr = "redis:6379"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7070")
	t.Setenv("OPTIMIZER_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("DEFAULT_DEADLINE_BUFFER_DAYS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "7070" {
		t.Errorf("env should override file, got port %s", cfg.Port)
	}
	if cfg.Location().String() != "Asia/Tokyo" {
		t.Errorf("expected Asia/Tokyo, got %s", cfg.Location())
	}
	if cfg.Optimizer.URL != "http://optimizer.internal/optimize" {
		t.Errorf("unexpected optimizer url %s", cfg.Optimizer.URL)
	}
	if cfg.Optimizer.ReadTimeout != 30*time.Second {
		t.Errorf("expected read timeout 30s, got %v", cfg.Optimizer.ReadTimeout)
	}
	if cfg.Optimizer.ConnectTimeout != 5*time.Second {
		t.Errorf("file should keep unset defaults, got %v", cfg.Optimizer.ConnectTimeout)
	}
	if cfg.Scheduling.BreakMinutes != 10 || cfg.Scheduling.DeadlineBufferDays != 3 {
		t.Errorf("unexpected scheduling: %+v", cfg.Scheduling)
	}
	if !cfg.Redis.Enabled() || cfg.Redis.LockTTL != defaultLockTTL {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}
	if err := ValidateForServe(cfg); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected error
	}{
		{
			name:     "timezone",
			env:      map[string]string{"TIMEZONE": "Mars/Olympus"},
			expected: ErrInvalidTimezone,
		},
		{
			name:     "redis db",
			env:      map[string]string{"REDIS_DB": "one"},
			expected: ErrInvalidRedisDB,
		},
		{
			name:     "duration",
			env:      map[string]string{"OPTIMIZER_READ_TIMEOUT": "soon"},
			expected: ErrInvalidDuration,
		},
		{
			name:     "integer",
			env:      map[string]string{"DEFAULT_BREAK_MINUTES": "ten"},
			expected: ErrInvalidInteger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONFIG_FILE", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestValidateForServe(t *testing.T) {
	cfg := Default()
	cfg.Optimizer.URL = "optimizer/optimize"
	cfg.Scheduling.BreakMinutes = -1
	cfg.Redis.Addr = "localhost:6379"
	cfg.Redis.LockTTL = 0

	err := ValidateForServe(cfg)
	for _, expected := range []error{ErrOptimizerURLInvalid, ErrNegativeSchedulingDefault, ErrInvalidLockTiming} {
		if !errors.Is(err, expected) {
			t.Errorf("expected %v in %v", expected, err)
		}
	}

	cfg = Default()
	if err := ValidateForServe(cfg); !errors.Is(err, ErrOptimizerURLMissing) {
		t.Errorf("expected ErrOptimizerURLMissing, got %v", err)
	}
	if err := ValidateForMigrate(cfg); err != nil {
		t.Errorf("migrate should not need the optimizer: %v", err)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.expected {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
