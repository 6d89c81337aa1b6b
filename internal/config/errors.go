package config

import "errors"

var (
	ErrInvalidTimezone = errors.New("TIMEZONE must be a valid IANA time zone")
	ErrInvalidInteger  = errors.New("value must be a valid integer")
	ErrInvalidDuration = errors.New("value must be a valid duration")

	ErrDatabaseDSNMissing = errors.New("DATABASE_URL is required")
	ErrInvalidPoolSize    = errors.New("database pool sizes must not be negative")

	ErrInvalidRedisDB    = errors.New("REDIS_DB must be a valid non-negative integer")
	ErrInvalidLockTiming = errors.New("REDIS_LOCK_TTL must be positive and REDIS_LOCK_MAX_WAIT must not be negative")

	ErrOptimizerURLMissing     = errors.New("OPTIMIZER_URL is required")
	ErrOptimizerURLInvalid     = errors.New("OPTIMIZER_URL must be an absolute URL")
	ErrInvalidOptimizerTimeout = errors.New("optimizer timeouts must be positive")

	ErrNegativeSchedulingDefault = errors.New("scheduling defaults must not be negative")
)
