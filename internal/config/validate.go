package config

import (
	"errors"
	"fmt"
)

// ValidateForServe checks everything the HTTP server needs.
func ValidateForServe(cfg *Config) error {
	errs := []error{
		cfg.Database.Validate(),
		cfg.Redis.Validate(),
		cfg.Optimizer.Validate(),
		cfg.Scheduling.Validate(),
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("configuration errors: %w", err)
	}
	return nil
}

// ValidateForMigrate only needs a reachable database.
func ValidateForMigrate(cfg *Config) error {
	if err := cfg.Database.Validate(); err != nil {
		return fmt.Errorf("configuration errors: %w", err)
	}
	return nil
}
