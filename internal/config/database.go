package config

import "time"

const defaultDatabaseDSN = "file:planner.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

type DatabaseConfig struct {
	DSN             string        `toml:"dsn"`
	MaxOpenConns    int           `toml:"max-open-conns"`
	MaxIdleConns    int           `toml:"max-idle-conns"`
	ConnMaxLifetime time.Duration `toml:"conn-max-lifetime"`
}

func defaultDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		DSN:             defaultDatabaseDSN,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
	}
}

func (c *DatabaseConfig) loadEnv() error {
	c.DSN = getEnvOrDefault("DATABASE_URL", c.DSN)

	var err error
	if c.MaxOpenConns, err = getEnvInt("DATABASE_MAX_OPEN_CONNS", c.MaxOpenConns); err != nil {
		return err
	}
	if c.MaxIdleConns, err = getEnvInt("DATABASE_MAX_IDLE_CONNS", c.MaxIdleConns); err != nil {
		return err
	}
	if c.ConnMaxLifetime, err = getEnvDuration("DATABASE_CONN_MAX_LIFETIME", c.ConnMaxLifetime); err != nil {
		return err
	}
	return nil
}

func (c *DatabaseConfig) Validate() error {
	if c == nil || c.DSN == "" {
		return ErrDatabaseDSNMissing
	}
	if c.MaxOpenConns < 0 || c.MaxIdleConns < 0 {
		return ErrInvalidPoolSize
	}
	return nil
}
