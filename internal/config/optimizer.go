package config

import (
	"net/url"
	"time"
)

const (
	defaultOptimizerConnectTimeout = 5 * time.Second
	defaultOptimizerReadTimeout    = 120 * time.Second
)

type OptimizerConfig struct {
	URL            string        `toml:"url"`
	ConnectTimeout time.Duration `toml:"connect-timeout"`
	ReadTimeout    time.Duration `toml:"read-timeout"`
}

func defaultOptimizerConfig() *OptimizerConfig {
	return &OptimizerConfig{
		ConnectTimeout: defaultOptimizerConnectTimeout,
		ReadTimeout:    defaultOptimizerReadTimeout,
	}
}

func (c *OptimizerConfig) loadEnv() error {
	c.URL = getEnvOrDefault("OPTIMIZER_URL", c.URL)

	var err error
	if c.ConnectTimeout, err = getEnvDuration("OPTIMIZER_CONNECT_TIMEOUT", c.ConnectTimeout); err != nil {
		return err
	}
	if c.ReadTimeout, err = getEnvDuration("OPTIMIZER_READ_TIMEOUT", c.ReadTimeout); err != nil {
		return err
	}
	return nil
}

func (c *OptimizerConfig) Validate() error {
	if c == nil || c.URL == "" {
		return ErrOptimizerURLMissing
	}
	if u, err := url.Parse(c.URL); err != nil || !u.IsAbs() {
		return ErrOptimizerURLInvalid
	}
	if c.ConnectTimeout <= 0 || c.ReadTimeout <= 0 {
		return ErrInvalidOptimizerTimeout
	}
	return nil
}
