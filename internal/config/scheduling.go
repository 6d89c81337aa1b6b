package config

const (
	defaultBreakMinutes       = 15
	defaultDeadlineBufferDays = 2
)

// SchedulingConfig holds fallbacks for users without stored preferences.
type SchedulingConfig struct {
	BreakMinutes       int `toml:"break-minutes"`
	DeadlineBufferDays int `toml:"deadline-buffer-days"`
}

func defaultSchedulingConfig() *SchedulingConfig {
	return &SchedulingConfig{
		BreakMinutes:       defaultBreakMinutes,
		DeadlineBufferDays: defaultDeadlineBufferDays,
	}
}

func (c *SchedulingConfig) loadEnv() error {
	var err error
	if c.BreakMinutes, err = getEnvInt("DEFAULT_BREAK_MINUTES", c.BreakMinutes); err != nil {
		return err
	}
	if c.DeadlineBufferDays, err = getEnvInt("DEFAULT_DEADLINE_BUFFER_DAYS", c.DeadlineBufferDays); err != nil {
		return err
	}
	return nil
}

func (c *SchedulingConfig) Validate() error {
	if c.BreakMinutes < 0 || c.DeadlineBufferDays < 0 {
		return ErrNegativeSchedulingDefault
	}
	return nil
}
