package config

import "time"

const (
	redisAddrEnv        = "REDIS_ADDR"
	redisPasswordEnv    = "REDIS_PASSWORD"
	redisDBEnv          = "REDIS_DB"
	redisTLSEnv         = "REDIS_TLS"
	redisLockTTLEnv     = "REDIS_LOCK_TTL"
	redisLockMaxWaitEnv = "REDIS_LOCK_MAX_WAIT"

	defaultRedisDB  = 0
	defaultLockTTL  = 3 * time.Minute
	defaultLockWait = 5 * time.Second
)

// RedisConfig backs the per-user operation lock. An empty Addr disables locking.
type RedisConfig struct {
	Addr        string        `toml:"addr"`
	Password    string        `toml:"password"`
	DB          int           `toml:"db"`
	TLS         bool          `toml:"tls"`
	LockTTL     time.Duration `toml:"lock-ttl"`
	LockMaxWait time.Duration `toml:"lock-max-wait"`
}

func defaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		DB:          defaultRedisDB,
		LockTTL:     defaultLockTTL,
		LockMaxWait: defaultLockWait,
	}
}

func (c *RedisConfig) loadEnv() error {
	c.Addr = getEnvOrDefault(redisAddrEnv, c.Addr)
	c.Password = getEnvOrDefault(redisPasswordEnv, c.Password)
	c.TLS = getEnvBool(redisTLSEnv, c.TLS)

	db, err := getEnvInt(redisDBEnv, c.DB)
	if err != nil {
		return ErrInvalidRedisDB
	}
	c.DB = db

	if c.LockTTL, err = getEnvDuration(redisLockTTLEnv, c.LockTTL); err != nil {
		return err
	}
	if c.LockMaxWait, err = getEnvDuration(redisLockMaxWaitEnv, c.LockMaxWait); err != nil {
		return err
	}
	return nil
}

func (c *RedisConfig) Enabled() bool {
	return c != nil && c.Addr != ""
}

func (c *RedisConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.DB < 0 {
		return ErrInvalidRedisDB
	}
	if c.LockTTL <= 0 || c.LockMaxWait < 0 {
		return ErrInvalidLockTiming
	}
	return nil
}
