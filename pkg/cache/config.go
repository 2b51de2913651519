// Package cache provides the Redis and in-process caches used by the admin panel.
package cache

import (
	"fmt"
	"os"

	"karttem-admin/pkg/config"
)

// configuration settings for connecting to a Redis instance.
type RedisConfig struct {
	Host        string
	Port        int
	Password    string
	DB          int
	TLSEnabled  bool
	TLSCertFile string
}

// RedisConfigFrom builds the Redis settings from the application config.
func RedisConfigFrom(cfg *config.Config) (*RedisConfig, error) {
	rc := &RedisConfig{
		Host:        cfg.Redis.Host,
		Port:        cfg.Redis.Port,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		TLSEnabled:  cfg.Redis.TLSEnabled,
		TLSCertFile: cfg.Redis.TLSCertFile,
	}

	if rc.Host == "" {
		rc.Host = "localhost"
	}
	if rc.Port <= 0 || rc.Port > 65535 {
		return nil, fmt.Errorf("redis port must be between 1 and 65535")
	}
	if rc.DB < 0 {
		return nil, fmt.Errorf("redis db must be non-negative")
	}
	if rc.TLSEnabled && rc.TLSCertFile != "" {
		if _, err := os.Stat(rc.TLSCertFile); os.IsNotExist(err) {
			return nil, fmt.Errorf("TLS certificate file does not exist: %s", rc.TLSCertFile)
		}
	}

	return rc, nil
}

// Addr returns host:port.
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
