package env

import (
	"fmt"
	"lucky_spinner/internal/config"
	"os"
	"strconv"
)

const (
	redisAddrEnvName     = "REDIS_ADDR"
	redisPasswordEnvName = "REDIS_PASSWORD"
	redisDBEnvName       = "REDIS_DB"

	defaultRedisAddr = "localhost:6379"
)

type redisConfig struct {
	addr     string
	password string
	db       int
}

// NewRedisConfig dsn из STORAGE_DSN (если задан) заменяет REDIS_ADDR
func NewRedisConfig(dsn string) (config.RedisConfig, error) {
	addr := dsn
	if addr == "" {
		addr = os.Getenv(redisAddrEnvName)
	}
	if addr == "" {
		addr = defaultRedisAddr
	}

	db := 0
	if raw := os.Getenv(redisDBEnvName); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("invalid %s: %q", redisDBEnvName, raw)
		}
		db = parsed
	}

	return &redisConfig{
		addr:     addr,
		password: os.Getenv(redisPasswordEnvName),
		db:       db,
	}, nil
}

func (cfg *redisConfig) Addr() string {
	return cfg.addr
}

func (cfg *redisConfig) Password() string {
	return cfg.password
}

func (cfg *redisConfig) DB() int {
	return cfg.db
}
