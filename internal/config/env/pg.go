package env

import (
	"errors"
	"lucky_spinner/internal/config"
	"os"
)

const (
	dsnName = "PG_DSN"
)

type pgConfig struct {
	dsn string
}

func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(dsnName)
	if len(dsn) == 0 {
		return nil, errors.New("pg dsn not found")
	}

	return &pgConfig{
		dsn: dsn,
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}

// NewPGConfigWith dsn уже выбран (флаг или STORAGE_DSN)
func NewPGConfigWith(dsn string) config.PGConfig {
	return &pgConfig{dsn: dsn}
}
