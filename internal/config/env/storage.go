package env

import (
	"fmt"
	"lucky_spinner/internal/config"
	"os"
	"strings"
)

const (
	storageDriverEnvName = "STORAGE_DRIVER"
	storageDSNEnvName    = "STORAGE_DSN"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"

	defaultSQLitePath = "lucky-spinner.db"
)

type storageConfig struct {
	driver string
	dsn    string
}

func NewStorageConfig() (config.StorageConfig, error) {
	return NewStorageConfigWith("", "")
}

// NewStorageConfigWith значения флагов важнее переменных окружения
func NewStorageConfigWith(driver, dsn string) (config.StorageConfig, error) {
	if driver == "" {
		driver = os.Getenv(storageDriverEnvName)
	}
	if dsn == "" {
		dsn = os.Getenv(storageDSNEnvName)
	}
	driver = strings.ToLower(strings.TrimSpace(driver))
	if driver == "" {
		driver = DriverSQLite
	}

	switch driver {
	case DriverSQLite:
		if dsn == "" {
			dsn = defaultSQLitePath
		}
	case DriverPostgres:
		// для postgres можно оставить старую переменную PG_DSN
		if dsn == "" {
			pg, err := NewPGConfig()
			if err != nil {
				return nil, err
			}
			dsn = pg.DSN()
		}
	case DriverRedis, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}

	return &storageConfig{driver: driver, dsn: dsn}, nil
}

func (cfg *storageConfig) Driver() string {
	return cfg.driver
}

func (cfg *storageConfig) DSN() string {
	return cfg.dsn
}
