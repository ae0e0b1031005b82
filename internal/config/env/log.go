package env

import (
	"lucky_spinner/internal/config"
	"os"
	"strconv"
)

const (
	logLevelEnvName = "LOG_LEVEL"
	logDirEnvName   = "LOG_DIR"
	logFileEnvName  = "LOG_FILE"

	appName = "lucky-spinner"
)

type logConfig struct {
	level string
	dir   string
	file  bool
}

func NewLogConfig() config.LogConfig {
	level := os.Getenv(logLevelEnvName)
	if level == "" {
		level = "info"
	}
	file, _ := strconv.ParseBool(os.Getenv(logFileEnvName))

	return &logConfig{
		level: level,
		dir:   os.Getenv(logDirEnvName),
		file:  file,
	}
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) Dir() string {
	return cfg.dir
}

func (cfg *logConfig) File() bool {
	return cfg.file
}

func (cfg *logConfig) App() string {
	return appName
}
