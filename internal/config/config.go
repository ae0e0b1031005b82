package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type WheelConfig interface {
	MaxOptions() int
	MaxTextLength() int
	LabelLength() int
	SpinDuration() time.Duration
	FrameInterval() time.Duration
	ExtraSpinsRange() (min, max int)
	PointerAngle() float64
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type StorageConfig interface {
	Driver() string
	DSN() string
}

type RedisConfig interface {
	Addr() string
	Password() string
	DB() int
}

type LogConfig interface {
	Level() string
	Dir() string
	File() bool
	App() string
}
