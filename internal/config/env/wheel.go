package env

import (
	"errors"
	"fmt"
	"io/fs"
	"lucky_spinner/internal/config"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultMaxOptions    = 500
	defaultMaxTextLength = 100
	defaultLabelLength   = 15
	defaultSpinDuration  = 4000 * time.Millisecond
	defaultFrameInterval = 16 * time.Millisecond
	defaultExtraSpinsMin = 5
	defaultExtraSpinsMax = 8
	defaultPointerAngle  = 270.0
)

type wheelFile struct {
	Wheel wheelYAML `yaml:"wheel"`
}

type wheelYAML struct {
	MaxOptions    *int     `yaml:"max_options"`
	MaxTextLength *int     `yaml:"max_text_length"`
	LabelLength   *int     `yaml:"label_length"`
	SpinDuration  string   `yaml:"spin_duration"`
	FrameInterval string   `yaml:"frame_interval"`
	PointerAngle  *float64 `yaml:"pointer_angle"`
	ExtraSpins    struct {
		Min *int `yaml:"min"`
		Max *int `yaml:"max"`
	} `yaml:"extra_spins"`
}

type wheelConfig struct {
	maxOptions    int
	maxTextLength int
	labelLength   int
	spinDuration  time.Duration
	frameInterval time.Duration
	extraSpinsMin int
	extraSpinsMax int
	pointerAngle  float64
}

// DefaultWheelConfig параметры колеса без файла конфигурации
func DefaultWheelConfig() config.WheelConfig {
	return &wheelConfig{
		maxOptions:    defaultMaxOptions,
		maxTextLength: defaultMaxTextLength,
		labelLength:   defaultLabelLength,
		spinDuration:  defaultSpinDuration,
		frameInterval: defaultFrameInterval,
		extraSpinsMin: defaultExtraSpinsMin,
		extraSpinsMax: defaultExtraSpinsMax,
		pointerAngle:  defaultPointerAngle,
	}
}

// NewWheelConfigFromYAML читает секцию wheel; если файла нет, берутся значения по умолчанию
func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultWheelConfig(), nil
		}
		return nil, fmt.Errorf("read wheel config: %w", err)
	}
	return ParseWheelConfig(data)
}

func ParseWheelConfig(data []byte) (config.WheelConfig, error) {
	var file wheelFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse wheel config: %w", err)
	}

	cfg := DefaultWheelConfig().(*wheelConfig)
	w := file.Wheel

	if w.MaxOptions != nil {
		cfg.maxOptions = *w.MaxOptions
	}
	if w.MaxTextLength != nil {
		cfg.maxTextLength = *w.MaxTextLength
	}
	if w.LabelLength != nil {
		cfg.labelLength = *w.LabelLength
	}
	if w.PointerAngle != nil {
		cfg.pointerAngle = *w.PointerAngle
	}
	if w.ExtraSpins.Min != nil {
		cfg.extraSpinsMin = *w.ExtraSpins.Min
	}
	if w.ExtraSpins.Max != nil {
		cfg.extraSpinsMax = *w.ExtraSpins.Max
	}
	if w.SpinDuration != "" {
		d, err := time.ParseDuration(w.SpinDuration)
		if err != nil {
			return nil, fmt.Errorf("invalid spin_duration: %w", err)
		}
		cfg.spinDuration = d
	}
	if w.FrameInterval != "" {
		d, err := time.ParseDuration(w.FrameInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid frame_interval: %w", err)
		}
		cfg.frameInterval = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *wheelConfig) validate() error {
	switch {
	case cfg.maxOptions <= 0:
		return errors.New("max_options must be positive")
	case cfg.maxTextLength <= 0:
		return errors.New("max_text_length must be positive")
	case cfg.spinDuration <= 0:
		return errors.New("spin_duration must be positive")
	case cfg.frameInterval <= 0:
		return errors.New("frame_interval must be positive")
	case cfg.extraSpinsMin < 0 || cfg.extraSpinsMax < cfg.extraSpinsMin:
		return errors.New("extra_spins range is invalid")
	}
	return nil
}

func (cfg *wheelConfig) MaxOptions() int {
	return cfg.maxOptions
}

func (cfg *wheelConfig) MaxTextLength() int {
	return cfg.maxTextLength
}

func (cfg *wheelConfig) LabelLength() int {
	return cfg.labelLength
}

func (cfg *wheelConfig) SpinDuration() time.Duration {
	return cfg.spinDuration
}

func (cfg *wheelConfig) FrameInterval() time.Duration {
	return cfg.frameInterval
}

func (cfg *wheelConfig) ExtraSpinsRange() (int, int) {
	return cfg.extraSpinsMin, cfg.extraSpinsMax
}

func (cfg *wheelConfig) PointerAngle() float64 {
	return cfg.pointerAngle
}
