package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseWheelConfig(t *testing.T) {
	data := []byte(`
wheel:
  max_options: 50
  spin_duration: 2500ms
  pointer_angle: 0
  extra_spins:
    min: 3
    max: 4
`)
	cfg, err := ParseWheelConfig(data)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.MaxOptions() != 50 {
		t.Errorf("max options = %d", cfg.MaxOptions())
	}
	if cfg.SpinDuration() != 2500*time.Millisecond {
		t.Errorf("spin duration = %v", cfg.SpinDuration())
	}
	if cfg.PointerAngle() != 0 {
		t.Errorf("pointer angle = %v", cfg.PointerAngle())
	}
	if lo, hi := cfg.ExtraSpinsRange(); lo != 3 || hi != 4 {
		t.Errorf("extra spins = %d..%d", lo, hi)
	}
	// не заданные ключи берутся по умолчанию
	if cfg.MaxTextLength() != 100 || cfg.LabelLength() != 15 || cfg.FrameInterval() != 16*time.Millisecond {
		t.Errorf("defaults lost: %d %d %v", cfg.MaxTextLength(), cfg.LabelLength(), cfg.FrameInterval())
	}
}

func TestParseWheelConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "wheel: [1, 2"},
		{"bad duration", "wheel:\n  spin_duration: soon\n"},
		{"zero options", "wheel:\n  max_options: 0\n"},
		{"inverted extra spins", "wheel:\n  extra_spins:\n    min: 8\n    max: 5\n"},
		{"negative frame interval", "wheel:\n  frame_interval: -1ms\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseWheelConfig([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewWheelConfigFromYAML_MissingFile(t *testing.T) {
	cfg, err := NewWheelConfigFromYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxOptions() != 500 || cfg.SpinDuration() != 4*time.Second {
		t.Errorf("expected defaults, got %d %v", cfg.MaxOptions(), cfg.SpinDuration())
	}
	if lo, hi := cfg.ExtraSpinsRange(); lo != 5 || hi != 8 {
		t.Errorf("extra spins = %d..%d", lo, hi)
	}
}

func TestNewWheelConfigFromYAML_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("wheel:\n  label_length: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewWheelConfigFromYAML(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LabelLength() != 20 {
		t.Errorf("label length = %d", cfg.LabelLength())
	}
}

func TestNewStorageConfigWith(t *testing.T) {
	t.Setenv(storageDriverEnvName, "")
	t.Setenv(storageDSNEnvName, "")
	t.Setenv(dsnName, "postgres://from-pg-dsn")

	tests := []struct {
		name       string
		envDriver  string
		envDSN     string
		flagDriver string
		flagDSN    string
		wantDriver string
		wantDSN    string
		wantErr    bool
	}{
		{name: "defaults to sqlite", wantDriver: DriverSQLite, wantDSN: defaultSQLitePath},
		{name: "env driver", envDriver: "memory", wantDriver: DriverMemory},
		{name: "flag overrides env", envDriver: "redis", envDSN: "redis:6379", flagDriver: "SQLite", flagDSN: "x.db", wantDriver: DriverSQLite, wantDSN: "x.db"},
		{name: "postgres falls back to PG_DSN", flagDriver: "postgres", wantDriver: DriverPostgres, wantDSN: "postgres://from-pg-dsn"},
		{name: "unknown driver", flagDriver: "mongo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(storageDriverEnvName, tt.envDriver)
			t.Setenv(storageDSNEnvName, tt.envDSN)

			cfg, err := NewStorageConfigWith(tt.flagDriver, tt.flagDSN)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.Driver() != tt.wantDriver || cfg.DSN() != tt.wantDSN {
				t.Errorf("got %s %q, want %s %q", cfg.Driver(), cfg.DSN(), tt.wantDriver, tt.wantDSN)
			}
		})
	}
}

func TestNewHTTPConfig(t *testing.T) {
	t.Setenv(httpHostEnvName, "127.0.0.1")
	t.Setenv(httpPortEnvName, "")
	cfg, err := NewHTTPConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Address() != "127.0.0.1:8080" {
		t.Errorf("address = %s", cfg.Address())
	}

	t.Setenv(httpPortEnvName, "99999")
	if _, err := NewHTTPConfig(); err == nil {
		t.Error("expected invalid port error")
	}
}

func TestNewRedisConfig(t *testing.T) {
	t.Setenv(redisAddrEnvName, "cache:6379")
	t.Setenv(redisDBEnvName, "2")

	cfg, err := NewRedisConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr() != "cache:6379" || cfg.DB() != 2 {
		t.Errorf("got %s db=%d", cfg.Addr(), cfg.DB())
	}

	cfg, err = NewRedisConfig("override:6380")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr() != "override:6380" {
		t.Errorf("dsn must win over REDIS_ADDR, got %s", cfg.Addr())
	}

	t.Setenv(redisDBEnvName, "-1")
	if _, err := NewRedisConfig(""); err == nil {
		t.Error("expected invalid db error")
	}
}
