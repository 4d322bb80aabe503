package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"wrap-snake/game/types"
)

// clearEnv unsets keys for the duration of the test and restores them after.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

var allKeys = []string{
	"SNAKE_UI", "SNAKE_WIDTH", "SNAKE_HEIGHT", "SNAKE_CELL", "SNAKE_SPEED",
	"SNAKE_START_X", "SNAKE_START_Y", "SNAKE_SEED", "LOG_LEVEL", "SNAKE_LOG_FILE",
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t, allKeys...)

	cfg, err := Load(nil, missingEnvFile(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
	if cfg.Start() != (types.Point{X: 16, Y: 12}) {
		t.Fatalf("start = %v", cfg.Start())
	}
	if cfg.TickInterval() != 50*time.Millisecond {
		t.Fatalf("interval = %v", cfg.TickInterval())
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t, allKeys...)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "SNAKE_WIDTH=40\nSNAKE_HEIGHT=30\nSNAKE_UI=terminal\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SNAKE_HEIGHT", "20") // process env beats the file

	cfg, err := Load([]string{"-speed", "5", "-width", "12", "-seed", "99"}, envFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Width != 12 {
		t.Errorf("width = %d, flag should win", cfg.Width)
	}
	if cfg.Height != 20 {
		t.Errorf("height = %d, env should beat file", cfg.Height)
	}
	if cfg.UI != UITerminal {
		t.Errorf("ui = %q, file value expected", cfg.UI)
	}
	if cfg.Speed != 5 || cfg.Seed != 99 {
		t.Errorf("speed=%d seed=%d", cfg.Speed, cfg.Seed)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"unknown ui", []string{"-ui", "sdl"}, nil},
		{"zero width", []string{"-width", "0"}, nil},
		{"single cell", []string{"-width", "1", "-height", "1"}, nil},
		{"zero speed", []string{"-speed", "0"}, nil},
		{"start outside", []string{"-width", "5", "-start-x", "5"}, nil},
		{"bad env int", nil, map[string]string{"SNAKE_WIDTH": "wide"}},
		{"bad env seed", nil, map[string]string{"SNAKE_SEED": "-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t, allKeys...)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.args, missingEnvFile(t))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadUnknownFlag(t *testing.T) {
	clearEnv(t, allKeys...)
	if _, err := Load([]string{"-volume", "11"}, missingEnvFile(t)); err == nil {
		t.Fatal("unknown flag accepted")
	}
}

func TestStartPartialOverride(t *testing.T) {
	cfg := Default()
	cfg.StartX = 3
	if cfg.Start() != (types.Point{X: 3, Y: 12}) {
		t.Fatalf("start = %v", cfg.Start())
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}
