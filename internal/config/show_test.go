package config

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Embedded()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded show differs from defaults:\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Frame.Width != 60 || cfg.Frame.Height != 22 {
		t.Errorf("expected 60x22 frame, got %dx%d", cfg.Frame.Width, cfg.Frame.Height)
	}
	if got := cfg.Frame.GroundY(); got != 20 {
		t.Errorf("expected ground row 20, got %d", got)
	}
	if cfg.Firework.Explosion.Particles != 120 || cfg.Finale.Explosion.Particles != 80 {
		t.Errorf("unexpected particle counts %d/%d",
			cfg.Firework.Explosion.Particles, cfg.Finale.Explosion.Particles)
	}
	if cfg.Countdown.Pace != 400*time.Millisecond {
		t.Errorf("expected 400ms countdown pace, got %v", cfg.Countdown.Pace)
	}
	if cfg.Captions.Transition != "新年快乐！" {
		t.Errorf("unexpected transition caption %q", cfg.Captions.Transition)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load([]byte("countdown:\n  from: 3\n  pace: 1s\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Countdown.From != 3 {
		t.Errorf("expected from 3, got %d", cfg.Countdown.From)
	}
	if cfg.Countdown.Pace != time.Second {
		t.Errorf("expected 1s, got %v", cfg.Countdown.Pace)
	}
	if cfg.Countdown.Repeats != 3 {
		t.Errorf("expected untouched repeats 3, got %d", cfg.Countdown.Repeats)
	}
}

func TestLoadDecodeError(t *testing.T) {
	_, err := Load([]byte("frame: [not, a, map"))
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.Is(err, ErrInvalidShow) {
		t.Errorf("decode error should not be a validation error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Show)
	}{
		{"zero width", func(s *Show) { s.Frame.Width = 0 }},
		{"negative height", func(s *Show) { s.Frame.Height = -1 }},
		{"no ground row", func(s *Show) { s.Frame.Height = 1 }},
		{"finale margin too wide", func(s *Show) { s.Finale.MarginX = 30 }},
		{"negative pace", func(s *Show) { s.Firework.Hold.Pace = -time.Millisecond }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidShow) {
				t.Errorf("expected ErrInvalidShow, got %v", err)
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FIREWORKS_TEST_KEY", "value")
	if got := GetEnv("FIREWORKS_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("expected value, got %q", got)
	}
	if got := GetEnv("FIREWORKS_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"error", log.ErrorLevel},
		{"nonsense", log.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(LogLevelEnv, tt.value)
			if got := LogLevel(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
