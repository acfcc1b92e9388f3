package config

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/tomz197/fireworks/internal/physics"
	"gopkg.in/yaml.v3"
)

//go:embed show.yaml
var showYAML []byte

// ErrInvalidShow is wrapped by every validation failure.
var ErrInvalidShow = errors.New("config: invalid show definition")

// Show is the complete, fixed definition of the fireworks show.
type Show struct {
	Frame      Frame      `yaml:"frame"`
	Countdown  Countdown  `yaml:"countdown"`
	Firework   Firework   `yaml:"firework"`
	Transition Transition `yaml:"transition"`
	Finale     Finale     `yaml:"finale"`
	Captions   Captions   `yaml:"captions"`
}

// Frame is the size of every frame, in terminal cells.
type Frame struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GroundY is the row rockets start from.
func (f Frame) GroundY() int {
	return f.Height - 2
}

type Countdown struct {
	From    int           `yaml:"from"`
	Repeats int           `yaml:"repeats"` // Frames per number
	Stars   int           `yaml:"stars"`
	Pace    time.Duration `yaml:"pace"`
}

// Launch describes a rocket ascent. Ticks is used as-is when set; otherwise
// the tick count is derived from the climb height, never below MinTicks.
type Launch struct {
	Ticks    int           `yaml:"ticks"`
	MinTicks int           `yaml:"min_ticks"`
	Stars    int           `yaml:"stars"`
	ApexY    int           `yaml:"apex_y"`
	Pace     time.Duration `yaml:"pace"`
}

// Explosion describes a burst. The caption, if any, appears once the tick
// index exceeds RevealAfter.
type Explosion struct {
	Ticks       int            `yaml:"ticks"`
	Stars       int            `yaml:"stars"`
	Particles   int            `yaml:"particles"`
	Growth      physics.Growth `yaml:"growth"`
	RevealAfter int            `yaml:"reveal_after"`
	Pace        time.Duration  `yaml:"pace"`
}

type Hold struct {
	Ticks int           `yaml:"ticks"`
	Stars int           `yaml:"stars"`
	Pace  time.Duration `yaml:"pace"`
}

// Firework is a single captioned shot: launch, explosion, hold.
type Firework struct {
	Launch    Launch    `yaml:"launch"`
	Explosion Explosion `yaml:"explosion"`
	Hold      Hold      `yaml:"hold"`
}

// Transition fades in stars: BaseStars + tick*StarStep.
type Transition struct {
	Ticks     int           `yaml:"ticks"`
	BaseStars int           `yaml:"base_stars"`
	StarStep  int           `yaml:"star_step"`
	Pace      time.Duration `yaml:"pace"`
}

// Finale fires Shots uncaptioned fireworks at random positions.
type Finale struct {
	Shots     int       `yaml:"shots"`
	MarginX   int       `yaml:"margin_x"`
	MinApexY  int       `yaml:"min_apex_y"`
	Launch    Launch    `yaml:"launch"`
	Explosion Explosion `yaml:"explosion"`
}

type Captions struct {
	Farewell   string `yaml:"farewell"`
	Greeting   string `yaml:"greeting"`
	Transition string `yaml:"transition"`
	Exit       string `yaml:"exit"`
}

// Default returns the show definition the binary ships with.
func Default() *Show {
	return &Show{
		Frame: Frame{Width: 60, Height: 22},
		Countdown: Countdown{
			From:    5,
			Repeats: 3,
			Stars:   80,
			Pace:    400 * time.Millisecond,
		},
		Firework: Firework{
			Launch: Launch{Ticks: 10, Stars: 60, ApexY: 2, Pace: 80 * time.Millisecond},
			Explosion: Explosion{
				Ticks:       20,
				Stars:       40,
				Particles:   120,
				Growth:      physics.Growth{Base: 0, Rate: 0.7, Floor: 1},
				RevealAfter: 6,
				Pace:        90 * time.Millisecond,
			},
			Hold: Hold{Ticks: 12, Stars: 30, Pace: 120 * time.Millisecond},
		},
		Transition: Transition{
			Ticks:     20,
			BaseStars: 20,
			StarStep:  2,
			Pace:      120 * time.Millisecond,
		},
		Finale: Finale{
			Shots:    8,
			MarginX:  5,
			MinApexY: 3,
			Launch:   Launch{MinTicks: 6, Stars: 40, Pace: 60 * time.Millisecond},
			Explosion: Explosion{
				Ticks:     14,
				Stars:     30,
				Particles: 80,
				Growth:    physics.Growth{Base: 1, Rate: 0.6, Floor: 1},
				Pace:      90 * time.Millisecond,
			},
		},
		Captions: Captions{
			Farewell:   "再见，2025！",
			Greeting:   "你好，2026！",
			Transition: "新年快乐！",
			Exit:       "按回车退出...",
		},
	}
}

// Load decodes a show definition over the defaults and validates it.
func Load(data []byte) (*Show, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode show: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Embedded returns the show definition compiled into the binary.
func Embedded() (*Show, error) {
	return Load(showYAML)
}

// Validate checks the values the engine relies on.
func (s *Show) Validate() error {
	switch {
	case s.Frame.Width <= 0 || s.Frame.Height <= 0:
		return fmt.Errorf("%w: frame %dx%d", ErrInvalidShow, s.Frame.Width, s.Frame.Height)
	case s.Frame.Height < 2:
		return fmt.Errorf("%w: frame height %d leaves no ground row", ErrInvalidShow, s.Frame.Height)
	case s.Finale.Shots > 0 && s.Frame.Width-2*s.Finale.MarginX <= 0:
		return fmt.Errorf("%w: finale margin %d leaves no room in width %d", ErrInvalidShow, s.Finale.MarginX, s.Frame.Width)
	case s.Finale.Shots > 0 && s.Frame.Height/2 <= 0:
		return fmt.Errorf("%w: frame height %d leaves no room for finale apexes", ErrInvalidShow, s.Frame.Height)
	}

	paces := map[string]time.Duration{
		"countdown":          s.Countdown.Pace,
		"firework.launch":    s.Firework.Launch.Pace,
		"firework.explosion": s.Firework.Explosion.Pace,
		"firework.hold":      s.Firework.Hold.Pace,
		"transition":         s.Transition.Pace,
		"finale.launch":      s.Finale.Launch.Pace,
		"finale.explosion":   s.Finale.Explosion.Pace,
	}
	for name, d := range paces {
		if d < 0 {
			return fmt.Errorf("%w: negative pace for %s", ErrInvalidShow, name)
		}
	}

	return nil
}
