// Package loop plays the fireworks show: a fixed sequence of scenes, each a
// run of frames painted, rendered and paced one tick at a time.
package loop

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/fireworks/internal/alert"
	"github.com/tomz197/fireworks/internal/config"
	"github.com/tomz197/fireworks/internal/draw"
	"github.com/tomz197/fireworks/internal/object"
)

// Frame is what an Observer sees after each render.
type Frame struct {
	Scene  string
	Params SceneParams
	Tick   int
	Buffer *draw.Buffer // Only valid during OnFrame
}

// Observer is notified of every rendered frame.
type Observer interface {
	OnFrame(f Frame)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(f Frame)

// OnFrame implements Observer.
func (fn ObserverFunc) OnFrame(f Frame) { fn(f) }

// Options configures a Show. Zero values select the defaults.
type Options struct {
	Config   *config.Show  // Default: config.Default()
	Rand     *rand.Rand    // Default: seeded from the clock
	Pacer    Pacer         // Default: SleepPacer
	Alert    alert.Emitter // Default: alert.Noop
	Logger   *log.Logger   // Default: discards
	Observer Observer      // Optional
}

// Show plays the scenes in order onto a single writer. A Show is not safe
// for concurrent use; run one per output.
type Show struct {
	cfg      *config.Show
	renderer *draw.Renderer
	rng      *rand.Rand
	pacer    Pacer
	alert    alert.Emitter
	logger   *log.Logger
	observer Observer
	scenes   []Scene
}

// New creates a show that renders to w.
func New(w io.Writer, opts Options) *Show {
	s := &Show{
		cfg:      opts.Config,
		renderer: draw.NewRenderer(w),
		rng:      opts.Rand,
		pacer:    opts.Pacer,
		alert:    opts.Alert,
		logger:   opts.Logger,
		observer: opts.Observer,
	}

	if s.cfg == nil {
		s.cfg = config.Default()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.pacer == nil {
		s.pacer = SleepPacer{}
	}
	if s.alert == nil {
		s.alert = alert.Noop{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.scenes = buildScenes(s.cfg)
	return s
}

// Scenes returns the scenes in playing order.
func (s *Show) Scenes() []Scene {
	return s.scenes
}

// Run plays every scene once. It stops early with ctx.Err() when ctx is
// cancelled, or with the first write error.
func (s *Show) Run(ctx context.Context) error {
	start := time.Now()
	frames := 0

	for _, scene := range s.scenes {
		phases := scene.Phases(s.rng)
		s.logger.Debug("scene", "name", scene.Name, "phases", len(phases))

		for _, p := range phases {
			n, err := s.runPhase(ctx, scene.Name, p)
			frames += n
			if err != nil {
				return err
			}
		}
	}

	s.logger.Debug("show finished", "frames", frames, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// runPhase plays one phase and returns the number of frames rendered.
// Every tick paints a fresh buffer, so nothing carries over between frames.
func (s *Show) runPhase(ctx context.Context, scene string, p SceneParams) (int, error) {
	width, height := s.cfg.Frame.Width, s.cfg.Frame.Height

	for tick := 0; tick < p.Ticks; tick++ {
		if p.Phase == PhaseExplosion && tick == 0 {
			s.alert.Alert()
		}

		buf := draw.NewBuffer(width, height)
		object.DrawAll(object.DrawContext{Buffer: buf, Rand: s.rng, Tick: tick}, p.objects(tick)...)

		if err := s.renderer.Render(buf); err != nil {
			return tick, fmt.Errorf("loop: render %s %s frame %d: %w", scene, p.Phase, tick, err)
		}

		if s.observer != nil {
			s.observer.OnFrame(Frame{Scene: scene, Params: p, Tick: tick, Buffer: buf})
		}

		if err := s.pacer.Pace(ctx, p.Pace); err != nil {
			return tick + 1, err
		}
	}

	return max(p.Ticks, 0), nil
}
