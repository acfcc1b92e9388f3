package loop

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/tomz197/fireworks/internal/config"
	"github.com/tomz197/fireworks/internal/object"
	"github.com/tomz197/fireworks/internal/physics"
)

// Phase is the kind of animation a run of frames shows.
type Phase int

const (
	PhaseCountdown  Phase = iota // Number over a starfield
	PhaseLaunch                  // Rocket rising
	PhaseExplosion               // Burst of colored particles
	PhaseHold                    // Caption over a calm sky
	PhaseTransition              // Caption while stars fill in
	PhaseIdle                    // Final prompt
)

var phaseNames = [...]string{"countdown", "launch", "explosion", "hold", "transition", "idle"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "phase(" + strconv.Itoa(int(p)) + ")"
	}
	return phaseNames[p]
}

// SceneParams describes one phase: how many frames it lasts and what
// every frame contains. Params are fixed before the first frame.
type SceneParams struct {
	Phase       Phase
	Ticks       int
	CenterX     int            // Rocket and burst column
	GroundY     int            // Rocket row at tick 0
	ApexY       int            // Highest rocket row
	BurstY      int            // Burst center row
	Caption     string         // Centered text, empty for none
	RevealAfter int            // Caption shows once tick > RevealAfter
	Stars       int            // Stars at tick 0
	StarStep    int            // Extra stars per tick
	Particles   int            // Burst particle count
	Growth      physics.Growth // Burst radius growth
	Pace        time.Duration  // Delay after each frame
}

// StarsAt returns the number of stars painted on the given tick.
func (p SceneParams) StarsAt(tick int) int {
	return p.Stars + tick*p.StarStep
}

// CaptionAt returns the caption shown on the given tick, if any.
func (p SceneParams) CaptionAt(tick int) string {
	if tick > p.RevealAfter {
		return p.Caption
	}
	return ""
}

// objects lists what to paint on a tick, back to front: stars, then the
// rocket or burst, then the caption.
func (p SceneParams) objects(tick int) []object.Object {
	objs := make([]object.Object, 0, 3)
	if n := p.StarsAt(tick); n > 0 {
		objs = append(objs, object.Stars{Count: n})
	}

	switch p.Phase {
	case PhaseLaunch:
		objs = append(objs, object.Rocket{X: p.CenterX, GroundY: p.GroundY, ApexY: p.ApexY})
	case PhaseExplosion:
		objs = append(objs, object.Burst{X: p.CenterX, Y: p.BurstY, Count: p.Particles, Growth: p.Growth})
	}

	if caption := p.CaptionAt(tick); caption != "" {
		objs = append(objs, object.Text{Value: caption})
	}
	return objs
}

// Scene is a named group of phases. Phases are planned when the scene
// starts so that scenes may draw their layout from the random source.
type Scene struct {
	Name string
	plan func(rng *rand.Rand) []SceneParams
}

// Phases plans the scene's phases.
func (s Scene) Phases(rng *rand.Rand) []SceneParams {
	if s.plan == nil {
		return nil
	}
	return s.plan(rng)
}

func fixed(phases ...SceneParams) func(*rand.Rand) []SceneParams {
	return func(*rand.Rand) []SceneParams { return phases }
}

// buildScenes lays out the whole show in playing order.
func buildScenes(cfg *config.Show) []Scene {
	scenes := []Scene{
		{Name: "countdown", plan: fixed(countdown(cfg)...)},
		{Name: "farewell", plan: fixed(firework(cfg, cfg.Captions.Farewell)...)},
		{Name: "transition", plan: fixed(transition(cfg))},
		{Name: "greeting", plan: fixed(firework(cfg, cfg.Captions.Greeting)...)},
	}
	for i := 1; i <= cfg.Finale.Shots; i++ {
		scenes = append(scenes, Scene{
			Name: fmt.Sprintf("finale %d", i),
			plan: func(rng *rand.Rand) []SceneParams { return finaleShot(cfg, rng) },
		})
	}
	return append(scenes, Scene{Name: "idle", plan: fixed(idle(cfg))})
}

func countdown(cfg *config.Show) []SceneParams {
	c := cfg.Countdown
	phases := make([]SceneParams, 0, max(c.From, 0))
	for n := c.From; n >= 1; n-- {
		phases = append(phases, SceneParams{
			Phase:       PhaseCountdown,
			Ticks:       c.Repeats,
			Caption:     strconv.Itoa(n),
			RevealAfter: -1,
			Stars:       c.Stars,
			Pace:        c.Pace,
		})
	}
	return phases
}

// firework is a single captioned shot from the bottom center, bursting a
// third of the way down the frame.
func firework(cfg *config.Show, caption string) []SceneParams {
	fw := cfg.Firework
	cx := cfg.Frame.Width / 2
	groundY := cfg.Frame.GroundY()

	return []SceneParams{
		{
			Phase:   PhaseLaunch,
			Ticks:   fw.Launch.Ticks,
			CenterX: cx,
			GroundY: groundY,
			ApexY:   fw.Launch.ApexY,
			Stars:   fw.Launch.Stars,
			Pace:    fw.Launch.Pace,
		},
		{
			Phase:       PhaseExplosion,
			Ticks:       fw.Explosion.Ticks,
			CenterX:     cx,
			BurstY:      cfg.Frame.Height / 3,
			Caption:     caption,
			RevealAfter: fw.Explosion.RevealAfter,
			Stars:       fw.Explosion.Stars,
			Particles:   fw.Explosion.Particles,
			Growth:      fw.Explosion.Growth,
			Pace:        fw.Explosion.Pace,
		},
		{
			Phase:       PhaseHold,
			Ticks:       fw.Hold.Ticks,
			Caption:     caption,
			RevealAfter: -1,
			Stars:       fw.Hold.Stars,
			Pace:        fw.Hold.Pace,
		},
	}
}

func transition(cfg *config.Show) SceneParams {
	t := cfg.Transition
	return SceneParams{
		Phase:       PhaseTransition,
		Ticks:       t.Ticks,
		Caption:     cfg.Captions.Transition,
		RevealAfter: -1,
		Stars:       t.BaseStars,
		StarStep:    t.StarStep,
		Pace:        t.Pace,
	}
}

// finaleShot picks a random column and apex, then launches and bursts
// there without a caption.
func finaleShot(cfg *config.Show, rng *rand.Rand) []SceneParams {
	f := cfg.Finale
	groundY := cfg.Frame.GroundY()
	cx := f.MarginX + rng.Intn(cfg.Frame.Width-2*f.MarginX)
	apexY := f.MinApexY + rng.Intn(cfg.Frame.Height/2)

	ticks := f.Launch.Ticks
	if ticks <= 0 {
		ticks = object.LaunchTicks(groundY, apexY, f.Launch.MinTicks)
	}

	return []SceneParams{
		{
			Phase:   PhaseLaunch,
			Ticks:   ticks,
			CenterX: cx,
			GroundY: groundY,
			ApexY:   apexY,
			Stars:   f.Launch.Stars,
			Pace:    f.Launch.Pace,
		},
		{
			Phase:       PhaseExplosion,
			Ticks:       f.Explosion.Ticks,
			CenterX:     cx,
			BurstY:      apexY,
			RevealAfter: f.Explosion.RevealAfter,
			Stars:       f.Explosion.Stars,
			Particles:   f.Explosion.Particles,
			Growth:      f.Explosion.Growth,
			Pace:        f.Explosion.Pace,
		},
	}
}

func idle(cfg *config.Show) SceneParams {
	return SceneParams{
		Phase:       PhaseIdle,
		Ticks:       1,
		Caption:     cfg.Captions.Exit,
		RevealAfter: -1,
	}
}
