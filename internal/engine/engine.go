// Package engine owns one running particle scene: it rebuilds the particle
// set whenever the viewport or theme changes and drives the per-frame
// simulate-and-draw loop through a host Scheduler.
package engine

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/particle-graph/internal/particle"
	"github.com/iburimskiy/particle-graph/internal/render"
	"github.com/iburimskiy/particle-graph/internal/theme"
)

// State is the loop state.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Options configures an Engine. Zero values pick defaults.
type Options struct {
	Theme theme.Mode
	// Rand seeds generation; nil uses a time-seeded source.
	Rand *rand.Rand
	// Now is the wall clock that drives pulses; nil uses time.Now.
	Now    func() time.Time
	Logger *slog.Logger
}

// Engine is not safe for concurrent use; the host calls it from the same
// goroutine that runs its frames and resize notifications.
type Engine struct {
	surface  render.Surface
	frames   Scheduler
	viewport Viewport

	mode theme.Mode
	rng  *rand.Rand
	now  func() time.Time
	log  *slog.Logger

	state        State
	frame        FrameID
	hasFrame     bool
	removeResize func()
	paused       bool

	width, height float64
	particles     []particle.Particle
	ticks         uint64
	builds        uint64
}

func New(surface render.Surface, frames Scheduler, viewport Viewport, opts Options) *Engine {
	e := &Engine{
		surface:  surface,
		frames:   frames,
		viewport: viewport,
		mode:     opts.Theme,
		rng:      opts.Rand,
		now:      opts.Now,
		log:      opts.Logger,
	}
	if e.mode == "" {
		e.mode = theme.Dark
	}
	if e.rng == nil {
		seed := uint64(time.Now().UnixNano())
		e.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.log == nil {
		e.log = slog.New(slog.DiscardHandler)
	}
	return e
}

// Mount sizes the canvas, builds the scene and starts the loop. Without a
// surface, scheduler or viewport it does nothing. Mounting a running engine
// is a no-op.
//
// Only an untyped nil counts as a missing surface. Surface implementations
// backed by a pointer treat a nil receiver as an empty canvas.
func (e *Engine) Mount() {
	if e.state == Running {
		return
	}
	if missing := e.missing(); missing != "" {
		e.log.Warn("particle engine not mounted", "missing", missing)
		return
	}

	e.removeResize = e.viewport.OnResize(e.handleResize)
	e.state = Running
	e.handleResize(e.viewport.Size())
	e.schedule()
	e.log.Debug("particle engine mounted", "width", e.width, "height", e.height, "theme", string(e.mode))
}

func (e *Engine) missing() string {
	switch {
	case e.surface == nil:
		return "drawing surface"
	case e.frames == nil:
		return "frame scheduler"
	case e.viewport == nil:
		return "viewport"
	}
	return ""
}

// Unmount stops the loop and releases the resize listener and any pending
// frame. It is safe to call from inside a frame and more than once.
func (e *Engine) Unmount() {
	if e.state == Stopped {
		return
	}
	e.state = Stopped
	if e.hasFrame {
		e.frames.CancelFrame(e.frame)
		e.hasFrame = false
	}
	if e.removeResize != nil {
		e.removeResize()
		e.removeResize = nil
	}
	e.log.Debug("particle engine unmounted", "ticks", e.ticks)
}

// SetTheme switches palettes. A different mode rebuilds the particle set so
// every stored color matches; the same mode is a no-op.
func (e *Engine) SetTheme(m theme.Mode) {
	if m == e.mode {
		return
	}
	e.mode = m
	if e.state == Running {
		e.rebuild()
	}
}

// SetPaused freezes motion. Frames keep painting so pulses stay animated.
func (e *Engine) SetPaused(p bool) { e.paused = p }

func (e *Engine) Paused() bool      { return e.paused }
func (e *Engine) State() State      { return e.state }
func (e *Engine) Theme() theme.Mode { return e.mode }

// Size is the current canvas size in pixels.
func (e *Engine) Size() (width, height float64) { return e.width, e.height }

// Ticks counts frames run since construction.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Builds counts particle set rebuilds since construction.
func (e *Engine) Builds() uint64 { return e.builds }

// Particles exposes the live set. Callers must not retain or modify it.
func (e *Engine) Particles() []particle.Particle { return e.particles }

// Stats summarizes the live set.
func (e *Engine) Stats() particle.Stats { return particle.Summarize(e.particles) }

// Render paints the current scene onto s without advancing it.
func (e *Engine) Render(s render.Surface) {
	render.Draw(s, e.scene())
}

func (e *Engine) handleResize(width, height int) {
	if r, ok := e.surface.(render.Resizer); ok {
		r.Resize(width, height)
	}
	e.width, e.height = float64(max(width, 0)), float64(max(height, 0))
	e.rebuild()
}

func (e *Engine) rebuild() {
	e.particles = particle.Generate(e.rng, e.width, e.height, e.mode)
	e.builds++
	e.log.Debug("particles rebuilt", "count", len(e.particles), "width", e.width, "height", e.height)
}

func (e *Engine) schedule() {
	e.frame = e.frames.RequestFrame(e.tick)
	e.hasFrame = true
}

// tick is one frame: simulate, draw, then request the next frame if still
// running.
func (e *Engine) tick() {
	e.hasFrame = false
	if e.state != Running {
		return
	}
	e.ticks++

	if !e.paused {
		particle.Step(e.particles, e.width, e.height)
	}
	render.Draw(e.surface, e.scene())

	if e.state == Running {
		e.schedule()
	}
}

func (e *Engine) scene() render.Scene {
	return render.Scene{
		Particles: e.particles,
		Mode:      e.mode,
		Width:     e.width,
		Time:      float64(e.now().UnixNano()) / float64(time.Second),
	}
}
