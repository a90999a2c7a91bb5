package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"spincube/internal/geom"
	"spincube/internal/render"
)

var ErrAlreadyRunning = errors.New("engine: loop already running")

type Options struct {
	// AngleStep is added to the angle once per frame, regardless of how
	// long the frame took.
	AngleStep float64
	// FrameDelay is slept after every presented frame.
	FrameDelay time.Duration
	Style      render.Style
}

func DefaultOptions() Options {
	return Options{
		AngleStep:  0.01,
		FrameDelay: 16 * time.Millisecond,
		Style:      render.DefaultStyle(),
	}
}

// Loop renders the cube onto a Surface. RenderFrame drives it by hand while
// stopped; Start runs it on a dedicated goroutine.
type Loop struct {
	surface Surface
	state   *State
	opts    Options
	stats   Stats

	tris    []geom.Triangle
	running atomic.Bool
}

func New(surface Surface, state *State, opts Options) *Loop {
	if state == nil {
		state = NewState()
	}
	return &Loop{
		surface: surface,
		state:   state,
		opts:    opts,
		tris:    make([]geom.Triangle, 0, len(geom.CubeFaces)),
	}
}

func (l *Loop) State() *State    { return l.state }
func (l *Loop) Stats() *Stats    { return &l.stats }
func (l *Loop) Running() bool    { return l.running.Load() }
func (l *Loop) Options() Options { return l.opts }

// RenderFrame advances the angle and draws and presents one frame. It fails
// with ErrAlreadyRunning while the loop goroutine owns the frame.
func (l *Loop) RenderFrame() error {
	if l.running.Load() {
		return ErrAlreadyRunning
	}
	return l.renderFrame()
}

func (l *Loop) renderFrame() error {
	angle := l.state.advance(l.opts.AngleStep)

	target, err := l.surface.AcquireDrawTarget()
	if err != nil {
		return fmt.Errorf("acquire draw target: %w", err)
	}
	w, h := target.Size()
	target.Clear(l.opts.Style.Background)

	l.tris = geom.AppendFrame(l.tris[:0], angle, float64(w), float64(h))
	err = render.Rasterize(target, l.tris, l.state.Wireframe(), l.opts.Style)
	target.Dispose()
	if err != nil {
		return fmt.Errorf("rasterize: %w", err)
	}

	if err := l.surface.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	if l.stats.frame(time.Now()) {
		Logger().Debug("frame rate", "fps", l.stats.FPS(), "frames", l.stats.Frames())
	}
	return nil
}

// Start launches the loop goroutine. The loop runs until ctx is cancelled,
// the returned Handle is stopped, or a frame fails.
func (l *Loop) Start(ctx context.Context) (*Handle, error) {
	if !l.running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}
	go l.run(ctx, h)
	return h, nil
}

func (l *Loop) run(ctx context.Context, h *Handle) {
	defer close(h.done)
	defer l.running.Store(false)

	log := Logger()
	log.Info("render loop started", "frame_delay", l.opts.FrameDelay, "angle_step", l.opts.AngleStep)

	timer := time.NewTimer(l.opts.FrameDelay)
	timer.Stop()
	defer timer.Stop()

	for ctx.Err() == nil {
		if err := l.renderFrame(); err != nil {
			h.err = err
			log.Warn("render loop stopped", "error", err, "frames", l.stats.Frames())
			return
		}

		timer.Reset(l.opts.FrameDelay)
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
	}
	log.Info("render loop stopped", "frames", l.stats.Frames())
}

// Handle controls a started Loop.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Stop asks the loop to exit and blocks until its goroutine has returned.
// The result is the error that ended the loop, nil for a requested stop.
func (h *Handle) Stop() error {
	h.cancel()
	<-h.done
	return h.err
}

// Done is closed once the loop goroutine has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err returns the error that ended the loop, or nil while it is still
// running or after a requested stop.
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}
