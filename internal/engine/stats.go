package engine

import (
	"math"
	"sync/atomic"
	"time"
)

// Stats counts presented frames and samples the frame rate once a second.
// The loop writes it; any goroutine may read it.
type Stats struct {
	frames atomic.Uint64
	fps    atomic.Uint64 // math.Float64bits

	windowStart  time.Time
	windowFrames int
}

func (s *Stats) Frames() uint64 {
	return s.frames.Load()
}

// FPS is the rate measured over the last full second, zero until one has
// elapsed.
func (s *Stats) FPS() float64 {
	return math.Float64frombits(s.fps.Load())
}

// frame records a presented frame at now and reports whether a new FPS
// sample was taken.
func (s *Stats) frame(now time.Time) bool {
	s.frames.Add(1)
	if s.windowStart.IsZero() {
		s.windowStart = now
		return false
	}
	s.windowFrames++
	elapsed := now.Sub(s.windowStart)
	if elapsed < time.Second {
		return false
	}
	s.fps.Store(math.Float64bits(float64(s.windowFrames) / elapsed.Seconds()))
	s.windowStart = now
	s.windowFrames = 0
	return true
}
