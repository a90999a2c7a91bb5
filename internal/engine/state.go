// Package engine drives the cube pipeline frame by frame.
package engine

import (
	"math"
	"sync/atomic"
)

// State is the mutable part of the renderer: the rotation angle, advanced
// only by the loop, and the wireframe flag, flipped from the UI.
//
// The flag is a relaxed single-writer single-reader value. A toggle becomes
// visible to the loop no later than the next frame.
type State struct {
	angle     atomic.Uint64 // math.Float64bits
	wireframe atomic.Bool
}

func NewState() *State {
	return &State{}
}

// Angle returns the most recently rendered angle in radians.
func (s *State) Angle() float64 {
	return math.Float64frombits(s.angle.Load())
}

// advance adds step to the angle and returns the new value. Only the loop
// goroutine calls it.
func (s *State) advance(step float64) float64 {
	a := s.Angle() + step
	s.angle.Store(math.Float64bits(a))
	return a
}

func (s *State) Wireframe() bool {
	return s.wireframe.Load()
}

func (s *State) SetWireframe(on bool) {
	s.wireframe.Store(on)
}

// Toggle flips between filled and wireframe rendering and returns the new
// mode.
func (s *State) Toggle() bool {
	for {
		old := s.wireframe.Load()
		if s.wireframe.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
