// Package platform provides the presentation surface the render loop draws
// into and the window configuration of the host.
package platform

import (
	"errors"
	"image"
	"io"
	"sync"

	"spincube/internal/engine"
	"spincube/internal/render"
)

var ErrTargetBusy = errors.New("platform: draw target already acquired")

// CanvasFactory allocates one buffer of the swap chain.
type CanvasFactory func(w, h int) render.Canvas

func FrameBufferCanvas(w, h int) render.Canvas { return render.NewFrameBuffer(w, h) }
func SmoothCanvas(w, h int) render.Canvas      { return render.NewSmoothCanvas(w, h) }

// SwapChain is a multi-buffered engine.Surface. One goroutine acquires,
// draws, disposes and presents; others read the front buffer through View
// or Snapshot. The buffer being drawn is never the front buffer.
type SwapChain struct {
	mu        sync.Mutex
	newCanvas CanvasFactory
	buffers   []render.Canvas
	w, h      int

	front  int // last presented, -1 before the first Present
	back   int // handed out by AcquireDrawTarget, -1 when none
	ready  int // disposed and waiting for Present, -1 when none
	closed bool

	presented uint64
}

var _ engine.Surface = (*SwapChain)(nil)

func NewSwapChain(w, h, count int, newCanvas CanvasFactory) *SwapChain {
	if count < 2 {
		count = 2
	}
	if newCanvas == nil {
		newCanvas = FrameBufferCanvas
	}
	return &SwapChain{
		newCanvas: newCanvas,
		buffers:   make([]render.Canvas, count),
		w:         max(1, w),
		h:         max(1, h),
		front:     -1,
		back:      -1,
		ready:     -1,
	}
}

func (s *SwapChain) AcquireDrawTarget() (engine.DrawTarget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, engine.ErrSurfaceClosed
	}
	if s.back >= 0 {
		return nil, ErrTargetBusy
	}

	idx := -1
	for i := range s.buffers {
		if i != s.front && i != s.ready {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Every spare buffer holds an unpresented frame; drop it.
		idx = s.ready
		s.ready = -1
	}

	buf := s.buffers[idx]
	if buf != nil {
		if w, h := buf.Size(); w != s.w || h != s.h {
			release(buf)
			buf = nil
		}
	}
	if buf == nil {
		buf = s.newCanvas(s.w, s.h)
		s.buffers[idx] = buf
	}
	s.back = idx
	return &drawTarget{Canvas: buf, chain: s, idx: idx}, nil
}

// Present makes the most recently disposed frame the front buffer. With no
// new frame it keeps the current one.
func (s *SwapChain) Present() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return engine.ErrSurfaceClosed
	}
	if s.ready < 0 {
		return nil
	}
	s.front = s.ready
	s.ready = -1
	s.presented++
	return nil
}

func (s *SwapChain) dispose(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.back != idx {
		return
	}
	s.back = -1
	if s.closed {
		release(s.buffers[idx])
		s.buffers[idx] = nil
		return
	}
	s.ready = idx
}

// View calls fn with the front buffer while holding the chain's lock. It
// returns false if nothing has been presented yet.
func (s *SwapChain) View(fn func(img *image.RGBA)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.front < 0 || s.buffers[s.front] == nil {
		return false
	}
	fn(s.buffers[s.front].RGBA())
	return true
}

// Snapshot copies the front buffer. It returns nil before the first Present.
func (s *SwapChain) Snapshot() *image.RGBA {
	var out *image.RGBA
	s.View(func(img *image.RGBA) {
		out = image.NewRGBA(img.Rect)
		copy(out.Pix, img.Pix)
	})
	return out
}

// Resize changes the size of buffers handed out from the next acquisition
// on.
func (s *SwapChain) Resize(w, h int) {
	s.mu.Lock()
	s.w = max(1, w)
	s.h = max(1, h)
	s.mu.Unlock()
}

func (s *SwapChain) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w, s.h
}

// Presented is the number of frames made visible so far.
func (s *SwapChain) Presented() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presented
}

// Close fails every later acquisition with engine.ErrSurfaceClosed and
// frees the buffers. A frame still being drawn is freed when it is
// disposed.
func (s *SwapChain) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	for i, buf := range s.buffers {
		if i == s.back {
			continue
		}
		release(buf)
		s.buffers[i] = nil
	}
	s.front, s.ready = -1, -1
	return nil
}

func release(c render.Canvas) {
	if cl, ok := c.(io.Closer); ok {
		_ = cl.Close()
	}
}

type drawTarget struct {
	render.Canvas
	chain *SwapChain
	idx   int
}

func (t *drawTarget) Dispose() {
	t.chain.dispose(t.idx)
}
