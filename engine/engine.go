package engine

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/leapglow/rgblightd/pattern"
)

// Sink receives every frame the engine computes. Implementations must
// be fast relative to the tick cadence: any blocking here delays the
// whole animation.
type Sink interface {
	Display(left, right pattern.Color)
}

// Transitions configures the interpolation that bridges pattern
// swaps. The zero value disables transitions, swaps then become hard
// cuts.
type Transitions struct {
	Enabled  bool
	Duration time.Duration
	Step     time.Duration
}

// Handler drives the two RGBW channels. It owns the active patterns,
// runs the worker loop that samples them at the faster of the two
// refresh intervals, and interpolates from the last displayed colors
// to a newly set pattern when transitions are enabled. All methods
// are safe for concurrent use.
type Handler struct {
	sink        Sink
	transitions Transitions

	// mu guards left, right, changed and running. It is held for
	// bookkeeping and sampling only, never across a sleep or a sink
	// call, so swap callers are never blocked by a running
	// transition.
	mu      sync.Mutex
	left    pattern.Pattern
	right   pattern.Pattern
	changed bool
	running bool

	wg sync.WaitGroup
}

// NewHandler creates a Handler showing defaultColor on both channels.
func NewHandler(sink Sink, defaultColor pattern.Color, transitions Transitions) *Handler {
	return &Handler{
		sink:        sink,
		transitions: transitions,
		left:        pattern.NewConstant(defaultColor, 0),
		right:       pattern.NewConstant(defaultColor, 0),
	}
}

// Start launches the worker goroutine. Calling Start on a running
// Handler does nothing.
func (s *Handler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.wg.Add(1)
	go s.worker()
}

// Stop ends the worker loop and blocks until it has exited. The loop
// only checks the flag between ticks, so Stop can take up to one tick
// plus any in-flight transition to return.
func (s *Handler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()
	s.wg.Wait()
}

// Close stops the worker and releases both patterns.
func (s *Handler) Close() {
	s.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	closePattern(s.left)
	closePattern(s.right)
}

// SetPatternLeft replaces the left channel's pattern with an
// independent clone of p. If enabled, a transition into the new
// pattern starts on the next worker tick.
func (s *Handler) SetPatternLeft(p pattern.Pattern) {
	s.mu.Lock()
	defer s.mu.Unlock()
	closePattern(s.left)
	s.left = p.Clone()
	s.changed = true
}

// SetPatternRight replaces the right channel's pattern with an
// independent clone of p. If enabled, a transition into the new
// pattern starts on the next worker tick.
func (s *Handler) SetPatternRight(p pattern.Pattern) {
	s.mu.Lock()
	defer s.mu.Unlock()
	closePattern(s.right)
	s.right = p.Clone()
	s.changed = true
}

// SetPatterns replaces both channels with independent clones of p, so
// a stateful pattern evolves separately on each side.
func (s *Handler) SetPatterns(p pattern.Pattern) {
	s.mu.Lock()
	defer s.mu.Unlock()
	closePattern(s.left)
	closePattern(s.right)
	s.left = p.Clone()
	s.right = p.Clone()
	s.changed = true
}

// closePattern releases pattern-owned resources (audio streams and
// the like) when an instance is dropped from the store.
func closePattern(p pattern.Pattern) {
	if c, ok := p.(io.Closer); ok {
		if err := c.Close(); err != nil {
			slog.Warn("closing replaced pattern", "error", err)
		}
	}
}

// worker continuously polls the patterns for the colors to be
// displayed and forwards them to the sink.
func (s *Handler) worker() {
	defer s.wg.Done()

	var colorLeft, colorRight pattern.Color

	for {
		s.mu.Lock()
		if !s.running {
			s.mu.Unlock()
			return
		}

		// A pattern swap happened since the last tick. Capture the
		// transition targets under the lock, then interpolate without
		// it. A swap landing mid-transition simply raises the flag
		// again and a fresh transition starts next iteration.
		var tr *transition
		if s.changed {
			if s.transitions.Enabled {
				tr = newTransition(colorLeft, colorRight, s.left.Sample(), s.right.Sample(),
					s.transitions.Duration, s.transitions.Step)
			}
			s.changed = false
		}
		s.mu.Unlock()

		if tr != nil {
			colorLeft, colorRight = tr.run(s.sink)
		}

		s.mu.Lock()
		// The fastest pattern determines the interval.
		// TODO: communicate the chosen interval back to the patterns,
		// so a slower pattern can sync its speed instead of being
		// over-sampled.
		interval := minInterval(s.left, s.right)
		colorLeft = s.left.Sample()
		colorRight = s.right.Sample()
		s.mu.Unlock()

		s.sink.Display(colorLeft, colorRight)
		time.Sleep(interval)
	}
}

func minInterval(a, b pattern.Pattern) time.Duration {
	interval := a.RefreshInterval()
	if r := b.RefreshInterval(); r < interval {
		interval = r
	}
	return interval
}
