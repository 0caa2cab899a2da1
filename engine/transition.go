package engine

import (
	"time"

	"github.com/leapglow/rgblightd/pattern"
)

// transition is one bounded interpolation from the last displayed
// colors toward the colors of a newly selected pattern pair. It is
// strictly linear per RGBW component, no color-space aware blending.
type transition struct {
	left       pattern.Color
	right      pattern.Color
	deltaLeft  pattern.Color
	deltaRight pattern.Color
	steps      int
	step       time.Duration
}

// newTransition precomputes the per-step component deltas. A duration
// shorter than one step truncates to zero steps: the transition is
// skipped and the next regular tick shows the target directly. This
// also guards against dividing by a zero step.
func newTransition(fromLeft, fromRight, toLeft, toRight pattern.Color, duration, step time.Duration) *transition {
	tr := &transition{
		left:  fromLeft,
		right: fromRight,
		step:  step,
	}
	if step > 0 {
		tr.steps = int(duration / step)
	}
	if tr.steps > 0 {
		tr.deltaLeft = componentDelta(fromLeft, toLeft, tr.steps)
		tr.deltaRight = componentDelta(fromRight, toRight, tr.steps)
	}
	return tr
}

// run emits the intermediate frames at step cadence and returns the
// last displayed colors. The final frame is only approximately the
// target; the next regular tick resamples the patterns and corrects
// the accumulated rounding drift.
func (tr *transition) run(sink Sink) (pattern.Color, pattern.Color) {
	for i := 0; i < tr.steps; i++ {
		tr.left = advance(tr.left, tr.deltaLeft)
		tr.right = advance(tr.right, tr.deltaRight)
		sink.Display(tr.left, tr.right)
		time.Sleep(tr.step)
	}
	return tr.left, tr.right
}

func componentDelta(from, to pattern.Color, steps int) pattern.Color {
	n := float64(steps)
	return pattern.Color{
		R: (to.R - from.R) / n,
		G: (to.G - from.G) / n,
		B: (to.B - from.B) / n,
		W: (to.W - from.W) / n,
	}
}

// advance moves one step and clamps against floating point overshoot.
func advance(c, delta pattern.Color) pattern.Color {
	return pattern.Color{
		R: c.R + delta.R,
		G: c.G + delta.G,
		B: c.B + delta.B,
		W: c.W + delta.W,
	}.Clamped()
}
