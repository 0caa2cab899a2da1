package pattern

import "time"

const defaultBlinkPeriod = time.Second

// Blink alternates between its color and dark on every sample. The
// toggle state lives in the pattern instance, which makes Blink the
// simplest stateful pattern: a clone starts its own on/off cycle.
type Blink struct {
	color Color
	half  time.Duration
	on    bool
}

// NewBlink creates a blinker with a full on/off cycle of period.
func NewBlink(color Color, period time.Duration) *Blink {
	if period <= 0 {
		period = defaultBlinkPeriod
	}
	return &Blink{
		color: color.Clamped(),
		half:  period / 2,
	}
}

func (s *Blink) Sample() Color {
	s.on = !s.on
	if s.on {
		return s.color
	}
	return Color{}
}

func (s *Blink) RefreshInterval() time.Duration {
	return s.half
}

func (s *Blink) Clone() Pattern {
	cp := *s
	return &cp
}
