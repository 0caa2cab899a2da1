package pattern

import (
	"math"
	"time"
)

const (
	defaultPulsePeriod   = 2 * time.Second
	defaultPulseInterval = 20 * time.Millisecond
)

// Pulse breathes a base color with a raised-cosine brightness curve
// over a configurable period. Slow and normal pulsing are the same
// pattern with different periods.
type Pulse struct {
	color    Color
	period   time.Duration
	interval time.Duration
	start    time.Time
}

func NewPulse(color Color, period, interval time.Duration) *Pulse {
	if period <= 0 {
		period = defaultPulsePeriod
	}
	if interval <= 0 {
		interval = defaultPulseInterval
	}
	return &Pulse{
		color:    color.Clamped(),
		period:   period,
		interval: interval,
		start:    time.Now(),
	}
}

func (s *Pulse) Sample() Color {
	phase := 2 * math.Pi * float64(time.Since(s.start)) / float64(s.period)
	brightness := 0.5 - 0.5*math.Cos(phase)
	return s.color.Scaled(brightness)
}

func (s *Pulse) RefreshInterval() time.Duration {
	return s.interval
}

// Clone restarts the breathing cycle so a freshly swapped-in pulse
// always fades up from dark.
func (s *Pulse) Clone() Pattern {
	cp := *s
	cp.start = time.Now()
	return &cp
}
