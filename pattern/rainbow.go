package pattern

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	defaultRainbowPeriod   = 10 * time.Second
	defaultRainbowInterval = 40 * time.Millisecond
)

// Rainbow sweeps the hue circle once per period at full saturation.
// The white channel stays dark, it has no place on the hue circle.
type Rainbow struct {
	period   time.Duration
	interval time.Duration
	start    time.Time
}

func NewRainbow(period, interval time.Duration) *Rainbow {
	if period <= 0 {
		period = defaultRainbowPeriod
	}
	if interval <= 0 {
		interval = defaultRainbowInterval
	}
	return &Rainbow{
		period:   period,
		interval: interval,
		start:    time.Now(),
	}
}

func (s *Rainbow) Sample() Color {
	hue := math.Mod(float64(time.Since(s.start))/float64(s.period)*360, 360)
	c := colorful.Hsv(hue, 1, 1)
	return Color{R: c.R, G: c.G, B: c.B}.Clamped()
}

func (s *Rainbow) RefreshInterval() time.Duration {
	return s.interval
}

func (s *Rainbow) Clone() Pattern {
	cp := *s
	cp.start = time.Now()
	return &cp
}
