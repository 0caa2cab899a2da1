package pattern

import "time"

const defaultConstantInterval = 500 * time.Millisecond

// Constant shows a single fixed color. A constant channel has nothing
// to animate, so it asks for a leisurely refresh interval and lets a
// faster pattern on the other channel dictate the tick rate.
type Constant struct {
	color    Color
	interval time.Duration
}

func NewConstant(color Color, interval time.Duration) *Constant {
	if interval <= 0 {
		interval = defaultConstantInterval
	}
	return &Constant{
		color:    color.Clamped(),
		interval: interval,
	}
}

func (s *Constant) Sample() Color {
	return s.color
}

func (s *Constant) RefreshInterval() time.Duration {
	return s.interval
}

func (s *Constant) Clone() Pattern {
	cp := *s
	return &cp
}
