package pattern

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

const nightInterval = time.Second

// Night shows its color between sunset and sunrise at the configured
// location and stays dark during the day.
type Night struct {
	color     Color
	latitude  float64
	longitude float64
	now       func() time.Time
}

func NewNight(color Color, latitude, longitude float64) *Night {
	return &Night{
		color:     color.Clamped(),
		latitude:  latitude,
		longitude: longitude,
		now:       time.Now,
	}
}

func (s *Night) Sample() Color {
	now := s.now()
	rise, set := sunrise.SunriseSunset(s.latitude, s.longitude, now.Year(), now.Month(), now.Day())
	if now.After(rise) && now.Before(set) {
		// During the day - between sunrise and sunset
		return Color{}
	}
	return s.color
}

func (s *Night) RefreshInterval() time.Duration {
	return nightInterval
}

func (s *Night) Clone() Pattern {
	cp := *s
	return &cp
}
