package pattern

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/exp/maps"
)

// Pattern is a time-varying color source for one output channel. The
// engine owns exactly one pattern per channel and samples it from a
// single goroutine, so implementations may keep unguarded internal
// state as long as Clone returns a fully independent copy.
type Pattern interface {
	// Sample returns the color the channel should show right now.
	Sample() Color
	// RefreshInterval is the sampling interval the pattern would like
	// to be polled at. Must be positive.
	RefreshInterval() time.Duration
	// Clone returns an independently owned copy. State of the
	// original must never leak into the clone and vice versa.
	Clone() Pattern
}

// Options carries the knobs shared by the pattern constructors. Zero
// fields fall back to per-pattern defaults.
type Options struct {
	Color     Color
	Period    time.Duration
	Interval  time.Duration
	Latitude  float64
	Longitude float64
}

var builders = map[string]func(Options) Pattern{
	"constant": func(o Options) Pattern { return NewConstant(o.Color, o.Interval) },
	"blink":    func(o Options) Pattern { return NewBlink(o.Color, o.Period) },
	"pulse":    func(o Options) Pattern { return NewPulse(o.Color, o.Period, o.Interval) },
	"rainbow":  func(o Options) Pattern { return NewRainbow(o.Period, o.Interval) },
	"night":    func(o Options) Pattern { return NewNight(o.Color, o.Latitude, o.Longitude) },
	"audio":    func(o Options) Pattern { return NewAudio(o.Color, o.Interval) },
}

// New builds a pattern by its configured kind name.
func New(kind string, opts Options) (Pattern, error) {
	builder, ok := builders[strings.ToLower(kind)]
	if !ok {
		known := maps.Keys(builders)
		sort.Strings(known)
		return nil, fmt.Errorf("unknown pattern kind %q (known kinds: %s)", kind, strings.Join(known, ", "))
	}
	return builder(opts), nil
}
