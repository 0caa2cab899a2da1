//go:build !cgo

package pattern

import (
	"log/slog"
	"time"
)

const defaultAudioInterval = 20 * time.Millisecond

// Audio is a stub for builds without CGO. It warns once and stays
// dark.
type Audio struct {
	interval time.Duration
}

func NewAudio(color Color, interval time.Duration) *Audio {
	if interval <= 0 {
		interval = defaultAudioInterval
	}
	slog.Warn("Audio pattern: audio support is disabled in this build (requires CGO)")
	return &Audio{interval: interval}
}

func (s *Audio) Sample() Color {
	return Color{}
}

func (s *Audio) RefreshInterval() time.Duration {
	return s.interval
}

func (s *Audio) Clone() Pattern {
	cp := *s
	return &cp
}
