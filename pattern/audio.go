//go:build cgo

package pattern

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
)

const (
	defaultAudioInterval = 20 * time.Millisecond
	audioSampleRate      = 44100
	audioFramesPerBuffer = 1024
	audioMinDB           = -60.0
	audioMaxDB           = -10.0
)

var (
	paMutex    sync.Mutex
	paRefCount int
)

// Audio scales a base color with the current microphone input level,
// mapped from a fixed dB window to [0, 1]. The portaudio stream is
// opened lazily on the first sample, so cloning an instance that
// never gets displayed costs nothing.
type Audio struct {
	color    Color
	interval time.Duration

	mu     sync.Mutex
	level  float64
	stream *portaudio.Stream
	failed bool
}

func NewAudio(color Color, interval time.Duration) *Audio {
	if interval <= 0 {
		interval = defaultAudioInterval
	}
	return &Audio{
		color:    color.Clamped(),
		interval: interval,
	}
}

func (s *Audio) Sample() Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stream == nil && !s.failed {
		s.openStream()
	}
	return s.color.Scaled(s.level)
}

func (s *Audio) RefreshInterval() time.Duration {
	return s.interval
}

// Clone returns a copy with its own, not yet opened stream.
func (s *Audio) Clone() Pattern {
	return NewAudio(s.color, s.interval)
}

// Close stops the capture stream. The pattern store calls this when
// the instance is dropped on a swap.
func (s *Audio) Close() error {
	s.mu.Lock()
	stream := s.stream
	s.stream = nil
	s.mu.Unlock()
	// Stop outside the lock: the callback may be blocked on s.mu and
	// Stop waits for the callback to drain.
	if stream == nil {
		return nil
	}
	err := stream.Stop()
	if cerr := stream.Close(); err == nil {
		err = cerr
	}
	releasePortaudio()
	return err
}

// openStream is called with s.mu held. On failure the pattern stays
// dark instead of retrying on every sample.
func (s *Audio) openStream() {
	if err := acquirePortaudio(); err != nil {
		slog.Error("Audio pattern: failed to initialize portaudio", "error", err)
		s.failed = true
		return
	}
	stream, err := portaudio.OpenDefaultStream(1, 0, audioSampleRate, audioFramesPerBuffer, s.process)
	if err != nil {
		slog.Error("Audio pattern: failed to open stream", "error", err)
		releasePortaudio()
		s.failed = true
		return
	}
	if err := stream.Start(); err != nil {
		slog.Error("Audio pattern: failed to start stream", "error", err)
		stream.Close()
		releasePortaudio()
		s.failed = true
		return
	}
	s.stream = stream
}

// process runs on the portaudio callback goroutine.
func (s *Audio) process(in []float32) {
	var sum float64
	for _, v := range in {
		sum += float64(v) * float64(v)
	}
	rms := math.Sqrt(sum / float64(len(in)))
	db := 20 * math.Log10(rms+1e-9)
	level := clamp01((db - audioMinDB) / (audioMaxDB - audioMinDB))

	s.mu.Lock()
	s.level = level
	s.mu.Unlock()
}

func acquirePortaudio() error {
	paMutex.Lock()
	defer paMutex.Unlock()
	if paRefCount == 0 {
		if err := portaudio.Initialize(); err != nil {
			return err
		}
	}
	paRefCount++
	return nil
}

func releasePortaudio() {
	paMutex.Lock()
	defer paMutex.Unlock()
	paRefCount--
	if paRefCount == 0 {
		if err := portaudio.Terminate(); err != nil {
			slog.Error("Audio pattern: failed to terminate portaudio", "error", err)
		}
	}
}
