package platform

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/stianeikeland/go-rpio/v4"

	"github.com/leapglow/rgblightd/config"
	"github.com/leapglow/rgblightd/pattern"
)

// RPiPlatform drives the SPI attached PWM board on the Raspberry Pi.
// Every Display call exchanges one 8 byte frame: the left channel's
// R,G,B,W bytes followed by the right channel's.
type RPiPlatform struct {
	conf     *config.Config
	spiMutex sync.Mutex
	buffer   []byte
	open     bool
}

func NewRPiPlatform(conf *config.Config) *RPiPlatform {
	return &RPiPlatform{
		conf:   conf,
		buffer: make([]byte, 8),
	}
}

func (s *RPiPlatform) Start() error {
	slog.Info("Initialise GPIO and SPI...")
	if err := rpio.Open(); err != nil {
		return fmt.Errorf("failed to open rpio: %w", err)
	}
	if err := rpio.SpiBegin(rpio.Spi0); err != nil {
		rpio.Close()
		return fmt.Errorf("failed to begin spi: %w", err)
	}
	rpio.SpiSpeed(s.conf.Hardware.SPIFrequency)

	s.spiMutex.Lock()
	s.open = true
	s.spiMutex.Unlock()
	return nil
}

func (s *RPiPlatform) Stop() {
	s.spiMutex.Lock()
	defer s.spiMutex.Unlock()
	if !s.open {
		return
	}
	// Leave the lights dark on the way out.
	rpio.SpiExchange(encodeFrame(s.buffer, pattern.Color{}, pattern.Color{}, s.conf.Hardware.ColorCorrection))
	rpio.SpiEnd(rpio.Spi0)
	if err := rpio.Close(); err != nil {
		slog.Error("Error closing rpio", "error", err)
	}
	s.open = false
}

func (s *RPiPlatform) Display(left, right pattern.Color) {
	s.spiMutex.Lock()
	defer s.spiMutex.Unlock()
	if !s.open {
		return
	}
	rpio.SpiExchange(encodeFrame(s.buffer, left, right, s.conf.Hardware.ColorCorrection))
}

// encodeFrame scales both colors into buf. The per component color
// correction factors are applied before scaling to a byte, and the
// result is clamped so correction factors above 1.0 cannot overflow.
func encodeFrame(buf []byte, left, right pattern.Color, corr []float64) []byte {
	components := [8]float64{
		left.R * corr[0], left.G * corr[1], left.B * corr[2], left.W * corr[3],
		right.R * corr[0], right.G * corr[1], right.B * corr[2], right.W * corr[3],
	}
	for i, v := range components {
		buf[i] = byte(math.Min(math.Max(v, 0)*255, 255))
	}
	return buf
}
