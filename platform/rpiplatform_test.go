package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapglow/rgblightd/pattern"
)

func TestEncodeFrame(t *testing.T) {
	buf := make([]byte, 8)
	neutral := []float64{1, 1, 1, 1}

	got := encodeFrame(buf,
		pattern.Color{R: 1, G: 0.5, B: 0, W: 0.2},
		pattern.Color{R: 0, G: 0, B: 1, W: 1},
		neutral)

	assert.Equal(t, []byte{255, 127, 0, 51, 0, 0, 255, 255}, got)
}

func TestEncodeFrameColorCorrection(t *testing.T) {
	buf := make([]byte, 8)
	corr := []float64{0.5, 1, 2, 0}

	got := encodeFrame(buf,
		pattern.Color{R: 1, G: 1, B: 1, W: 1},
		pattern.Color{R: 0.5, G: 0.5, B: 0.5, W: 0.5},
		corr)

	// Factors above 1.0 clamp at 255, the zeroed white channel goes dark.
	assert.Equal(t, []byte{127, 255, 255, 0, 63, 127, 255, 0}, got)
}

func TestEncodeFrameAllDark(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	got := encodeFrame(buf, pattern.Color{}, pattern.Color{}, []float64{1, 1, 1, 1})
	assert.Equal(t, make([]byte, 8), got)
}
