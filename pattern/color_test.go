package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Color{R: 1}},
		{"00ff00", Color{G: 1}},
		{"#0000FF", Color{B: 1}},
		{"#000000ff", Color{W: 1}},
		{"#ffffffff", Color{R: 1, G: 1, B: 1, W: 1}},
		{"#000000", Color{}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseHexPartialValues(t *testing.T) {
	got, err := ParseHex("#80402010")
	require.NoError(t, err)
	assert.InDelta(t, 128.0/255, got.R, 1e-9)
	assert.InDelta(t, 64.0/255, got.G, 1e-9)
	assert.InDelta(t, 32.0/255, got.B, 1e-9)
	assert.InDelta(t, 16.0/255, got.W, 1e-9)
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#fff", "#fffffff", "#ggier0", "#12345", "red"} {
		_, err := ParseHex(in)
		assert.Error(t, err, in)
	}
}

func TestHexRoundtrip(t *testing.T) {
	for _, in := range []string{"#00bfbe10", "#ffc90100", "#00000000", "#ffffffff"} {
		c, err := ParseHex(in)
		require.NoError(t, err)
		assert.Equal(t, in, c.Hex())
	}
}

func TestClamped(t *testing.T) {
	c := Color{R: -0.5, G: 1.5, B: 0.25, W: 2}.Clamped()
	assert.Equal(t, Color{R: 0, G: 1, B: 0.25, W: 1}, c)
}

func TestScaled(t *testing.T) {
	c := Color{R: 0.5, G: 1, B: 0.2, W: 0.8}
	assert.Equal(t, Color{R: 0.25, G: 0.5, B: 0.1, W: 0.4}, c.Scaled(0.5))
	big := c.Scaled(3)
	assert.Equal(t, 1.0, big.R)
	assert.Equal(t, 1.0, big.G)
	assert.InDelta(t, 0.6, big.B, 1e-9)
	assert.Equal(t, 1.0, big.W)
	assert.True(t, c.Scaled(0).IsOff())
}

func TestIsOff(t *testing.T) {
	assert.True(t, Color{}.IsOff())
	assert.False(t, Color{W: 0.001}.IsOff())
}
