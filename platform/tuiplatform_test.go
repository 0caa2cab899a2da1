package platform

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapglow/rgblightd/config"
	"github.com/leapglow/rgblightd/pattern"
)

func TestDisplayTag(t *testing.T) {
	assert.Equal(t, "[#ff0000]", displayTag(pattern.Color{R: 1}))
	assert.Equal(t, "[#000000]", displayTag(pattern.Color{}))
	// The white channel brightens all three RGB components.
	assert.Equal(t, "[#ffffff]", displayTag(pattern.Color{W: 1}))
	assert.Equal(t, "[#ff8080]", displayTag(pattern.Color{R: 0.5, W: 0.5}))
}

func TestRenderHistoryKeepsRecentFrames(t *testing.T) {
	p := NewTUIPlatform(&config.Config{}, make(chan os.Signal, 1))

	for i := 0; i < 3; i++ {
		p.history.PushBack(frame{left: pattern.Color{R: 1}, right: pattern.Color{B: 1}})
	}

	out := p.renderHistory()
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, 3, strings.Count(lines[0], "▀"))
	assert.Equal(t, 3, strings.Count(lines[1], "▄"))
	assert.Contains(t, lines[0], "[#ff0000]")
	assert.Contains(t, lines[1], "[#0000ff]")
}

func TestDisplayCoalescesFrames(t *testing.T) {
	p := NewTUIPlatform(&config.Config{}, make(chan os.Signal, 1))

	// Display must never block, no matter how fast the engine runs.
	for i := 0; i < 100; i++ {
		p.Display(pattern.Color{R: float64(i) / 100}, pattern.Color{})
	}

	got := p.frames.Value()
	assert.InDelta(t, 0.99, got.left.R, 1e-9, "only the latest frame is kept")
}

func TestNewPlatformSelection(t *testing.T) {
	sig := make(chan os.Signal, 1)
	assert.IsType(t, &RPiPlatform{}, NewPlatform(&config.Config{RealHW: true}, sig))
	assert.IsType(t, &TUIPlatform{}, NewPlatform(&config.Config{}, sig))
}
