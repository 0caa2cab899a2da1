package platform

import (
	"os"

	"github.com/leapglow/rgblightd/config"
	"github.com/leapglow/rgblightd/pattern"
)

// Platform is the output side of the daemon: something that can show
// one RGBW color per channel. Display satisfies engine.Sink.
type Platform interface {
	Start() error
	Stop()
	Display(left, right pattern.Color)
}

// NewPlatform selects the real SPI hardware or the simulation TUI
// depending on the configuration.
func NewPlatform(conf *config.Config, ossignal chan os.Signal) Platform {
	if conf.RealHW {
		return NewRPiPlatform(conf)
	}
	return NewTUIPlatform(conf, ossignal)
}
