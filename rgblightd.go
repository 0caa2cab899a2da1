package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/leapglow/rgblightd/config"
	"github.com/leapglow/rgblightd/engine"
	"github.com/leapglow/rgblightd/logging"
	"github.com/leapglow/rgblightd/pattern"
	"github.com/leapglow/rgblightd/platform"
)

func main() {
	cfile := flag.String("config", "config.yml", "path to the configuration file")
	realhw := flag.Bool("real", false, "drive the real SPI hardware instead of the simulation TUI")
	flag.Parse()

	conf, err := config.ReadConfig(*cfile, *realhw)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Under the TUI, logs are buffered until the log pane exists.
	if err := logging.Init(!conf.RealHW, conf.Logging.Level, conf.Logging.Format, conf.Logging.File); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ossignal := make(chan os.Signal, 1)
	signal.Notify(ossignal, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	plt := platform.NewPlatform(conf, ossignal)
	if err := plt.Start(); err != nil {
		slog.Error("Starting platform failed", "error", err)
		logging.Close()
		os.Exit(1)
	}

	defaultColor, _ := pattern.ParseHex(conf.DefaultColor)
	handler := engine.NewHandler(plt, defaultColor, engine.Transitions{
		Enabled:  conf.Transitions.Enabled,
		Duration: conf.Transitions.Duration,
		Step:     conf.Transitions.Step,
	})
	handler.Start()
	applyPatterns(handler, conf)

	watchStop := make(chan struct{})
	changes, err := config.Watch(conf.Configfile, watchStop)
	if err != nil {
		slog.Warn("Config watcher disabled", "error", err)
	}

	slog.Info("rgblightd running", "config", conf.Configfile, "realhw", conf.RealHW)

	for run := true; run; {
		select {
		case <-changes:
			slog.Info("Config file changed - reloading patterns")
			reload(handler, conf)
		case sig := <-ossignal:
			if sig == syscall.SIGHUP {
				slog.Info("Received SIGHUP - reloading patterns")
				reload(handler, conf)
			} else {
				slog.Info("Shutting down", "signal", sig)
				run = false
			}
		}
	}

	close(watchStop)
	handler.Close()
	plt.Stop()
	logging.Close()
}

// reload re-reads the config file and re-applies the configured
// patterns through the swap protocol. Transition timing and hardware
// settings stay as they were at startup.
func reload(handler *engine.Handler, conf *config.Config) {
	fresh, err := config.ReadConfig(conf.Configfile, conf.RealHW)
	if err != nil {
		slog.Error("Reloading config failed", "error", err)
		return
	}
	applyPatterns(handler, fresh)
}

func applyPatterns(handler *engine.Handler, conf *config.Config) {
	if conf.Both != nil {
		if p, err := buildPattern(conf.Both); err != nil {
			slog.Error("Building pattern failed", "channel", "both", "error", err)
		} else {
			handler.SetPatterns(p)
		}
		return
	}
	if conf.Left != nil {
		if p, err := buildPattern(conf.Left); err != nil {
			slog.Error("Building pattern failed", "channel", "left", "error", err)
		} else {
			handler.SetPatternLeft(p)
		}
	}
	if conf.Right != nil {
		if p, err := buildPattern(conf.Right); err != nil {
			slog.Error("Building pattern failed", "channel", "right", "error", err)
		} else {
			handler.SetPatternRight(p)
		}
	}
}

func buildPattern(pc *config.PatternConfig) (pattern.Pattern, error) {
	color, err := pattern.ParseHex(pc.Color)
	if err != nil {
		return nil, err
	}
	return pattern.New(pc.Kind, pattern.Options{
		Color:     color,
		Period:    pc.Period,
		Interval:  pc.Interval,
		Latitude:  pc.Latitude,
		Longitude: pc.Longitude,
	})
}
