package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/leapglow/rgblightd/pattern"
)

// PatternConfig describes one startup pattern for a channel.
type PatternConfig struct {
	Kind      string        `yaml:"Kind"`
	Color     string        `yaml:"Color"`
	Period    time.Duration `yaml:"Period"`
	Interval  time.Duration `yaml:"Interval"`
	Latitude  float64       `yaml:"Latitude"`
	Longitude float64       `yaml:"Longitude"`
}

type TransitionsConfig struct {
	Enabled  bool          `yaml:"Enabled"`
	Duration time.Duration `yaml:"Duration"`
	Step     time.Duration `yaml:"Step"`
}

type HardwareConfig struct {
	SPIFrequency    int       `yaml:"SPIFrequency"`
	ColorCorrection []float64 `yaml:"ColorCorrection"`
}

type LoggingConfig struct {
	Level  string `yaml:"Level"`
	Format string `yaml:"Format"`
	File   string `yaml:"File"`
}

type Config struct {
	RealHW     bool   `yaml:"-"`
	Configfile string `yaml:"-"`

	DefaultColor string            `yaml:"DefaultColor"`
	Transitions  TransitionsConfig `yaml:"Transitions"`
	Both         *PatternConfig    `yaml:"Both"`
	Left         *PatternConfig    `yaml:"Left"`
	Right        *PatternConfig    `yaml:"Right"`
	Hardware     HardwareConfig    `yaml:"Hardware"`
	Logging      LoggingConfig     `yaml:"Logging"`
}

// ReadConfig reads and validates the configuration file.
func ReadConfig(cfile string, realhw bool) (*Config, error) {
	f, err := os.Open(cfile)
	if err != nil {
		return nil, fmt.Errorf("can't open config file %s: %w", cfile, err)
	}
	defer f.Close()

	conf := &Config{}
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(conf); err != nil {
		return nil, fmt.Errorf("can't decode config file %s: %w", cfile, err)
	}
	conf.RealHW = realhw
	conf.Configfile = cfile
	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", cfile, err)
	}
	return conf, nil
}

// validate fills in defaults and rejects configurations the daemon
// could not run with.
func (c *Config) validate() error {
	if c.DefaultColor == "" {
		c.DefaultColor = "#000000"
	}
	if _, err := pattern.ParseHex(c.DefaultColor); err != nil {
		return fmt.Errorf("DefaultColor: %w", err)
	}

	if c.Transitions.Enabled {
		if c.Transitions.Step <= 0 {
			return fmt.Errorf("Transitions.Step must be positive, got %v", c.Transitions.Step)
		}
		if c.Transitions.Duration < 0 {
			return fmt.Errorf("Transitions.Duration must not be negative, got %v", c.Transitions.Duration)
		}
	}

	if c.Both != nil && (c.Left != nil || c.Right != nil) {
		return fmt.Errorf("Both excludes the Left and Right pattern blocks")
	}
	for name, pc := range map[string]*PatternConfig{"Both": c.Both, "Left": c.Left, "Right": c.Right} {
		if pc == nil {
			continue
		}
		if strings.TrimSpace(pc.Kind) == "" {
			return fmt.Errorf("%s.Kind must be set", name)
		}
		if pc.Color == "" {
			pc.Color = c.DefaultColor
		}
		if _, err := pattern.ParseHex(pc.Color); err != nil {
			return fmt.Errorf("%s.Color: %w", name, err)
		}
	}

	if c.Hardware.SPIFrequency == 0 {
		c.Hardware.SPIFrequency = 1000000
	}
	if c.Hardware.SPIFrequency < 0 {
		return fmt.Errorf("Hardware.SPIFrequency must be positive, got %d", c.Hardware.SPIFrequency)
	}
	if len(c.Hardware.ColorCorrection) == 0 {
		c.Hardware.ColorCorrection = []float64{1, 1, 1, 1}
	}
	if len(c.Hardware.ColorCorrection) != 4 {
		return fmt.Errorf("Hardware.ColorCorrection needs 4 values (RGBW), got %d", len(c.Hardware.ColorCorrection))
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "INFO"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	return nil
}
