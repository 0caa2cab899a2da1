package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseConfig = `
DefaultColor: "#000000"
Transitions:
  Enabled: true
  Duration: 200ms
  Step: 20ms
Both:
  Kind: pulse
  Color: "#0000ff"
  Period: 2s
  Interval: 20ms
Hardware:
  SPIFrequency: 500000
  ColorCorrection: [1.0, 0.9, 0.8, 1.0]
Logging:
  Level: "DEBUG"
  Format: "json"
  File: "/tmp/rgblightd-test.log"
`

func createConfigFile(t *testing.T, configData string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "config.yml")
	err := os.WriteFile(configFile, []byte(configData), 0o644)
	require.NoError(t, err, "failed to write config file")
	return configFile
}

func TestReadConfig(t *testing.T) {
	configFile := createConfigFile(t, baseConfig)

	conf, err := ReadConfig(configFile, true)
	require.NoError(t, err)

	assert.True(t, conf.RealHW)
	assert.Equal(t, configFile, conf.Configfile)
	assert.Equal(t, "#000000", conf.DefaultColor)

	assert.True(t, conf.Transitions.Enabled)
	assert.Equal(t, 200*time.Millisecond, conf.Transitions.Duration)
	assert.Equal(t, 20*time.Millisecond, conf.Transitions.Step)

	require.NotNil(t, conf.Both)
	assert.Equal(t, "pulse", conf.Both.Kind)
	assert.Equal(t, "#0000ff", conf.Both.Color)
	assert.Equal(t, 2*time.Second, conf.Both.Period)
	assert.Nil(t, conf.Left)
	assert.Nil(t, conf.Right)

	assert.Equal(t, 500000, conf.Hardware.SPIFrequency)
	assert.Equal(t, []float64{1.0, 0.9, 0.8, 1.0}, conf.Hardware.ColorCorrection)

	assert.Equal(t, "DEBUG", conf.Logging.Level)
	assert.Equal(t, "json", conf.Logging.Format)
}

func TestReadConfigDefaults(t *testing.T) {
	configFile := createConfigFile(t, `DefaultColor: "#102030"`)

	conf, err := ReadConfig(configFile, false)
	require.NoError(t, err)

	assert.False(t, conf.RealHW)
	assert.False(t, conf.Transitions.Enabled)
	assert.Equal(t, 1000000, conf.Hardware.SPIFrequency)
	assert.Equal(t, []float64{1, 1, 1, 1}, conf.Hardware.ColorCorrection)
	assert.Equal(t, "INFO", conf.Logging.Level)
	assert.Equal(t, "text", conf.Logging.Format)
}

func TestReadConfigPatternColorFallsBackToDefault(t *testing.T) {
	configFile := createConfigFile(t, `
DefaultColor: "#112233"
Left:
  Kind: constant
`)
	conf, err := ReadConfig(configFile, false)
	require.NoError(t, err)
	require.NotNil(t, conf.Left)
	assert.Equal(t, "#112233", conf.Left.Color)
}

func TestReadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad default color", `DefaultColor: "notacolor"`},
		{"zero step with transitions", `
Transitions:
  Enabled: true
  Duration: 200ms
  Step: 0s
`},
		{"negative duration", `
Transitions:
  Enabled: true
  Duration: -1s
  Step: 20ms
`},
		{"both excludes left", `
Both:
  Kind: constant
Left:
  Kind: constant
`},
		{"pattern without kind", `
Left:
  Color: "#ff0000"
`},
		{"bad pattern color", `
Left:
  Kind: constant
  Color: "xyz"
`},
		{"short color correction", `
Hardware:
  ColorCorrection: [1.0, 1.0, 1.0]
`},
		{"unknown field", `Brightness: 12`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := createConfigFile(t, tt.data)
			_, err := ReadConfig(configFile, false)
			assert.Error(t, err)
		})
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "nope.yml"), false)
	assert.Error(t, err)
}
