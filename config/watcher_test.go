package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchReportsFileChange(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("DefaultColor: \"#000000\"\n"), 0o644))

	stop := make(chan struct{})
	defer close(stop)

	changes, err := Watch(configFile, stop)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(configFile, []byte("DefaultColor: \"#ff0000\"\n"), 0o644))

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification after writing the config file")
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("DefaultColor: \"#000000\"\n"), 0o644))

	stop := make(chan struct{})
	defer close(stop)

	changes, err := Watch(configFile, stop)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yml"), []byte("x: 1\n"), 0o644))

	select {
	case <-changes:
		t.Fatal("unrelated file must not trigger a notification")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	stop := make(chan struct{})
	defer close(stop)
	_, err := Watch("/nonexistent-dir-for-sure/config.yml", stop)
	require.Error(t, err)
}
