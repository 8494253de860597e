package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags gives each subtest a fresh flag set and argv, since Load
// registers on the global CommandLine
func resetFlags(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	oldCommandLine := flag.CommandLine
	t.Cleanup(func() {
		os.Args = oldArgs
		flag.CommandLine = oldCommandLine
	})
	flag.CommandLine = flag.NewFlagSet("codctl", flag.ContinueOnError)
	os.Args = append([]string{"codctl"}, args...)
}

func TestLoad(t *testing.T) {
	t.Run("Flags fill the configuration", func(t *testing.T) {
		resetFlags(t, "-r", "http://localhost:8080/api/v1", "-s", "/tmp/session.json", "-o", "/tmp/exports")

		cfg, err := Load("/default/session.json", "/default/downloads")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/api/v1", cfg.APIBaseURL)
		assert.Equal(t, "/tmp/session.json", cfg.SessionFile)
		assert.Equal(t, "/tmp/exports", cfg.DownloadDir)
		assert.Equal(t, "production", cfg.LogLevel)
		assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, 10*time.Second, cfg.NotifyPollInterval)
	})

	t.Run("Environment overrides flags", func(t *testing.T) {
		resetFlags(t, "-r", "http://flag-host/api/v1")
		t.Setenv("API_BASE_URL", "http://env-host/api/v1")
		t.Setenv("LOG_LEVEL", "development")
		t.Setenv("NOTIFY_POLL_INTERVAL", "30s")

		cfg, err := Load("/default/session.json", "/default/downloads")
		require.NoError(t, err)
		assert.Equal(t, "http://env-host/api/v1", cfg.APIBaseURL)
		assert.Equal(t, "development", cfg.LogLevel)
		assert.Equal(t, 30*time.Second, cfg.NotifyPollInterval)
	})

	t.Run("Defaults carry the session file and download dir", func(t *testing.T) {
		resetFlags(t, "-r", "http://localhost:8080/api/v1")

		cfg, err := Load("/default/session.json", "/default/downloads")
		require.NoError(t, err)
		assert.Equal(t, "/default/session.json", cfg.SessionFile)
		assert.Equal(t, "/default/downloads", cfg.DownloadDir)
	})

	t.Run("Missing base URL is an error", func(t *testing.T) {
		resetFlags(t)
		t.Setenv("API_BASE_URL", "")

		_, err := Load("/default/session.json", "/default/downloads")
		assert.Error(t, err)
	})

	t.Run("Invalid poll interval keeps the default", func(t *testing.T) {
		resetFlags(t, "-r", "http://localhost:8080/api/v1")
		t.Setenv("NOTIFY_POLL_INTERVAL", "soon")

		cfg, err := Load("/default/session.json", "/default/downloads")
		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, cfg.NotifyPollInterval)
	})
}
