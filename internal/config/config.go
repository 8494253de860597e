package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the client configuration
type Config struct {
	APIBaseURL         string        // Base URL of the COD backend, e.g. http://localhost:8080/api/v1
	SessionFile        string        // Path of the persisted session file
	DownloadDir        string        // Directory for exported report files
	LogLevel           string        // Logging mode: production or development
	HTTPTimeout        time.Duration // Timeout per outbound request
	NotifyPollInterval time.Duration // Notification polling interval
}

// Load builds the configuration from .env (if present), flags and
// environment variables. Priority: env > flags > defaults.
func Load(defaultSessionFile, defaultDownloadDir string) (*Config, error) {
	// Missing .env is the normal case
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:           "production",
		HTTPTimeout:        10 * time.Second,
		NotifyPollInterval: 10 * time.Second,
	}

	flag.StringVar(&cfg.APIBaseURL, "r", "", "COD backend base URL")
	flag.StringVar(&cfg.SessionFile, "s", defaultSessionFile, "session file path")
	flag.StringVar(&cfg.DownloadDir, "o", defaultDownloadDir, "download directory for exports")
	flag.Parse()

	if envBaseURL, ok := os.LookupEnv("API_BASE_URL"); ok {
		cfg.APIBaseURL = envBaseURL
	}

	if envSessionFile, ok := os.LookupEnv("SESSION_FILE"); ok {
		cfg.SessionFile = envSessionFile
	}

	if envDownloadDir, ok := os.LookupEnv("DOWNLOAD_DIR"); ok {
		cfg.DownloadDir = envDownloadDir
	}

	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	if envTimeout, ok := os.LookupEnv("HTTP_TIMEOUT"); ok {
		if timeout, err := time.ParseDuration(envTimeout); err == nil && timeout > 0 {
			cfg.HTTPTimeout = timeout
		}
	}

	if envPollInterval, ok := os.LookupEnv("NOTIFY_POLL_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envPollInterval); err == nil && interval > 0 {
			cfg.NotifyPollInterval = interval
		}
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API base URL is required (use -r flag or API_BASE_URL env)")
	}

	if cfg.SessionFile == "" {
		return nil, fmt.Errorf("session file path is required (use -s flag or SESSION_FILE env)")
	}

	return cfg, nil
}
