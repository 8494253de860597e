package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/vanchuyen/codctl/internal/config"
	"github.com/vanchuyen/codctl/internal/session"
	"github.com/vanchuyen/codctl/internal/ui/shell"
	"go.uber.org/zap"
)

// App represents the client application
type App struct {
	config *config.Config
	logger *zap.Logger
	shell  *shell.Shell
}

// NewApp creates the client application
func NewApp() (*App, error) {
	cfg, err := config.Load(session.DefaultPath(), defaultDownloadDir())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	deps := initDependencies(cfg, logger)

	sh := shell.NewShell(
		deps.sessions,
		deps.services.auth,
		deps.services.notifications,
		deps.navigator,
		deps.registry,
		cfg.NotifyPollInterval,
		os.Stdin,
		os.Stdout,
		logger,
	)

	return &App{
		config: cfg,
		logger: logger,
		shell:  sh,
	}, nil
}

// Run drives the interactive shell until exit or an interrupt
func (a *App) Run() error {
	defer func() { _ = a.logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("client started",
		zap.String("api_base_url", a.config.APIBaseURL),
		zap.String("session_file", a.config.SessionFile),
	)

	if err := a.shell.Run(ctx); err != nil {
		return fmt.Errorf("shell stopped: %w", err)
	}

	a.logger.Info("client stopped")
	return nil
}

// defaultDownloadDir places exports next to the user's downloads when
// resolvable and falls back to the working directory
func defaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}
