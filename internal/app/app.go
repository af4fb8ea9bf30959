package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/lazyfloat/internal/config"
	"github.com/five82/lazyfloat/internal/float"
	"github.com/five82/lazyfloat/internal/telemetry"
	"github.com/five82/lazyfloat/internal/ui"
)

// Options configure the LazyFloat application.
type Options struct {
	ConfigPath string // empty uses ~/.config/lazyfloat/config.toml
	Theme      string // overrides the configured theme when set
}

// Run boots the LazyFloat TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) (err error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Theme != "" {
		cfg.Theme = opts.Theme
	}

	logger, closeLog, err := openLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		// ctx may already be cancelled; flushing still needs a live one.
		if serr := shutdown(context.WithoutCancel(ctx)); serr != nil {
			logger.Warn("telemetry shutdown failed", "error", serr)
		}
	}()

	client, err := float.NewClient(cfg.AuthURL, float.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return fmt.Errorf("init login client: %w", err)
	}

	if !ui.HasTheme(cfg.Theme) {
		logger.Warn("unknown theme; using default", "theme", cfg.Theme, "available", ui.ThemeNames())
	}

	logger.Info("lazyfloat starting",
		"auth_url", client.URL(),
		"request_timeout", cfg.RequestTimeout,
		"on_login_error", string(cfg.OnLoginError),
		"tracing", telemetry.Enabled(),
	)
	defer func() {
		logger.Info("lazyfloat stopped", "error", err)
	}()

	err = ui.Run(ui.Options{
		Context:          ctx,
		Client:           client,
		Logger:           logger,
		LoginTimeout:     cfg.RequestTimeout,
		ExitOnLoginError: cfg.ExitOnLoginError(),
		ThemeName:        cfg.Theme,
	})
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		// Interrupted by a signal rather than a terminal failure.
		return nil
	}
	return err
}

// openLogger returns a text slog.Logger writing to path. An empty path
// discards everything.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, nil, err
	}
	return newLogger(f), func() { _ = f.Close() }, nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
