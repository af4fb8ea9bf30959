package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/lazyfloat/internal/float"
)

// LoginErrorPolicy decides what a failed login does to the running program.
type LoginErrorPolicy string

const (
	// LoginErrorReport shows the failure in the actions panel and keeps running.
	LoginErrorReport LoginErrorPolicy = "report"
	// LoginErrorExit stops the program and returns the failure from Run.
	LoginErrorExit LoginErrorPolicy = "exit"
)

// Config captures everything LazyFloat reads at startup.
type Config struct {
	AuthURL        string
	RequestTimeout time.Duration
	OnLoginError   LoginErrorPolicy
	LogFile        string // empty disables logging
	Theme          string
}

const (
	defaultConfigPath     = "~/.config/lazyfloat/config.toml"
	defaultAuthURL        = float.DefaultURL
	defaultRequestTimeout = 10 * time.Second
	defaultLogFile        = "~/.local/state/lazyfloat/lazyfloat.log"
	defaultTheme          = "Nightfox"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		AuthURL:        defaultAuthURL,
		RequestTimeout: defaultRequestTimeout,
		OnLoginError:   LoginErrorReport,
		LogFile:        mustExpand(defaultLogFile),
		Theme:          defaultTheme,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		AuthURL        string  `toml:"auth_url"`
		RequestTimeout string  `toml:"request_timeout"`
		OnLoginError   string  `toml:"on_login_error"`
		LogFile        *string `toml:"log_file"`
		Theme          string  `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.AuthURL); v != "" {
		cfg.AuthURL = v
	}

	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: request_timeout: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("parse config: request_timeout must be positive, got %s", d)
		}
		cfg.RequestTimeout = d
	}

	if v := strings.ToLower(strings.TrimSpace(raw.OnLoginError)); v != "" {
		switch LoginErrorPolicy(v) {
		case LoginErrorReport, LoginErrorExit:
			cfg.OnLoginError = LoginErrorPolicy(v)
		default:
			return Config{}, fmt.Errorf("parse config: on_login_error must be %q or %q, got %q", LoginErrorReport, LoginErrorExit, raw.OnLoginError)
		}
	}

	// An explicit empty log_file disables logging; an absent key keeps the default.
	if raw.LogFile != nil {
		cfg.LogFile = ""
		if v := strings.TrimSpace(*raw.LogFile); v != "" {
			cfg.LogFile = mustExpand(v)
		}
	}

	if v := strings.TrimSpace(raw.Theme); v != "" {
		cfg.Theme = v
	}

	return cfg, nil
}

// ExitOnLoginError reports whether a failed login should stop the program.
func (c Config) ExitOnLoginError() bool {
	return c.OnLoginError == LoginErrorExit
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
