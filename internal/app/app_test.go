package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_InvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`request_timeout = "never"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err := Run(context.Background(), Options{ConfigPath: path})
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("Run error = %v, want load config failure", err)
	}
}

func TestRun_InvalidAuthURLFails(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("auth_url = \"ftp://example.com/login\"\nlog_file = \"\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err := Run(context.Background(), Options{ConfigPath: path})
	if err == nil || !strings.Contains(err.Error(), "init login client") {
		t.Fatalf("Run error = %v, want init login client failure", err)
	}
}

func TestOpenLogger_EmptyPathDiscards(t *testing.T) {
	logger, closeLog, err := openLogger("")
	if err != nil {
		t.Fatalf("openLogger returned error: %v", err)
	}
	defer closeLog()
	logger.Info("dropped")
}

func TestOpenLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lazyfloat.log")

	logger, closeLog, err := openLogger(path)
	if err != nil {
		t.Fatalf("openLogger returned error: %v", err)
	}
	logger.Info("login started", "timeout", "10s")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "msg=\"login started\"") || !strings.Contains(got, "timeout=10s") {
		t.Fatalf("log file = %q, want login started entry", got)
	}
}
