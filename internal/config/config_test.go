package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/JaimeStill/registry-admin/internal/config"
)

func chdirRoot(t *testing.T) {
	t.Helper()
	t.Chdir("../..")
	t.Setenv("SERVICE_ENV", "")
}

func TestLoad_BaseConfig(t *testing.T) {
	chdirRoot(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.API.BasePath != "/api" {
		t.Errorf("API.BasePath = %q, want %q", cfg.API.BasePath, "/api")
	}

	if cfg.Vouchers.MaxIssueAttempts != 5 {
		t.Errorf("Vouchers.MaxIssueAttempts = %d, want 5", cfg.Vouchers.MaxIssueAttempts)
	}

	if cfg.API.MaxRequestSizeBytes() != 1000*1000 {
		t.Errorf("MaxRequestSizeBytes() = %d, want %d", cfg.API.MaxRequestSizeBytes(), 1000*1000)
	}
}

func TestLoad_WithOverlay(t *testing.T) {
	chdirRoot(t)

	overlay := `shutdown_timeout = "60s"

[server]
port = 9090

[vouchers]
max_issue_attempts = 8
`

	if err := os.WriteFile("config.test.toml", []byte(overlay), 0644); err != nil {
		t.Fatalf("failed to write overlay: %v", err)
	}
	t.Cleanup(func() { os.Remove("config.test.toml") })

	t.Setenv("SERVICE_ENV", "test")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() with overlay failed: %v", err)
	}

	if cfg.ShutdownTimeout != "60s" {
		t.Errorf("ShutdownTimeout = %q, want %q", cfg.ShutdownTimeout, "60s")
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}

	if cfg.Vouchers.MaxIssueAttempts != 8 {
		t.Errorf("Vouchers.MaxIssueAttempts = %d, want 8", cfg.Vouchers.MaxIssueAttempts)
	}

	if cfg.Database.Name != "registry_admin" {
		t.Errorf("Database.Name = %q, want base value preserved", cfg.Database.Name)
	}
}

func TestLoad_MissingOverlayIgnored(t *testing.T) {
	chdirRoot(t)
	t.Setenv("SERVICE_ENV", "nonexistent")

	if _, err := config.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	chdirRoot(t)

	if err := os.WriteFile("config.invalid.toml", []byte(`shutdown_timeout = "invalid"`), 0644); err != nil {
		t.Fatalf("failed to write overlay: %v", err)
	}
	t.Cleanup(func() { os.Remove("config.invalid.toml") })

	t.Setenv("SERVICE_ENV", "invalid")

	if _, err := config.Load(); err == nil {
		t.Error("Load() succeeded with invalid duration, want error")
	}
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	chdirRoot(t)

	t.Setenv("SERVICE_SHUTDOWN_TIMEOUT", "120s")
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOGGING_LEVEL", "debug")
	t.Setenv("API_MAX_REQUEST_SIZE", "2MB")
	t.Setenv("VOUCHERS_MAX_ISSUE_ATTEMPTS", "3")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ShutdownTimeout != "120s" {
		t.Errorf("ShutdownTimeout = %q, want %q", cfg.ShutdownTimeout, "120s")
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}

	if cfg.API.MaxRequestSizeBytes() != 2*1000*1000 {
		t.Errorf("MaxRequestSizeBytes() = %d, want %d", cfg.API.MaxRequestSizeBytes(), 2*1000*1000)
	}

	if cfg.Vouchers.MaxIssueAttempts != 3 {
		t.Errorf("Vouchers.MaxIssueAttempts = %d, want 3", cfg.Vouchers.MaxIssueAttempts)
	}
}

func TestMerge_RootConfig(t *testing.T) {
	base := &config.Config{
		ShutdownTimeout: "30s",
		Version:         "0.1.0",
		Domain:          "http://localhost:8080",
	}

	overlay := &config.Config{
		ShutdownTimeout: "60s",
		Domain:          "https://registry.example.com",
	}

	base.Merge(overlay)

	if base.ShutdownTimeout != "60s" {
		t.Errorf("ShutdownTimeout = %q after merge, want %q", base.ShutdownTimeout, "60s")
	}

	if base.Version != "0.1.0" {
		t.Errorf("Version = %q after merge, want base value preserved", base.Version)
	}

	if base.Domain != "https://registry.example.com" {
		t.Errorf("Domain = %q after merge, want overlay value", base.Domain)
	}
}

func TestShutdownTimeoutDuration(t *testing.T) {
	cfg := &config.Config{ShutdownTimeout: "45s"}

	if got := cfg.ShutdownTimeoutDuration(); got != 45*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, want %v", got, 45*time.Second)
	}
}
