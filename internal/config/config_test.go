package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, "jwt:\n  secret: test-secret\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Mode != "development" {
		t.Errorf("mode = %q, want development", cfg.Server.Mode)
	}
	if cfg.JWT.AccessTokenExpiration != "1h" {
		t.Errorf("access token expiration = %q, want 1h", cfg.JWT.AccessTokenExpiration)
	}
	if cfg.JWT.Issuer != "cnttk23m.app" {
		t.Errorf("issuer = %q, want cnttk23m.app", cfg.JWT.Issuer)
	}
	if !cfg.Seed.DemoData {
		t.Error("demo data should default to enabled")
	}
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9000"
  mode: production
jwt:
  secret: test-secret
  access_token_expiration: 30m
seed:
  demo_data: false
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.Server.Port)
	}
	if cfg.Server.Mode != "production" {
		t.Errorf("mode = %q, want production", cfg.Server.Mode)
	}
	if cfg.JWT.AccessTokenExpiration != "30m" {
		t.Errorf("access token expiration = %q, want 30m", cfg.JWT.AccessTokenExpiration)
	}
	if cfg.Seed.DemoData {
		t.Error("demo data should be disabled by the file")
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: \"9000\"\njwt:\n  secret: file-secret\n")

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("port = %q, environment should win over the file", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("secret = %q, environment should win over the file", cfg.JWT.Secret)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want default 8080", cfg.Server.Port)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		path := writeConfigFile(t, "server:\n  port: \"9000\"\n")
		if _, err := LoadConfig(path); err == nil {
			t.Fatal("expected error for missing JWT secret")
		}
	})
	t.Run("bad duration", func(t *testing.T) {
		path := writeConfigFile(t, "jwt:\n  secret: test-secret\n  access_token_expiration: not-a-duration\n")
		if _, err := LoadConfig(path); err == nil {
			t.Fatal("expected error for unparseable expiration")
		}
	})
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90m", time.Hour); got != 90*time.Minute {
		t.Errorf("ParseDuration(90m) = %v", got)
	}
	if got := ParseDuration("garbage", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration fallback = %v, want 1h", got)
	}
}
