package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != DefaultPort || cfg.DBPath != DefaultDBPath || cfg.LogLevel != DefaultLogLevel {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Auth.TokenTTL != DefaultTokenTTL {
		t.Fatalf("token ttl=%v", cfg.Auth.TokenTTL)
	}
	if cfg.Model.DefaultBodyTempC != DefaultBodyTempC || cfg.Model.DefaultCurveStep != DefaultCurveStep {
		t.Fatalf("model defaults=%+v", cfg.Model)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yml := `port: "9090"
db:
  path: /tmp/users.db
log:
  level: debug
auth:
  signing_key: s3cret
  token_ttl: 30m
model:
  default_body_temp_c: 36.6
`
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("COOLING_LOG_LEVEL", "warn")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.DBPath != "/tmp/users.db" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("env override not applied, level=%q", cfg.LogLevel)
	}
	if cfg.Auth.SigningKey != "s3cret" || cfg.Auth.TokenTTL != 30*time.Minute {
		t.Fatalf("auth=%+v", cfg.Auth)
	}
	if cfg.Model.DefaultBodyTempC != 36.6 {
		t.Fatalf("body temp=%v", cfg.Model.DefaultBodyTempC)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("auth:\n  token_ttl: -5m\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected error for negative ttl")
	}
}
