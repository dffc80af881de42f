package config

import (
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HOST", "PORT", "PROFILE_PATH", "DIARY_PATH", "DATABASE_URL", "DATABASE_NAME", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Addr() != "0.0.0.0:8000" {
		t.Errorf("unexpected addr: %q", cfg.Addr())
	}
	if cfg.Data.ProfilePath != "profile.json" || cfg.Data.DiaryPath != "diary.json" {
		t.Errorf("unexpected data paths: %+v", cfg.Data)
	}
	if cfg.Database.URL != "" || cfg.Database.Name != "" {
		t.Errorf("database config should default to empty: %+v", cfg.Database)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("PROFILE_PATH", "/data/profile.json")
	t.Setenv("DATABASE_URL", "postgres://localhost/db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Data.ProfilePath != "/data/profile.json" {
		t.Errorf("unexpected profile path: %q", cfg.Data.ProfilePath)
	}
	if cfg.Database.URL == "" {
		t.Error("expected database url to be set")
	}
}

func TestLoadNonNumericPortFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-port")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("expected fallback to 8000, got %d", cfg.Server.Port)
	}
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 70000},
		Data:   DataConfig{ProfilePath: "profile.json", DiaryPath: "diary.json"},
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "PORT") {
		t.Errorf("error should mention PORT: %v", err)
	}
}
