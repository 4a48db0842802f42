package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_TIMEZONE", "AI_TIMEOUT", "JWT_EXPIRES_IN", "MONGO_URI", "AI_API_KEY"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.Location.String() != "Asia/Kolkata" {
		t.Errorf("expected Asia/Kolkata, got %s", cfg.Location)
	}
	if cfg.AITimeout != 30*time.Second {
		t.Errorf("expected 30s AI timeout, got %s", cfg.AITimeout)
	}
	if cfg.JWTExpirationDur != 24*time.Hour {
		t.Errorf("expected 24h JWT expiry, got %s", cfg.JWTExpirationDur)
	}
	if cfg.AIEnabled() {
		t.Error("expected AI disabled without a key")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Europe/Berlin")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("AI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Location.String() != "Europe/Berlin" {
		t.Errorf("expected Europe/Berlin, got %s", cfg.Location)
	}
	if cfg.AITimeout != 5*time.Second {
		t.Errorf("expected 5s, got %s", cfg.AITimeout)
	}
	if !cfg.AIEnabled() {
		t.Error("expected AI enabled")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Not/AZone")
	t.Setenv("AI_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Location != time.UTC {
		t.Errorf("expected UTC fallback, got %s", cfg.Location)
	}
	if cfg.AITimeout != 30*time.Second {
		t.Errorf("expected default timeout, got %s", cfg.AITimeout)
	}
}
