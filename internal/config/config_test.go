package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.APIBaseURL != "http://localhost:8080/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 20*time.Second {
		t.Errorf("APITimeout = %v, want 20s", cfg.APITimeout)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Errorf("log defaults = %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("API_BASE_URL", "http://api.internal/api")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("SHOP_NAME", "Barbearia do Zé")

	cfg := Load()
	if cfg.Port != "8081" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.APIBaseURL != "http://api.internal/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 5*time.Second {
		t.Errorf("APITimeout = %v", cfg.APITimeout)
	}
	if cfg.ShopName != "Barbearia do Zé" {
		t.Errorf("ShopName = %q", cfg.ShopName)
	}
}

func TestGetEnvAsDurationInvalid(t *testing.T) {
	t.Setenv("API_TIMEOUT", "not-a-duration")
	cfg := Load()
	if cfg.APITimeout != 20*time.Second {
		t.Errorf("invalid duration should fall back to default, got %v", cfg.APITimeout)
	}
}
