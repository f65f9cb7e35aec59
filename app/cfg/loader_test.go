package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		RedisAddr:       "localhost:6379",
		RedisDB:         1,
		AIEndpoint:      "https://api.example.com/v1/chat/completions",
		AIModel:         "test-model",
		AIAccessKey:     "test-key",
		Port:            "8080",
		RefreshInterval: 86400,
		WorkerCount:     1,
		PasswordSalt:    "test_salt",
		UserAgent:       "Test Agent",
		Timezone:        "UTC",
		Debug:           true,
		Version:         "test-version",
	}

	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("Expected redis addr 'localhost:6379', got '%s'", cfg.RedisAddr)
	}
	if cfg.AIModel != "test-model" {
		t.Errorf("Expected model 'test-model', got '%s'", cfg.AIModel)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.RefreshInterval != 86400 {
		t.Errorf("Expected refresh interval 86400, got %d", cfg.RefreshInterval)
	}
	if cfg.WorkerCount != 1 {
		t.Errorf("Expected worker count 1, got %d", cfg.WorkerCount)
	}
	if cfg.PasswordSalt != "test_salt" {
		t.Errorf("Expected salt 'test_salt', got '%s'", cfg.PasswordSalt)
	}
	if !cfg.Debug {
		t.Error("Expected debug enabled")
	}
}

func TestApplyTimezone(t *testing.T) {
	if err := applyTimezone("UTC"); err != nil {
		t.Errorf("Expected UTC to be valid, got %v", err)
	}
	if err := applyTimezone(""); err != nil {
		t.Errorf("Expected empty timezone accepted, got %v", err)
	}
	if err := applyTimezone("Not/AZone"); err == nil {
		t.Error("Expected invalid timezone to error")
	}
}
