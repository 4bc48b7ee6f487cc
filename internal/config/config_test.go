package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfigForTest()
	t.Setenv("SERPAPI_API_KEY", "")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %q", cfg.Server.Host)
	}
	if cfg.Server.Port != 8440 {
		t.Errorf("expected default port 8440, got %d", cfg.Server.Port)
	}
	if cfg.Suggest.Provider != ProviderGoogle {
		t.Errorf("expected provider to default to google without a key, got %q", cfg.Suggest.Provider)
	}
	if cfg.Suggest.TimeoutSeconds != 5 {
		t.Errorf("expected default timeout 5s, got %d", cfg.Suggest.TimeoutSeconds)
	}
	if cfg.Suggest.MaxResults != 10 {
		t.Errorf("expected default max_results 10, got %d", cfg.Suggest.MaxResults)
	}
}

func TestLoadConfigProviderDefaultsToSerpAPIWithKey(t *testing.T) {
	ResetConfigForTest()
	t.Setenv("SERPAPI_API_KEY", "test-key")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Suggest.Provider != ProviderSerpAPI {
		t.Errorf("expected provider serpapi when key is set, got %q", cfg.Suggest.Provider)
	}
	if cfg.Suggest.SerpAPIKey != "test-key" {
		t.Errorf("expected key from env, got %q", cfg.Suggest.SerpAPIKey)
	}
}

func TestLoadConfigPortFromEnv(t *testing.T) {
	ResetConfigForTest()
	t.Setenv("PORT", "9001")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != 9001 {
		t.Errorf("expected PORT env to override port, got %d", cfg.Server.Port)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfigForTest()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`server:
  port: 8500
suggest:
  provider: serpapi
  serpapi_key: file-key
  max_results: 5
redis:
  addr: localhost:6379
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != 8500 {
		t.Errorf("expected port 8500 from file, got %d", cfg.Server.Port)
	}
	if cfg.Suggest.Provider != ProviderSerpAPI || cfg.Suggest.SerpAPIKey != "file-key" {
		t.Errorf("unexpected suggest config: %+v", cfg.Suggest)
	}
	if cfg.Suggest.MaxResults != 5 {
		t.Errorf("expected max_results 5 from file, got %d", cfg.Suggest.MaxResults)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("expected redis addr from file, got %q", cfg.Redis.Addr)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	ResetConfigForTest()

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadConfigRejectsSerpAPIWithoutKey(t *testing.T) {
	ResetConfigForTest()
	t.Setenv("SUGGEST_PROVIDER", "serpapi")
	t.Setenv("SERPAPI_API_KEY", "")

	if _, err := LoadConfig(""); err == nil {
		t.Error("expected error for serpapi provider without key")
	}
}

func TestLoadConfigRejectsUnknownProvider(t *testing.T) {
	ResetConfigForTest()
	t.Setenv("SUGGEST_PROVIDER", "bing")

	if _, err := LoadConfig(""); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestLoadConfigSingleton(t *testing.T) {
	ResetConfigForTest()

	first, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	second, _ := LoadConfig("does-not-matter")
	if first != second {
		t.Error("expected LoadConfig to return the same instance")
	}
	if GetConfig() != first {
		t.Error("expected GetConfig to return the loaded instance")
	}
}
