package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate runs the test from an empty directory with no credential set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, k := range []string{"MARKETER_LLM_API_KEY", "GROQ_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "MARKETER_ENV_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func TestLoad_MissingAPIKey(t *testing.T) {
	isolate(t)

	_, err := Load()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	t.Setenv("GROQ_API_KEY", "gsk_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.LLM.Provider != "groq" {
		t.Errorf("provider = %q, want groq", cfg.LLM.Provider)
	}
	if cfg.LLM.APIKey != "gsk_test" {
		t.Errorf("api key = %q", cfg.LLM.APIKey)
	}
	if cfg.LLM.Timeout != 0 || cfg.LLM.MaxRetries != 0 {
		t.Errorf("timeout/retries = %v/%d, want 0/0", cfg.LLM.Timeout, cfg.LLM.MaxRetries)
	}
	if cfg.SessionLifetime != 12*time.Hour {
		t.Errorf("session lifetime = %v", cfg.SessionLifetime)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("GROQ_API_KEY=from-dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("GROQ_API_KEY") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLM.APIKey != "from-dotenv" {
		t.Errorf("api key = %q, want from-dotenv", cfg.LLM.APIKey)
	}
}

func TestLoad_PrefixedOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("MARKETER_LLM_API_KEY", "k")
	t.Setenv("MARKETER_LLM_PROVIDER", "OpenAI")
	t.Setenv("MARKETER_LLM_TIMEOUT", "30s")
	t.Setenv("MARKETER_HTTP_ADDR", ":9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.LLM.Provider)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.LLM.Timeout)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("addr = %q", cfg.HTTP.Addr)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	isolate(t)
	t.Setenv("GROQ_API_KEY", "k")
	t.Setenv("MARKETER_LLM_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid timeout")
	}
}
