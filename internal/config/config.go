package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned by Load when no provider credential is set.
var ErrMissingAPIKey = errors.New("API key not found: set GROQ_API_KEY in a .env file or as an environment variable")

// LLM holds the completion provider settings.
type LLM struct {
	Provider   string
	Model      string
	APIKey     string
	BaseURL    string
	Prompt     string // optional text/template source replacing the built-in prompt
	Timeout    time.Duration
	MaxRetries int
}

type Config struct {
	HTTP struct {
		Addr string
	}
	LLM             LLM
	SessionLifetime time.Duration
	InsecureCookies bool
}

// Load reads config from a .env file, the environment (MARKETER_ prefix) and an
// optional joe-marketer.yaml.
func Load() (*Config, error) {
	envFile := os.Getenv("MARKETER_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetEnvPrefix("MARKETER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("joe-marketer")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	_ = v.BindEnv("llm.api_key", "MARKETER_LLM_API_KEY", "GROQ_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY")

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("llm.provider", "groq")
	v.SetDefault("llm.timeout", "0s")
	v.SetDefault("llm.max_retries", 0)
	v.SetDefault("session.lifetime", "12h")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.LLM.Provider = strings.ToLower(v.GetString("llm.provider"))
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.APIKey = strings.TrimSpace(v.GetString("llm.api_key"))
	cfg.LLM.BaseURL = v.GetString("llm.base_url")
	cfg.LLM.Prompt = v.GetString("llm.prompt")
	cfg.LLM.MaxRetries = v.GetInt("llm.max_retries")
	cfg.InsecureCookies = v.GetBool("insecure_cookies")

	timeout, err := time.ParseDuration(v.GetString("llm.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid MARKETER_LLM_TIMEOUT: %w", err)
	}
	cfg.LLM.Timeout = timeout

	lifetime, err := time.ParseDuration(v.GetString("session.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid MARKETER_SESSION_LIFETIME: %w", err)
	}
	cfg.SessionLifetime = lifetime

	if cfg.LLM.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.LLM.MaxRetries < 0 {
		return nil, fmt.Errorf("MARKETER_LLM_MAX_RETRIES must not be negative")
	}

	return cfg, nil
}
