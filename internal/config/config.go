package config

import (
	"os"
	"strconv"
	"time"
)

// Fallback provider names.
const (
	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"
	ProviderStatic      = "static"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database (optional, enables rule hit metrics)
	DatabaseURL string

	// Redis (optional, shared rate limiter storage)
	RedisURL string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Rate limiting, requests per minute per IP
	RateLimitMax int

	// Rules file (optional YAML replacing the built-in rule sets)
	RulesFile string

	// Fallback responder
	FallbackProvider string
	HFBaseURL        string
	HFModel          string
	HFToken          string
	HFMaxLength      int
	HFTimeout        time.Duration
	GeminiAPIKey     string
	GeminiModel      string
	StaticReply      string
	WarmupInterval   time.Duration // 0 disables responder warm-up

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "AI Healthcare Assistant"
	SiteTagline string // env: SITE_TAGLINE, default: "How Can I Assist You Today?"
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		ServerAddr:   getEnv("SERVER_ADDR", ":3000"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		RedisURL:     getEnv("REDIS_URL", ""),
		CORSOrigins:  getEnv("CORS_ORIGINS", ""),
		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 100),
		RulesFile:    getEnv("RULES_FILE", "rules.yaml"),

		FallbackProvider: getEnv("FALLBACK_PROVIDER", ProviderHuggingFace),
		HFBaseURL:        getEnv("HF_BASE_URL", "https://api-inference.huggingface.co"),
		HFModel:          getEnv("HF_MODEL", "distilgpt2"),
		HFToken:          getEnv("HF_TOKEN", ""),
		HFMaxLength:      getEnvInt("HF_MAX_LENGTH", 300),
		HFTimeout:        getEnvDuration("HF_TIMEOUT", 30*time.Second),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		StaticReply:      getEnv("STATIC_REPLY", "I'm not sure I understood. Could you tell me a bit more about how you're feeling?"),
		WarmupInterval:   getEnvDuration("WARMUP_INTERVAL", 0),

		SiteTitle:   getEnv("SITE_TITLE", "AI Healthcare Assistant"),
		SiteTagline: getEnv("SITE_TAGLINE", "How Can I Assist You Today?"),
		SiteFooter:  getEnv("SITE_FOOTER", "Suggestions are informational only and are not medical advice."),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// MetricsEnabled returns true when a database is configured to persist rule hits.
func (c *Config) MetricsEnabled() bool {
	return c.DatabaseURL != ""
}
