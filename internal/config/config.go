// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/igoratamanchuk/findamechanic/internal/site"
)

// Config holds all configuration values for the API server, the Cloud
// Functions entrypoint and the shopctl CLI.
// Values are populated by Load from environment variables. No variable is
// required: without credentials the AI search and feedback delivery report
// themselves unavailable per request.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"] (Next.js dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// SiteURL is the public base URL used for canonical links.
	// SITE_URL, else https://$VERCEL_URL, else http://localhost:3000.
	SiteURL string

	// AIProvider selects the generative-text backend: "openai", "gemini" or
	// empty to pick whichever has a key (OpenAI first).
	AIProvider   string
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string
	// AITimeout bounds one classification call. Defaults to 30s.
	AITimeout time.Duration

	// ResendAPIKey enables feedback delivery when set.
	ResendAPIKey      string
	FeedbackFromEmail string
	FeedbackToEmail   string
	// MailTimeout bounds one delivery call. Defaults to 10s.
	MailTimeout time.Duration

	// MaxBodyBytes caps request bodies. Defaults to 64 KiB.
	MaxBodyBytes int64

	// RateLimitRPS and RateLimitBurst configure the per-client limiter on
	// the POST endpoints. A non-positive RPS disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int

	// RedisURL, when set, shares rate-limit counters across instances.
	RedisURL string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing every variable whose value cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSOrigins:       splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		SiteURL:           site.ResolveBaseURL(os.Getenv("SITE_URL"), os.Getenv("VERCEL_URL")),
		AIProvider:        strings.ToLower(strings.TrimSpace(os.Getenv("AI_PROVIDER"))),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-5-mini"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		ResendAPIKey:      os.Getenv("RESEND_API_KEY"),
		FeedbackFromEmail: getEnv("FEEDBACK_FROM_EMAIL", "FindAMechanic <onboarding@resend.dev>"),
		FeedbackToEmail:   getEnv("FEEDBACK_TO_EMAIL", "findamechanic.info@gmail.com"),
		RedisURL:          os.Getenv("REDIS_URL"),
	}

	var errs []error

	switch cfg.AIProvider {
	case "", "openai", "gemini":
	default:
		errs = append(errs, fmt.Errorf("AI_PROVIDER: unknown provider %q (want openai or gemini)", cfg.AIProvider))
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL: unknown level %q", cfg.LogLevel))
	}

	cfg.AITimeout = parseDuration("AI_TIMEOUT", 30*time.Second, &errs)
	cfg.MailTimeout = parseDuration("MAIL_TIMEOUT", 10*time.Second, &errs)
	cfg.MaxBodyBytes = parseInt("MAX_BODY_BYTES", 64<<10, &errs)
	cfg.RateLimitRPS = parseFloat("RATE_LIMIT_RPS", 1, &errs)
	cfg.RateLimitBurst = int(parseInt("RATE_LIMIT_BURST", 5, &errs))

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %w", errors.Join(errs...))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func parseDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		*errs = append(*errs, fmt.Errorf("%s: want a positive duration such as 30s, got %q", key, v))
		return fallback
	}
	return d
}

func parseInt(key string, fallback int64, errs *[]error) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		*errs = append(*errs, fmt.Errorf("%s: want a positive integer, got %q", key, v))
		return fallback
	}
	return n
}

func parseFloat(key string, fallback float64, errs *[]error) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: want a number, got %q", key, v))
		return fallback
	}
	return f
}
