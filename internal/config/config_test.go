package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/igoratamanchuk/findamechanic/internal/config"
)

var allVars = []string{
	"PORT", "LOG_LEVEL", "CORS_ORIGINS", "SITE_URL", "VERCEL_URL",
	"AI_PROVIDER", "OPENAI_API_KEY", "OPENAI_MODEL", "GEMINI_API_KEY", "GEMINI_MODEL", "AI_TIMEOUT",
	"RESEND_API_KEY", "FEEDBACK_FROM_EMAIL", "FEEDBACK_TO_EMAIL", "MAIL_TIMEOUT",
	"MAX_BODY_BYTES", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "REDIS_URL",
}

// clearEnv blanks every variable Load reads so the host environment cannot
// leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "")
	}
}

// TestLoad_defaults verifies that every variable falls back to its default
// and that nothing is required.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	require.Equal(t, "http://localhost:3000", cfg.SiteURL)
	require.Equal(t, "", cfg.AIProvider)
	require.Equal(t, "gpt-5-mini", cfg.OpenAIModel)
	require.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	require.Equal(t, 30*time.Second, cfg.AITimeout)
	require.Equal(t, "FindAMechanic <onboarding@resend.dev>", cfg.FeedbackFromEmail)
	require.Equal(t, "findamechanic.info@gmail.com", cfg.FeedbackToEmail)
	require.Equal(t, 10*time.Second, cfg.MailTimeout)
	require.Equal(t, int64(65536), cfg.MaxBodyBytes)
	require.Equal(t, 1.0, cfg.RateLimitRPS)
	require.Equal(t, 5, cfg.RateLimitBurst)
	require.Empty(t, cfg.RedisURL)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://findamechanic.ca, https://www.findamechanic.ca")
	t.Setenv("SITE_URL", "https://findamechanic.ca/")
	t.Setenv("AI_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("RESEND_API_KEY", "re_key")
	t.Setenv("FEEDBACK_TO_EMAIL", "ops@findamechanic.ca")
	t.Setenv("MAIL_TIMEOUT", "2s")
	t.Setenv("MAX_BODY_BYTES", "1024")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://findamechanic.ca", "https://www.findamechanic.ca"}, cfg.CORSOrigins)
	require.Equal(t, "https://findamechanic.ca", cfg.SiteURL)
	require.Equal(t, "gemini", cfg.AIProvider)
	require.Equal(t, "gm-key", cfg.GeminiAPIKey)
	require.Equal(t, 5*time.Second, cfg.AITimeout)
	require.Equal(t, "re_key", cfg.ResendAPIKey)
	require.Equal(t, "ops@findamechanic.ca", cfg.FeedbackToEmail)
	require.Equal(t, 2*time.Second, cfg.MailTimeout)
	require.Equal(t, int64(1024), cfg.MaxBodyBytes)
	require.Equal(t, 0.5, cfg.RateLimitRPS)
	require.Equal(t, 10, cfg.RateLimitBurst)
	require.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

// TestLoad_vercelURL verifies the deployment host is used when SITE_URL is unset.
func TestLoad_vercelURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("VERCEL_URL", "findamechanic-git-main.vercel.app")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "https://findamechanic-git-main.vercel.app", cfg.SiteURL)
}

// TestLoad_malformedValues verifies that every unparseable variable is named
// in a single error.
func TestLoad_malformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_PROVIDER", "llama")
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("AI_TIMEOUT", "soon")
	t.Setenv("MAIL_TIMEOUT", "-1s")
	t.Setenv("MAX_BODY_BYTES", "lots")
	t.Setenv("RATE_LIMIT_RPS", "fast")
	t.Setenv("RATE_LIMIT_BURST", "0")

	_, err := config.Load()

	require.Error(t, err)
	for _, key := range []string{"AI_PROVIDER", "LOG_LEVEL", "AI_TIMEOUT", "MAIL_TIMEOUT", "MAX_BODY_BYTES", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		require.ErrorContains(t, err, key)
	}
}
