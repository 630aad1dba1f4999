// Package app wires configuration into the catalog, services and HTTP router.
// It is shared by the API server, the Cloud Functions entrypoint and shopctl
// so every surface runs the same stack.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/igoratamanchuk/findamechanic/internal/classifier"
	"github.com/igoratamanchuk/findamechanic/internal/config"
	"github.com/igoratamanchuk/findamechanic/internal/handler"
	"github.com/igoratamanchuk/findamechanic/internal/mailer"
	"github.com/igoratamanchuk/findamechanic/internal/middleware"
	"github.com/igoratamanchuk/findamechanic/internal/ratelimit"
	"github.com/igoratamanchuk/findamechanic/internal/repo"
	"github.com/igoratamanchuk/findamechanic/internal/service"
	"github.com/igoratamanchuk/findamechanic/internal/site"
)

// App is a fully wired FindAMechanic backend.
type App struct {
	Handler  http.Handler
	Search   *service.SearchService
	Feedback *service.FeedbackService
	Shops    *service.ShopService

	redis *redis.Client
}

// NewLogger returns a JSON slog.Logger writing to w at the named level.
// An unknown level falls back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// New loads the catalog and builds every service from cfg. Missing AI or
// email credentials are logged and leave the matching feature unavailable.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	catalog, err := repo.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("app.New: %w", err)
	}

	gen, err := classifier.NewGenerator(ctx, classifier.ProviderConfig{
		Provider:     classifier.Provider(cfg.AIProvider),
		OpenAIAPIKey: cfg.OpenAIAPIKey,
		OpenAIModel:  cfg.OpenAIModel,
		GeminiAPIKey: cfg.GeminiAPIKey,
		GeminiModel:  cfg.GeminiModel,
	})
	if err != nil {
		return nil, fmt.Errorf("app.New: %w", err)
	}
	if gen == nil {
		logger.WarnContext(ctx, "no AI credential configured; ai shop search is unavailable")
	}
	cls := classifier.New(gen, cfg.AITimeout, logger)

	var m mailer.Mailer
	if cfg.ResendAPIKey != "" {
		m = mailer.NewResend(cfg.ResendAPIKey, nil, cfg.MailTimeout)
	} else {
		logger.WarnContext(ctx, "RESEND_API_KEY not set; feedback will not be delivered")
	}

	a := &App{
		Search:   service.NewSearchService(catalog, cls, logger),
		Feedback: service.NewFeedbackService(m, service.FeedbackConfig{From: cfg.FeedbackFromEmail, To: cfg.FeedbackToEmail}, logger),
		Shops:    service.NewShopService(catalog, site.New(cfg.SiteURL, catalog.City())),
	}

	limiter, err := a.newLimiter(cfg)
	if err != nil {
		return nil, fmt.Errorf("app.New: %w", err)
	}

	var throttle func(http.Handler) http.Handler
	if limiter != nil {
		throttle = middleware.NewRateLimitHandler(limiter, logger)
	}

	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit. RealIP must run before the rate limiter reads
	// r.RemoteAddr.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	srv := handler.NewServer(a.Search, a.Feedback, a.Shops, logger)
	r.Mount("/", srv.Routes(throttle))
	a.Handler = r

	logger.InfoContext(ctx, "app initialised",
		"shops", catalog.Len(),
		"ai_available", cls.Available(),
		"mail_available", m != nil,
		"rate_limit", limiter != nil,
		"shared_rate_limit", a.redis != nil,
	)
	return a, nil
}

// newLimiter returns nil when rate limiting is disabled, a Redis limiter when
// REDIS_URL is set, and an in-process limiter otherwise.
func (a *App) newLimiter(cfg config.Config) (ratelimit.Limiter, error) {
	if cfg.RateLimitRPS <= 0 {
		return nil, nil
	}
	if cfg.RedisURL == "" {
		return ratelimit.NewLocal(cfg.RateLimitRPS, cfg.RateLimitBurst), nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	a.redis = redis.NewClient(opts)
	return ratelimit.NewRedis(a.redis, cfg.RateLimitRPS, cfg.RateLimitBurst), nil
}

// Close releases connections held by the App.
func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}
