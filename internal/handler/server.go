// Package handler implements the HTTP handlers for the FindAMechanic API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, search.go, etc.) but share the same Server struct so they
// can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
	"github.com/igoratamanchuk/findamechanic/internal/service"
	"github.com/igoratamanchuk/findamechanic/internal/site"
)

// SearchServicer defines the AI shop search the search handler depends on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without a real classifier.
type SearchServicer interface {
	Search(ctx context.Context, issue domain.Issue) (service.SearchResult, error)
}

// FeedbackServicer defines the feedback relay the feedback handler depends on.
type FeedbackServicer interface {
	Submit(ctx context.Context, sub domain.FeedbackSubmission) (domain.DeliveryResult, error)
}

// ShopServicer defines the directory operations the shop handlers depend on.
type ShopServicer interface {
	City() domain.City
	List(ctx context.Context, f service.ShopFilter) ([]service.ShopListing, error)
	GetBySlug(ctx context.Context, slug string) (service.ShopDetail, error)
	NotFoundPage(slug string) site.Page
}

// Server holds the dependencies of every endpoint.
type Server struct {
	search   SearchServicer
	feedback FeedbackServicer
	shops    ShopServicer
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(search SearchServicer, feedback FeedbackServicer, shops ShopServicer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{search: search, feedback: feedback, shops: shops, log: logger}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// Routes returns a router serving every endpoint. throttle, when non-nil,
// wraps only the two POST endpoints, which are the ones that call out to
// paid services.
func (s *Server) Routes(throttle func(http.Handler) http.Handler) chi.Router {
	if throttle == nil {
		throttle = func(next http.Handler) http.Handler { return next }
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.With(throttle).Post("/ai-shop-search", s.PostAIShopSearch)
		r.With(throttle).Post("/feedback", s.PostFeedback)
		r.Get("/shops", s.ListShops)
		r.Get("/shops/{slug}", s.GetShop)
		r.Get("/tags", s.ListTags)
	})
	return r
}
