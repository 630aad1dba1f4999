package middleware

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/igoratamanchuk/findamechanic/internal/ratelimit"
)

// NewRateLimitHandler rejects clients over their allowance with 429.
// Clients are keyed by remote IP, so wire it after chimiddleware.RealIP.
// A limiter error lets the request through and is logged.
func NewRateLimitHandler(l ratelimit.Limiter, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)
			ok, err := l.Allow(r.Context(), key)
			if err != nil {
				log.WarnContext(r.Context(), "rate limiter unavailable", "error", err, "client", key)
				next.ServeHTTP(w, r)
				return
			}
			if !ok {
				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
