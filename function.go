// Package findamechanic exposes the FindAMechanic API as a Google Cloud
// Functions HTTP function. The same router serves cmd/api.
package findamechanic

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/igoratamanchuk/findamechanic/internal/app"
	"github.com/igoratamanchuk/findamechanic/internal/config"
)

// FunctionName is the target name passed to the functions framework.
const FunctionName = "findamechanic"

var (
	initOnce sync.Once
	router   http.Handler
	initErr  error
)

func init() {
	functions.HTTP(FunctionName, Serve)
}

// Serve builds the app on the first request of an instance and then routes
// every request through it. A configuration error answers 500 on every call
// rather than crashing the instance.
func Serve(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			slog.Error("configuration error", "error", err)
			return
		}
		logger := app.NewLogger(os.Stdout, cfg.LogLevel)
		a, err := app.New(context.Background(), cfg, logger)
		if err != nil {
			initErr = err
			logger.Error("failed to initialise app", "error", err)
			return
		}
		router = a.Handler
	})

	if initErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Service misconfigured"}`))
		return
	}
	router.ServeHTTP(w, r)
}
