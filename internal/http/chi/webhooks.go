package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/contentful-notifier/notification"
	"github.com/rs/zerolog"
)

// outboundCalls is the most upstream calls a single change makes, one after the other
const outboundCalls = 3

// RequestTimeout returns a router deadline that outlasts every outbound call,
// so a failing upstream is answered by the handler and never by the router.
func RequestTimeout(httpTimeout time.Duration) time.Duration {
	return outboundCalls*httpTimeout + time.Second
}

// WebhookHandlers sets up the Contentful webhook endpoint plus health and metrics.
// metricsHandler may be nil, in which case /metrics is not mounted.
func WebhookHandlers(ctx context.Context, notificationService notification.UseCase, logger zerolog.Logger, metricsHandler http.Handler, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	// Contentful calls the root path, any method is accepted
	r.Handle("/", postChange(notificationService))

	return r
}
