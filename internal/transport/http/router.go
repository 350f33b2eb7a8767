package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	aquariumhandler "aquaria/internal/aquarium/handler"
	ownerhandler "aquaria/internal/owner/handler"
	"aquaria/internal/platform/health"
	"aquaria/pkg/platform/middleware/auth"
	"aquaria/pkg/platform/middleware/metadata"
	"aquaria/pkg/platform/middleware/request"
)

// MaxBodyBytes caps every request body.
const MaxBodyBytes = 1 << 20

// Dependencies are the handlers and middleware collaborators the router mounts.
type Dependencies struct {
	Logger         *slog.Logger
	RequestTimeout time.Duration
	Metadata       *metadata.Config
	RequestMetrics *request.Metrics

	Health    *health.Handler
	Owners    *ownerhandler.Handler
	Aquariums *aquariumhandler.Handler

	TokenValidator auth.JWTValidator
	Revocations    auth.TokenRevocationChecker
}

// NewRouter wires the public endpoints with middleware. Probes and metrics
// sit at the root; the API lives under /api.
func NewRouter(d Dependencies) http.Handler {
	timeout := d.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(request.Recovery(d.Logger))
	r.Use(request.RequestID)
	r.Use(request.RequestTime)
	r.Use(chimiddleware.CleanPath)
	r.Use(metadata.NewMiddleware(d.Metadata).Handler)
	r.Use(request.Logger(d.Logger))
	r.Use(request.LatencyMiddleware(d.RequestMetrics))

	d.Health.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(request.Timeout(timeout))
		r.Use(request.ContentTypeJSON)
		r.Use(request.BodyLimit(MaxBodyBytes))

		d.Owners.RegisterPublic(r)
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(d.TokenValidator, d.Revocations, d.Logger))
			d.Owners.RegisterProtected(r)
			d.Aquariums.Register(r)
		})
	})

	return r
}
