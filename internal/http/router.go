package transporthttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/julianlopez/vainilla-catalog/internal/http/handlers"
	"github.com/julianlopez/vainilla-catalog/internal/middleware"
)

// Deps bundles feature handlers that implement handlers.Mountable plus the
// cross-cutting pieces the router wires in.
type Deps struct {
	Mounts         []handlers.Mountable
	AllowedOrigins []string
	RequestTimeout time.Duration
	Metrics        *middleware.Metrics
	Registry       *prometheus.Registry
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	if d.RequestTimeout > 0 {
		r.Use(chimw.Timeout(d.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	if d.Metrics != nil {
		r.Use(d.Metrics.Handler)
	}
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.LimitRequestBody(middleware.MaxBodySize))
	r.Use(middleware.SetJSONContentType)

	// Mount each feature's routes into this router.
	for _, m := range d.Mounts {
		m.Mount(r)
	}

	if d.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	return r
}
