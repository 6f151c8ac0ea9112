// Package http is the JSON surface of the simulation: a chi route tree over
// one Session plus probes and the prometheus scrape endpoint.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mingzhangyang/bond-lab/internal/infrastructure/monitoring/logging"
	"github.com/mingzhangyang/bond-lab/internal/infrastructure/monitoring/prometheus"
	"github.com/mingzhangyang/bond-lab/internal/interfaces/http/handlers"
	"github.com/mingzhangyang/bond-lab/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handler and middleware dependencies of the
// route tree.  Nil members switch their routes or middleware off.
type RouterConfig struct {
	SimulationHandler *handlers.SimulationHandler
	HealthHandler     *handlers.HealthHandler

	Logger        logging.Logger
	LoggingConfig middleware.LoggingConfig
	CORS          *middleware.CORSConfig

	MetricsCollector prometheus.MetricsCollector
	HTTPMetrics      *prometheus.HTTPMetrics
	// MetricsPath defaults to /metrics.
	MetricsPath string
}

// NewRouter constructs the complete route tree.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// --- Global middleware ---
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if cfg.CORS != nil {
		r.Use(middleware.CORS(*cfg.CORS))
	}
	if cfg.Logger != nil {
		r.Use(middleware.RequestLogging(cfg.Logger, cfg.LoggingConfig))
	}
	if cfg.HTTPMetrics != nil {
		r.Use(middleware.Metrics(cfg.HTTPMetrics))
	}

	// --- Probes ---
	if cfg.HealthHandler != nil {
		r.Get("/healthz", cfg.HealthHandler.Liveness)
		r.Get("/readyz", cfg.HealthHandler.Readiness)
	}

	if cfg.MetricsCollector != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, cfg.MetricsCollector.Handler())
	}

	r.Route("/api/v1", func(api chi.Router) {
		registerSimulationRoutes(api, cfg.SimulationHandler)
	})

	return r
}

// registerSimulationRoutes mounts the session endpoints.
func registerSimulationRoutes(r chi.Router, h *handlers.SimulationHandler) {
	if h == nil {
		return
	}
	r.Get("/frame", h.GetFrame)
	r.Post("/tick", h.Tick)
	r.Delete("/molecule", h.Clear)

	r.Route("/atoms", func(ar chi.Router) {
		ar.Post("/", h.AddAtom)
		ar.Delete("/{atomID}", h.RemoveAtom)
	})

	r.Route("/bonds", func(br chi.Router) {
		br.Post("/", h.AddBond)
		br.Route("/{bondID}", func(item chi.Router) {
			item.Delete("/", h.RemoveBond)
			item.Put("/order", h.SetBondOrder)
			item.Post("/rotate", h.RotateBond)
		})
	})

	// Interaction signals
	r.Route("/drag", func(dr chi.Router) {
		dr.Post("/", h.BeginDrag)
		dr.Put("/", h.DragTo)
		dr.Delete("/", h.EndDrag)
	})
	r.Put("/rotation", h.SetRotating)

	// Catalogues
	r.Get("/presets", h.ListPresets)
	r.Post("/presets/{name}", h.LoadPreset)
	r.Get("/elements", h.ListElements)

	// Tuning and measurement
	r.Get("/params", h.GetParams)
	r.Patch("/params", h.UpdateParams)
	r.Get("/angle", h.BondAngle)
	r.Get("/placement", h.Placement)
}

//Personal.AI order the ending
