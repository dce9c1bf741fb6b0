package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"leadgen/internal/dashboard"
	"leadgen/internal/handlers"
	"leadgen/internal/handlers/api"
)

// Deps are the collaborators the routes are bound to.
type Deps struct {
	Service *dashboard.Service
	// Monitor is nil when the background webhook check is disabled.
	Monitor  handlers.WebhookStatus
	Gatherer prometheus.Gatherer
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(deps.Service, s.Cfg)
	probeHandler := handlers.NewProbeHandler(s.Cfg, deps.Monitor)
	apiHandler := api.NewDashboardHandler(deps.Service, s.Cfg)

	// Operational endpoints
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	if deps.Gatherer != nil {
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Dashboard
	s.App.Get("/", dashboardHandler.Index)
	s.App.Post("/preview", dashboardHandler.Preview)
	s.App.Post("/search", dashboardHandler.Search)
	s.App.Post("/sample", dashboardHandler.Sample)
	s.App.Post("/history/clear", dashboardHandler.ClearHistory)
	s.App.Post("/history/:id/repeat", dashboardHandler.Repeat)
	s.App.Get("/export/leads.csv", dashboardHandler.ExportLeads)
	s.App.Get("/export/history.csv", dashboardHandler.ExportHistory)

	// JSON API
	apiGroup := s.App.Group("/api")
	apiGroup.Get("/options", apiHandler.Options)
	apiGroup.Post("/query/preview", apiHandler.Preview)
	apiGroup.Post("/search", apiHandler.Search)
	apiGroup.Post("/sample", apiHandler.Sample)
	apiGroup.Get("/leads", apiHandler.Leads)
	apiGroup.Get("/analytics", apiHandler.Analytics)
	apiGroup.Get("/history", apiHandler.History)
	apiGroup.Delete("/history", apiHandler.ClearHistory)
	apiGroup.Post("/history/:id/repeat", apiHandler.Repeat)
}
