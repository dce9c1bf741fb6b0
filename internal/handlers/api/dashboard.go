package api

import (
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"leadgen/internal/config"
	"leadgen/internal/dashboard"
	"leadgen/internal/filter"
	"leadgen/internal/middleware"
	"leadgen/internal/models"
	"leadgen/internal/state"
)

// DashboardHandler exposes the dashboard commands as a JSON API.
type DashboardHandler struct {
	svc *dashboard.Service
	cfg *config.Config
}

// NewDashboardHandler creates a new API dashboard handler.
func NewDashboardHandler(svc *dashboard.Service, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{svc: svc, cfg: cfg}
}

// Options returns the option catalog and the form defaults.
func (h *DashboardHandler) Options(c fiber.Ctx) error {
	return jsonSuccess(c, fiber.Map{
		"role_suggestions":   h.cfg.Catalog.RoleSuggestions,
		"sectors":            h.cfg.Catalog.Sectors,
		"locations":          h.cfg.Catalog.Locations,
		"result_count":       h.cfg.Catalog.ResultCount,
		"start_page":         h.cfg.Catalog.StartPage,
		"defaults":           dashboard.DefaultParams(h.cfg.Catalog),
		"webhook_configured": h.cfg.IsWebhookConfigured(),
	})
}

// Preview returns the query string and payload a search would send.
func (h *DashboardHandler) Preview(c fiber.Ctx) error {
	params, err := h.decodeParams(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	payload, err := h.svc.Preview(params)
	if err != nil {
		return jsonError(c, dashboard.HTTPStatus(err), err.Error())
	}
	return jsonSuccess(c, models.QueryPreviewResponse{Query: payload.Query, Payload: payload})
}

// Search runs a lead search and returns the new lead list.
func (h *DashboardHandler) Search(c fiber.Ctx) error {
	params, err := h.decodeParams(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	// Last write wins: overlapping requests on one session are not merged.
	next, res, err := h.svc.Search(c.Context(), middleware.CurrentState(c), params)
	if err != nil {
		return jsonError(c, dashboard.HTTPStatus(err), err.Error())
	}
	return h.saveAndRespond(c, next, searchResponse(res))
}

// Repeat re-runs the history entry with the given id.
func (h *DashboardHandler) Repeat(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid history entry id")
	}

	next, res, err := h.svc.RepeatSearch(c.Context(), middleware.CurrentState(c), id)
	if err != nil {
		return jsonError(c, dashboard.HTTPStatus(err), err.Error())
	}
	return h.saveAndRespond(c, next, searchResponse(res))
}

// Sample loads the demonstration leads.
func (h *DashboardHandler) Sample(c fiber.Ctx) error {
	next := h.svc.LoadSample(middleware.CurrentState(c))
	return h.saveAndRespond(c, next, models.NewLeadViews(next.CurrentLeads))
}

// Leads returns the current leads, filtered by the potential and q query
// parameters.
func (h *DashboardHandler) Leads(c fiber.Ctx) error {
	tier, err := filter.ParseTierFilter(c.Query("potential", ""))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	st := middleware.CurrentState(c)
	leads := dashboard.FilterLeads(st, filter.Criteria{Tier: tier, Text: c.Query("q", "")})
	return jsonSuccess(c, fiber.Map{
		"total": len(st.CurrentLeads),
		"leads": models.NewLeadViews(leads),
	})
}

// Analytics returns lead, history and trend aggregates.
func (h *DashboardHandler) Analytics(c fiber.Ctx) error {
	return jsonSuccess(c, dashboard.Summarize(middleware.CurrentState(c)))
}

// History returns the search history, newest first.
func (h *DashboardHandler) History(c fiber.Ctx) error {
	return jsonSuccess(c, middleware.CurrentState(c).HistoryNewestFirst())
}

// ClearHistory empties the search history.
func (h *DashboardHandler) ClearHistory(c fiber.Ctx) error {
	next := h.svc.ClearHistory(middleware.CurrentState(c))
	return h.saveAndRespond(c, next, fiber.Map{"cleared": true})
}

// decodeParams reads SearchParams from the body. Fields the client omits
// keep the catalog defaults.
func (h *DashboardHandler) decodeParams(c fiber.Ctx) (models.SearchParams, error) {
	params := dashboard.DefaultParams(h.cfg.Catalog)
	if len(c.Body()) == 0 {
		return params, nil
	}
	if err := json.Unmarshal(c.Body(), &params); err != nil {
		return params, err
	}
	return params, nil
}

func (h *DashboardHandler) saveAndRespond(c fiber.Ctx, st state.SessionState, data any) error {
	if err := middleware.SaveState(c, st); err != nil {
		slog.Error("failed to save session state", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to save session")
	}
	return jsonSuccess(c, data)
}

func searchResponse(res dashboard.SearchResult) models.SearchResponse {
	return models.SearchResponse{
		Query:        res.Entry.Query,
		ResultsCount: res.Entry.ResultsCount,
		Counts:       res.Entry.Counts,
		Leads:        models.NewLeadViews(res.Leads),
	}
}
