package handlers

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"leadgen/internal/analytics"
	"leadgen/internal/config"
	"leadgen/internal/dashboard"
	"leadgen/internal/export"
	"leadgen/internal/filter"
	"leadgen/internal/middleware"
	"leadgen/internal/models"
	"leadgen/internal/query"
	"leadgen/internal/state"
	"leadgen/internal/validation"
)

// DashboardHandler serves the HTML dashboard.
type DashboardHandler struct {
	svc *dashboard.Service
	cfg *config.Config
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(svc *dashboard.Service, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{svc: svc, cfg: cfg}
}

// HistoryRow is one search history entry formatted for display.
type HistoryRow struct {
	ID             uuid.UUID
	Timestamp      string
	Query          string
	Terms          string
	Sector         string
	Location       string
	ResultsCount   int
	Counts         models.TierCounts
	ConversionRate float64
}

// Index renders the dashboard. The potential and q query parameters filter
// the results tab.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	st := middleware.CurrentState(c)
	return h.render(c, fiber.StatusOK, st, h.formParams(st), "")
}

// Preview renders the query string for the submitted form as an HTMX partial.
func (h *DashboardHandler) Preview(c fiber.Ctx) error {
	params, err := h.parseForm(c)
	if err != nil {
		return htmxError(c, err.Error())
	}
	payload, err := h.svc.Preview(params)
	if err != nil {
		return htmxError(c, err.Error())
	}
	return c.Render("partials/query_preview", fiber.Map{
		"Query": payload.Query,
	}, "")
}

// Search runs a search with the submitted form and redirects to the
// results tab. Failures re-render the form with the error and leave the
// session untouched.
func (h *DashboardHandler) Search(c fiber.Ctx) error {
	st := middleware.CurrentState(c)

	params, err := h.parseForm(c)
	if err != nil {
		return h.render(c, fiber.StatusBadRequest, st, params, err.Error())
	}

	// The saved state derives from st as loaded at request start; a change
	// made by another tab of the same session during the call is overwritten.
	next, _, err := h.svc.Search(c.Context(), st, params)
	if err != nil {
		return h.render(c, dashboard.HTTPStatus(err), st, params, err.Error())
	}
	return h.saveAndRedirect(c, next, "/?tab=results")
}

// Sample loads the demonstration leads.
func (h *DashboardHandler) Sample(c fiber.Ctx) error {
	next := h.svc.LoadSample(middleware.CurrentState(c))
	return h.saveAndRedirect(c, next, "/?tab=results")
}

// ClearHistory empties the search history.
func (h *DashboardHandler) ClearHistory(c fiber.Ctx) error {
	next := h.svc.ClearHistory(middleware.CurrentState(c))
	return h.saveAndRedirect(c, next, "/?tab=history")
}

// Repeat re-runs a history entry.
func (h *DashboardHandler) Repeat(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid history entry id")
	}

	st := middleware.CurrentState(c)
	next, _, err := h.svc.RepeatSearch(c.Context(), st, id)
	if err != nil {
		if entry, findErr := st.FindEntry(id); findErr == nil {
			return h.render(c, dashboard.HTTPStatus(err), st, entry.Params, err.Error())
		}
		return fiber.NewError(dashboard.HTTPStatus(err), err.Error())
	}
	return h.saveAndRedirect(c, next, "/?tab=results")
}

// ExportLeads downloads the filtered lead list as CSV.
func (h *DashboardHandler) ExportLeads(c fiber.Ctx) error {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	leads := dashboard.FilterLeads(middleware.CurrentState(c), criteria)
	data, err := export.LeadsCSV(leads)
	if err != nil {
		return err
	}
	return sendCSV(c, export.LeadsFilename(time.Now()), data)
}

// ExportHistory downloads the full search history as CSV.
func (h *DashboardHandler) ExportHistory(c fiber.Ctx) error {
	data, err := export.HistoryCSV(middleware.CurrentState(c).History)
	if err != nil {
		return err
	}
	return sendCSV(c, export.HistoryFilename(time.Now()), data)
}

func (h *DashboardHandler) render(c fiber.Ctx, status int, st state.SessionState, params models.SearchParams, errMsg string) error {
	tab := c.Query("tab", "search")
	if errMsg != "" {
		tab = "search"
	}
	text := c.Query("q", "")

	criteria, err := criteriaFromQuery(c)
	if err != nil {
		if errMsg == "" {
			errMsg = err.Error()
			status = fiber.StatusBadRequest
		}
		criteria = filter.Criteria{Tier: filter.TierAll, Text: text}
	}

	var preview string
	if payload, err := h.svc.Preview(params); err == nil {
		preview = payload.Query
	}

	filtered := dashboard.FilterLeads(st, criteria)

	return c.Status(status).Render("index", MergeBranding(fiber.Map{
		"Title":             "Dashboard",
		"Tab":               tab,
		"Error":             errMsg,
		"Catalog":           h.cfg.Catalog,
		"Params":            params,
		"TermsText":         strings.Join(params.Terms, " "),
		"Preview":           preview,
		"WebhookConfigured": h.cfg.IsWebhookConfigured(),
		"Potential":         string(criteria.Tier),
		"Q":                 text,
		"Leads":             models.NewLeadViews(filtered),
		"TotalLeads":        len(st.CurrentLeads),
		"Overview":          dashboard.Summarize(st),
		"History":           historyRows(st),
	}, h.cfg))
}

// formParams prefills the search form with the most recent search, or the
// catalog defaults when there is none.
func (h *DashboardHandler) formParams(st state.SessionState) models.SearchParams {
	if n := len(st.History); n > 0 {
		return st.History[n-1].Params
	}
	return dashboard.DefaultParams(h.cfg.Catalog)
}

func (h *DashboardHandler) parseForm(c fiber.Ctx) (models.SearchParams, error) {
	params := dashboard.DefaultParams(h.cfg.Catalog)
	params.Terms = validation.SplitTerms(c.FormValue("executive_terms"))
	if v := c.FormValue("sector"); v != "" {
		params.Sector = v
	}
	if v := c.FormValue("location"); v != "" {
		params.Location = v
	}

	var err error
	if params.NumResults, err = formInt(c, "num_results", params.NumResults); err != nil {
		return params, err
	}
	if params.StartPage, err = formInt(c, "start_page", params.StartPage); err != nil {
		return params, err
	}
	return params, nil
}

func formInt(c fiber.Ctx, field string, fallback int) (int, error) {
	v := strings.TrimSpace(c.FormValue(field))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, &query.ValidationError{Field: field, Err: fmt.Errorf("not a number: %q", v)}
	}
	return n, nil
}

func criteriaFromQuery(c fiber.Ctx) (filter.Criteria, error) {
	tier, err := filter.ParseTierFilter(c.Query("potential", ""))
	if err != nil {
		return filter.Criteria{}, err
	}
	return filter.Criteria{Tier: tier, Text: c.Query("q", "")}, nil
}

func historyRows(st state.SessionState) []HistoryRow {
	entries := st.HistoryNewestFirst()
	rows := make([]HistoryRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, HistoryRow{
			ID:             e.ID,
			Timestamp:      e.Timestamp.Format("02/01/2006 15:04"),
			Query:          e.Query,
			Terms:          strings.Join(e.Params.Terms, ", "),
			Sector:         e.Params.Sector,
			Location:       e.Params.Location,
			ResultsCount:   e.ResultsCount,
			Counts:         e.Counts,
			ConversionRate: analytics.Round1(e.ConversionRate),
		})
	}
	return rows
}

func (h *DashboardHandler) saveAndRedirect(c fiber.Ctx, st state.SessionState, to string) error {
	if err := middleware.SaveState(c, st); err != nil {
		slog.Error("failed to save session state", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save session")
	}
	return c.Redirect().Status(fiber.StatusSeeOther).To(to)
}

func sendCSV(c fiber.Ctx, filename string, data []byte) error {
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, export.ContentType)
	return c.Send(data)
}
