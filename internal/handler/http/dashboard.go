package http

import (
	"net/http"
	"strconv"

	"github.com/shiftboard/shiftboard-backend-go/internal/handler/http/response"
	dashboardService "github.com/shiftboard/shiftboard-backend-go/internal/service/dashboard"
	"github.com/shiftboard/shiftboard-backend-go/internal/service/export"
)

type DashboardHandler interface {
	// GetDashboard returns the combined dashboard view model
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// ReloadFeed re-fetches the feed document
	ReloadFeed(w http.ResponseWriter, r *http.Request)
	// ListDays returns the reconciled day list
	ListDays(w http.ResponseWriter, r *http.Request)
	// UpcomingDays returns today-or-later days
	UpcomingDays(w http.ResponseWriter, r *http.Request)
	// ListLeaves returns resolved leave requests
	ListLeaves(w http.ResponseWriter, r *http.Request)
	// PendingLeaves returns leave requests stuck mid-lifecycle
	PendingLeaves(w http.ResponseWriter, r *http.Request)
	// MonthlyStats returns the feed's per-month aggregates
	MonthlyStats(w http.ResponseWriter, r *http.Request)
	// ExportCSV streams the reconciled days as a CSV download
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService *dashboardService.ServiceImpl
}

func NewDashboardHandler(svc *dashboardService.ServiceImpl) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: svc}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	year := parseYear(r.URL.Query().Get("year"))

	result, err := h.dashboardService.Dashboard(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ReloadFeed handles POST /feed/reload
func (h *dashboardHandlerImpl) ReloadFeed(w http.ResponseWriter, r *http.Request) {
	doc, err := h.dashboardService.Reload(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Feed reloaded", map[string]any{
		"anno":        doc.Year,
		"last_update": doc.LastUpdate,
		"giornate":    len(doc.Days),
		"licenze":     len(doc.Leaves),
	})
}

// ListDays handles GET /days
func (h *dashboardHandlerImpl) ListDays(w http.ResponseWriter, r *http.Request) {
	filter := dashboardService.ParseFilter(r.URL.Query().Get("filter"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.dashboardService.Days(r.Context(), filter, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpcomingDays handles GET /days/upcoming
func (h *dashboardHandlerImpl) UpcomingDays(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.UpcomingDays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListLeaves handles GET /leaves
func (h *dashboardHandlerImpl) ListLeaves(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Leaves(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PendingLeaves handles GET /leaves/pending
func (h *dashboardHandlerImpl) PendingLeaves(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.PendingLeaves(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyStats handles GET /stats/monthly
func (h *dashboardHandlerImpl) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Monthly(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportCSV handles GET /export/csv
func (h *dashboardHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	days, err := h.dashboardService.ReconciledDays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	raw, err := export.CSV(days)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="giornate.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// parseYear parses a year query value; anything invalid means the
// current feed year.
func parseYear(raw string) int {
	if raw == "" {
		return 0
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 2000 || year > 2100 {
		return 0
	}
	return year
}
