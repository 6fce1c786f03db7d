package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/handler/http/response"
)

type OverrideHandler interface {
	// ListOverrides returns every manual day entry
	ListOverrides(w http.ResponseWriter, r *http.Request)
	// PutOverride creates or replaces the manual entry for a date
	PutOverride(w http.ResponseWriter, r *http.Request)
	// DeleteOverride removes the manual entry for a date
	DeleteOverride(w http.ResponseWriter, r *http.Request)
}

type overrideHandlerImpl struct {
	overrides shift.OverrideStore
	logger    *slog.Logger
}

func NewOverrideHandler(overrides shift.OverrideStore, logger *slog.Logger) OverrideHandler {
	return &overrideHandlerImpl{overrides: overrides, logger: logger}
}

// ListOverrides handles GET /overrides
func (h *overrideHandlerImpl) ListOverrides(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.overrides.Load())
}

// PutOverride handles PUT /overrides/{date}. The path date wins over
// whatever the body carries.
func (h *overrideHandlerImpl) PutOverride(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	var req shift.ManualEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode manual entry request", slog.Any("error", err))
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.Date = date

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	day := req.ToDay(uuid.NewString())
	if err := h.overrides.Put(date, day); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Manual entry saved", day)
}

// DeleteOverride handles DELETE /overrides/{date}
func (h *overrideHandlerImpl) DeleteOverride(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	if err := h.overrides.Remove(date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Manual entry removed", nil)
}
