package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shiftboard/shiftboard-backend-go/internal/handler/http/response"
	"github.com/shiftboard/shiftboard-backend-go/internal/service/settings"
)

type SettingsHandler interface {
	// GetSettings returns the stored dashboard settings
	GetSettings(w http.ResponseWriter, r *http.Request)
	// UpdateSettings validates and replaces the stored settings
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService *settings.ServiceImpl
	logger          *slog.Logger
}

func NewSettingsHandler(svc *settings.ServiceImpl, logger *slog.Logger) SettingsHandler {
	return &settingsHandlerImpl{settingsService: svc, logger: logger}
}

// GetSettings handles GET /settings
func (h *settingsHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.settingsService.Get())
}

// UpdateSettings handles PUT /settings
func (h *settingsHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode settings request", slog.Any("error", err))
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	updated, err := h.settingsService.Update(req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", updated)
}
