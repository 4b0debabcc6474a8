package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/setting"
	"github.com/unand-tendik/tendik-backend-go/internal/handler/http/response"
)

type SettingHandler interface {
	GetAttendanceConfig(w http.ResponseWriter, r *http.Request)
	UpdateAttendanceConfig(w http.ResponseWriter, r *http.Request)
}

type settingHandlerImpl struct {
	settingService setting.SettingService
}

func NewSettingHandler(settingService setting.SettingService) SettingHandler {
	return &settingHandlerImpl{settingService: settingService}
}

func (h *settingHandlerImpl) GetAttendanceConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settingService.GetAttendanceConfig(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, cfg)
}

func (h *settingHandlerImpl) UpdateAttendanceConfig(w http.ResponseWriter, r *http.Request) {
	var req setting.UpdateAttendanceConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateAttendanceConfig decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cfg, err := h.settingService.UpdateAttendanceConfig(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Pengaturan absensi disimpan", cfg)
}
