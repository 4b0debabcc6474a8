package http

import (
	"net/http"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/dashboard"
	"github.com/unand-tendik/tendik-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetUserDashboard(w http.ResponseWriter, r *http.Request)
	GetAdminDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetUserDashboard handles GET /users/dashboard
func (h *dashboardHandlerImpl) GetUserDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetUserDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetAdminDashboard handles GET /admin/dashboard
func (h *dashboardHandlerImpl) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetAdminDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
