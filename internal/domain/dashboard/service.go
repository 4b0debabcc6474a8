package dashboard

import "context"

type DashboardService interface {
	// GetUserDashboard returns the caller's own figures.
	GetUserDashboard(ctx context.Context) (UserDashboardResponse, error)
	GetAdminDashboard(ctx context.Context) (AdminDashboardResponse, error)
}
