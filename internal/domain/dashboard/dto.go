package dashboard

import (
	"github.com/unand-tendik/tendik-backend-go/internal/domain/activity"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/attendance"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/task"
)

// UserDashboardResponse is the staff home screen.
type UserDashboardResponse struct {
	HariKehadiranBulanIni int                            `json:"hariKehadiranBulanIni"`
	LaporanDikirim        int64                          `json:"laporanDikirim"`
	TingkatPenyelesaian   int                            `json:"tingkatPenyelesaian"`
	AbsensiHariIni        *attendance.AttendanceResponse `json:"absensiHariIni"`
	TugasSaya             []task.TaskResponse            `json:"tugasSaya"`
	AktivitasHariIni      []activity.LogResponse         `json:"aktivitasHariIni"`
}

// AdminDashboardResponse holds today's institution-wide counters.
type AdminDashboardResponse struct {
	TotalUsers     int64 `json:"totalUsers"`
	PresentToday   int64 `json:"presentToday"`
	TasksDoneToday int64 `json:"tasksDoneToday"`
	ReportsToday   int64 `json:"reportsToday"`
}
