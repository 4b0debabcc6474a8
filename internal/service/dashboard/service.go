package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/activity"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/attendance"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/dashboard"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/task"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/clock"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/jwt"
	"golang.org/x/sync/errgroup"
)

const (
	assignedTaskLimit  = 10
	todayActivityLimit = 10
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	attendanceRepo attendance.AttendanceRepository
	activityRepo   activity.ActivityRepository
	clock          clock.Clock
}

func NewDashboardService(
	repo dashboard.DashboardRepository,
	attendanceRepo attendance.AttendanceRepository,
	activityRepo activity.ActivityRepository,
	clk clock.Clock,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		attendanceRepo:      attendanceRepo,
		activityRepo:        activityRepo,
		clock:               clk,
	}
}

// GetUserDashboard runs its lookups in parallel, one query each.
func (s *DashboardServiceImpl) GetUserDashboard(ctx context.Context) (dashboard.UserDashboardResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return dashboard.UserDashboardResponse{}, err
	}

	now := s.clock.Now()
	today := clock.StartOfDay(now)
	date := clock.DateOf(now)
	monthStart := clock.DateOf(clock.StartOfMonth(now))
	monthEnd := clock.DateOf(clock.EndOfMonth(now))
	daysInMonth := monthEnd.Day()

	resp := dashboard.UserDashboardResponse{
		TugasSaya:        []task.TaskResponse{},
		AktivitasHariIni: []activity.LogResponse{},
	}

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Attendance days this month
	g.Go(func() error {
		days, err := s.CountAttendanceDays(gCtx, caller.UserID, monthStart, monthEnd)
		if err != nil {
			return fmt.Errorf("failed to count attendance days: %w", err)
		}
		resp.HariKehadiranBulanIni = days
		resp.TingkatPenyelesaian = int(math.Round(float64(days) / float64(daysInMonth) * 100))
		return nil
	})

	// 2. Reports submitted
	g.Go(func() error {
		n, err := s.CountReports(gCtx, caller.UserID)
		if err != nil {
			return fmt.Errorf("failed to count reports: %w", err)
		}
		resp.LaporanDikirim = n
		return nil
	})

	// 3. Today's attendance row, if any
	g.Go(func() error {
		a, err := s.attendanceRepo.GetByUserAndDate(gCtx, caller.UserID, date)
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get today's attendance: %w", err)
		}
		r := attendance.ToResponse(a)
		resp.AbsensiHariIni = &r
		return nil
	})

	// 4. Newest assigned tasks
	g.Go(func() error {
		tasks, err := s.ListAssignedTasks(gCtx, caller.UserID, assignedTaskLimit)
		if err != nil {
			return fmt.Errorf("failed to list assigned tasks: %w", err)
		}
		out := make([]task.TaskResponse, 0, len(tasks))
		for _, t := range tasks {
			out = append(out, task.ToResponse(t))
		}
		resp.TugasSaya = out
		return nil
	})

	// 5. Today's activity
	g.Go(func() error {
		logs, err := s.activityRepo.ListByUserSince(gCtx, caller.UserID, today, todayActivityLimit)
		if err != nil {
			return fmt.Errorf("failed to list today's activity: %w", err)
		}
		out := make([]activity.LogResponse, 0, len(logs))
		for _, l := range logs {
			out = append(out, activity.ToResponse(l))
		}
		resp.AktivitasHariIni = out
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.UserDashboardResponse{}, err
	}
	return resp, nil
}

func (s *DashboardServiceImpl) GetAdminDashboard(ctx context.Context) (dashboard.AdminDashboardResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, err
	}
	if !caller.IsAdmin() {
		return dashboard.AdminDashboardResponse{}, user.ErrAdminPrivilegeRequired
	}

	now := s.clock.Now()
	start := clock.StartOfDay(now)
	end := start.AddDate(0, 0, 1)
	date := clock.DateOf(now)

	var resp dashboard.AdminDashboardResponse
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.CountNonAdminUsers(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		resp.TotalUsers = n
		return nil
	})
	g.Go(func() error {
		n, err := s.CountPresent(gCtx, date)
		if err != nil {
			return fmt.Errorf("failed to count attendance: %w", err)
		}
		resp.PresentToday = n
		return nil
	})
	g.Go(func() error {
		n, err := s.CountTasksDone(gCtx, start, end)
		if err != nil {
			return fmt.Errorf("failed to count finished tasks: %w", err)
		}
		resp.TasksDoneToday = n
		return nil
	})
	g.Go(func() error {
		n, err := s.CountReportsOn(gCtx, date)
		if err != nil {
			return fmt.Errorf("failed to count reports: %w", err)
		}
		resp.ReportsToday = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.AdminDashboardResponse{}, err
	}
	return resp, nil
}
