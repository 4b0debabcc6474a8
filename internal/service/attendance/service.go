package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/activity"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/attendance"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/setting"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/clock"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/export"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/jwt"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	settingRepo    setting.SettingRepository
	activity       activity.Recorder
	clock          clock.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	settingRepo setting.SettingRepository,
	recorder activity.Recorder,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		settingRepo:    settingRepo,
		activity:       recorder,
		clock:          clk,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.CheckInResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := s.clock.Now()
	today := clock.DateOf(now)

	_, err = s.attendanceRepo.GetByUserAndDate(ctx, caller.UserID, today)
	if err == nil {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	cfg, err := s.settingRepo.GetAttendanceConfig(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get attendance config: %w", err)
	}

	if !attendance.IsOpen(now, cfg) {
		return attendance.CheckInResponse{}, fmt.Errorf("%w. Jam masuk dimulai pukul %s.", attendance.ErrAttendanceNotOpen, cfg.StartClock())
	}

	status := attendance.Classify(now, cfg)
	lateLimit := attendance.LateLimit(now, cfg).Format("15:04")

	// The unique (user_id, date) constraint settles concurrent check-ins.
	created, err := s.attendanceRepo.CreateIfAbsent(ctx, attendance.Attendance{
		UserID:  caller.UserID,
		Date:    today,
		CheckIn: now,
		Status:  status,
	})
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	s.activity.Record(ctx, caller.UserID, activity.ActionAttendanceCheckIn, activity.Metadata{
		"attendanceId": created.ID,
		"status":       string(status),
	})

	message := "Absen berhasil, Terima kasih telah hadir tepat waktu."
	if status == attendance.StatusLate {
		message = fmt.Sprintf("Absen berhasil, namun Anda Terlambat (Batas toleransi: %s).", lateLimit)
	}

	return attendance.CheckInResponse{
		Attendance: attendance.ToResponse(created),
		Message:    message,
		LateLimit:  lateLimit,
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now()

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, caller.UserID, clock.DateOf(now))
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if existing.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	updated, err := s.attendanceRepo.CheckOut(ctx, existing.ID, now, req.Note)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.activity.Record(ctx, caller.UserID, activity.ActionAttendanceCheckOut, activity.Metadata{
		"attendanceId": updated.ID,
	})
	return attendance.ToResponse(updated), nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, filter attendance.HistoryFilter) (attendance.ListAttendanceResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	// Non-admin users only see their own rows
	if !caller.Can(user.PermissionAttendanceViewAll) {
		filter.UserID = &caller.UserID
	}

	rows, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(rows))
	for _, a := range rows {
		responses = append(responses, attendance.ToResponse(a))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int64(math.Ceil(float64(total) / float64(filter.Limit))),
		Attendances: responses,
	}, nil
}

// Export implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Export(ctx context.Context, filter attendance.ExportFilter) (export.File, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return export.File{}, err
	}
	if !caller.Can(user.PermissionAttendanceViewAll) {
		return export.File{}, user.ErrAdminPrivilegeRequired
	}
	if err := filter.Validate(); err != nil {
		return export.File{}, err
	}
	format, err := export.ParseFormat(filter.Format)
	if err != nil {
		return export.File{}, err
	}

	rows, err := s.attendanceRepo.ListForExport(ctx, filter.FromDate, filter.ToDate)
	if err != nil {
		return export.File{}, fmt.Errorf("failed to list attendance for export: %w", err)
	}

	loc := s.clock.Now().Location()
	table := export.Table{
		Title:   "Data Absensi",
		Sheet:   "Absensi",
		Headers: []string{"userId", "name", "email", "date", "checkIn", "checkOut", "note"},
	}
	for _, a := range rows {
		var checkOut any
		if a.CheckOut != nil {
			checkOut = a.CheckOut.In(loc).Format(time.DateTime)
		}
		table.Rows = append(table.Rows, []any{
			a.UserID,
			a.UserName,
			a.UserEmail,
			a.Date.Format(validator.DateLayout),
			a.CheckIn.In(loc).Format(time.DateTime),
			checkOut,
			a.Note,
		})
	}

	name := "absensi"
	if filter.FromDate != nil {
		name += "-" + filter.FromDate.Format(validator.DateLayout)
	}
	if filter.ToDate != nil {
		name += "-" + filter.ToDate.Format(validator.DateLayout)
	}
	return export.Render(format, name, table)
}
