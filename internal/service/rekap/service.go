package rekap

import (
	"context"
	"fmt"
	"time"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/rekap"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/clock"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/export"
	"golang.org/x/sync/errgroup"
)

type RekapServiceImpl struct {
	rekap.RekapRepository
	clock clock.Clock
}

func NewRekapService(repo rekap.RekapRepository, clk clock.Clock) rekap.RekapService {
	return &RekapServiceImpl{
		RekapRepository: repo,
		clock:           clk,
	}
}

// Generate fetches the four grouped inputs in parallel and aggregates them.
func (s *RekapServiceImpl) Generate(ctx context.Context, req rekap.RekapRequest) (rekap.Result, error) {
	now := s.clock.Now()
	if err := req.Validate(now); err != nil {
		return rekap.Result{}, err
	}
	start, end := req.Period.Start, req.Period.End

	var (
		users      []rekap.UserRow
		attendance []rekap.AttendanceCount
		leaves     []rekap.LeaveRow
		tasks      []rekap.TaskCount
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		users, err = s.ListReportableUsers(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		attendance, err = s.CountAttendance(gCtx, start, end)
		if err != nil {
			return fmt.Errorf("failed to count attendance: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		leaves, err = s.ListApprovedLeaves(gCtx, start, end)
		if err != nil {
			return fmt.Errorf("failed to list approved leaves: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		tasks, err = s.CountTasks(gCtx, start, end)
		if err != nil {
			return fmt.Errorf("failed to count tasks: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return rekap.Result{}, err
	}

	result := Aggregate(req.Period, users, attendance, leaves, tasks)
	result.GeneratedAt = now.Format(time.RFC3339)
	return result, nil
}

func (s *RekapServiceImpl) Export(ctx context.Context, req rekap.RekapRequest) (export.File, error) {
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return export.File{}, err
	}

	result, err := s.Generate(ctx, req)
	if err != nil {
		return export.File{}, err
	}

	tasksByUser := make(map[int64]rekap.RekapPenyelesaianTugas, len(result.RekapPenyelesaianTugas))
	for _, t := range result.RekapPenyelesaianTugas {
		tasksByUser[t.UserID] = t
	}

	table := export.Table{
		Title: fmt.Sprintf("Laporan Rekap %s s/d %s", result.Periode.Mulai, result.Periode.Selesai),
		Sheet: "Rekap",
		Headers: []string{
			"No", "Nama", "Jabatan", "Hadir", "Tepat Waktu", "Terlambat", "Cuti", "Absen",
			"% Hadir", "Total Tugas", "Tugas Selesai", "% Tugas",
		},
	}
	for i, r := range result.RekapAbsensi {
		t := tasksByUser[r.UserID]
		table.Rows = append(table.Rows, []any{
			i + 1, r.Nama, r.Jabatan, r.Hadir, r.TepatWaktu, r.Terlambat, r.Cuti, r.Absen,
			r.PersentaseHadir, t.TotalTugas, t.TugasSelesai, t.Persentase,
		})
	}
	table.Rows = append(table.Rows, []any{
		"", "Total", "", result.Ringkasan.TotalHadir, result.Ringkasan.TotalTepatWaktu,
		result.Ringkasan.TotalTerlambat, result.Ringkasan.TotalCuti, result.Ringkasan.TotalAbsen,
		result.RataRataHadir, result.Ringkasan.TotalTugas, result.Ringkasan.TotalTugasSelesai,
		result.RataRataPenyelesaianTugas,
	})

	name := fmt.Sprintf("laporan-rekap-%s-%s", result.Periode.Mulai, result.Periode.Selesai)
	return export.Render(format, name, table)
}
