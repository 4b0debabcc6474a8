package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/cuti"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/rekap"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/database"
)

type rekapRepositoryImpl struct {
	db *database.DB
	// tz names the institution time zone used to bucket timestamps into dates
	tz string
}

func NewRekapRepository(db *database.DB, loc *time.Location) rekap.RekapRepository {
	tz := "UTC"
	if loc != nil {
		tz = loc.String()
	}
	return &rekapRepositoryImpl{db: db, tz: tz}
}

// ListReportableUsers implements rekap.RekapRepository.
func (r *rekapRepositoryImpl) ListReportableUsers(ctx context.Context) ([]rekap.UserRow, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT u.id, u.name, u.position
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE r.name <> $1
		ORDER BY u.name ASC, u.id ASC
	`, string(user.RoleAdmin))
	if err != nil {
		return nil, fmt.Errorf("failed to query reportable users: %w", err)
	}
	defer rows.Close()

	var users []rekap.UserRow
	for rows.Next() {
		var u rekap.UserRow
		if err := rows.Scan(&u.ID, &u.Name, &u.Position); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CountAttendance implements rekap.RekapRepository.
func (r *rekapRepositoryImpl) CountAttendance(ctx context.Context, start, end time.Time) ([]rekap.AttendanceCount, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT
			user_id,
			COUNT(*) AS hadir,
			COUNT(*) FILTER (WHERE status_absen = 'HADIR_TEPAT_WAKTU') AS tepat_waktu,
			COUNT(*) FILTER (WHERE status_absen = 'TERLAMBAT') AS terlambat
		FROM attendances
		WHERE date >= $1 AND date <= $2
		GROUP BY user_id
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance: %w", err)
	}
	defer rows.Close()

	var counts []rekap.AttendanceCount
	for rows.Next() {
		var c rekap.AttendanceCount
		if err := rows.Scan(&c.UserID, &c.Hadir, &c.TepatWaktu, &c.Terlambat); err != nil {
			return nil, fmt.Errorf("failed to scan attendance count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// ListApprovedLeaves implements rekap.RekapRepository.
func (r *rekapRepositoryImpl) ListApprovedLeaves(ctx context.Context, start, end time.Time) ([]rekap.LeaveRow, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT user_id, tanggal_mulai, tanggal_selesai
		FROM cuti
		WHERE status = $1
		  AND tanggal_mulai <= $3
		  AND tanggal_selesai >= $2
		ORDER BY user_id, tanggal_mulai
	`, string(cuti.StatusApproved), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved leaves: %w", err)
	}
	defer rows.Close()

	var leaves []rekap.LeaveRow
	for rows.Next() {
		var l rekap.LeaveRow
		if err := rows.Scan(&l.UserID, &l.Start, &l.End); err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// CountTasks implements rekap.RekapRepository.
func (r *rekapRepositoryImpl) CountTasks(ctx context.Context, start, end time.Time) ([]rekap.TaskCount, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT
			assignee_id,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'DONE') AS done
		FROM tasks
		WHERE assignee_id IS NOT NULL
		  AND (created_at AT TIME ZONE $3)::date >= $1
		  AND (created_at AT TIME ZONE $3)::date <= $2
		GROUP BY assignee_id
	`, start, end, r.tz)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}
	defer rows.Close()

	var counts []rekap.TaskCount
	for rows.Next() {
		var c rekap.TaskCount
		if err := rows.Scan(&c.UserID, &c.Total, &c.Done); err != nil {
			return nil, fmt.Errorf("failed to scan task count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
