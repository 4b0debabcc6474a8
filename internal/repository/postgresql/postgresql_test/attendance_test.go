package postgresql_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/attendance"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/repository/postgresql"
)

func TestAttendanceRepository_CreateIfAbsent(t *testing.T) {
	resetDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(testDB)
	u := createTestUser(t, ctx, "Siti", "siti@unand.ac.id", user.RoleTenaga)

	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2024, 3, 11, 1, 5, 0, 0, time.UTC)

	created, err := repo.CreateIfAbsent(ctx, attendance.Attendance{UserID: u.ID, Date: date, CheckIn: checkIn, Status: attendance.StatusOnTime})
	require.NoError(t, err)
	assert.Equal(t, date, created.Date.UTC())

	_, err = repo.CreateIfAbsent(ctx, attendance.Attendance{UserID: u.ID, Date: date, CheckIn: checkIn, Status: attendance.StatusLate})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	found, err := repo.GetByUserAndDate(ctx, u.ID, date)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnTime, found.Status)

	_, err = repo.GetByUserAndDate(ctx, u.ID, date.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceRepository_ConcurrentCheckIn(t *testing.T) {
	resetDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(testDB)
	u := createTestUser(t, ctx, "Siti", "siti@unand.ac.id", user.RoleTenaga)

	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateIfAbsent(ctx, attendance.Attendance{UserID: u.ID, Date: date, CheckIn: time.Now(), Status: attendance.StatusOnTime})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestAttendanceRepository_CheckOutOnce(t *testing.T) {
	resetDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(testDB)
	u := createTestUser(t, ctx, "Siti", "siti@unand.ac.id", user.RoleTenaga)

	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	created, err := repo.CreateIfAbsent(ctx, attendance.Attendance{UserID: u.ID, Date: date, CheckIn: time.Now(), Status: attendance.StatusOnTime})
	require.NoError(t, err)

	note := "selesai"
	out, err := repo.CheckOut(ctx, created.ID, time.Now(), &note)
	require.NoError(t, err)
	require.NotNil(t, out.CheckOut)
	assert.Equal(t, "selesai", *out.Note)

	_, err = repo.CheckOut(ctx, created.ID, time.Now(), nil)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestAttendanceRepository_ListAndExport(t *testing.T) {
	resetDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(testDB)
	siti := createTestUser(t, ctx, "Siti", "siti@unand.ac.id", user.RoleTenaga)
	budi := createTestUser(t, ctx, "Budi", "budi@unand.ac.id", user.RoleTenaga)

	for d := 1; d <= 3; d++ {
		date := time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
		for _, u := range []user.User{siti, budi} {
			_, err := repo.CreateIfAbsent(ctx, attendance.Attendance{UserID: u.ID, Date: date, CheckIn: date.Add(time.Hour), Status: attendance.StatusOnTime})
			require.NoError(t, err)
		}
	}

	from := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	rows, total, err := repo.List(ctx, attendance.HistoryFilter{UserID: &siti.ID, FromDate: &from, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, rows, 2)
	assert.Equal(t, 3, rows[0].Date.Day())
	assert.Equal(t, "Siti", rows[0].UserName)

	exported, err := repo.ListForExport(ctx, &from, nil)
	require.NoError(t, err)
	require.Len(t, exported, 4)
	assert.Equal(t, "Budi", exported[0].UserName)
	assert.Equal(t, "budi@unand.ac.id", exported[0].UserEmail)
}
