package rekap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/rekap"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var february2023 = rekap.Period{Start: day(2023, 2, 1), End: day(2023, 2, 28)}

func TestAggregate_TwoUsersTwentyEightDays(t *testing.T) {
	users := []rekap.UserRow{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	attendance := []rekap.AttendanceCount{{UserID: 1, Hadir: 20, TepatWaktu: 18, Terlambat: 2}}
	leaves := []rekap.LeaveRow{{UserID: 1, Start: day(2023, 2, 6), End: day(2023, 2, 8)}}

	res := Aggregate(february2023, users, attendance, leaves, nil)

	assert.Equal(t, 28, res.Periode.JumlahHari)
	assert.Equal(t, 56, res.Ringkasan.KehadiranSeharusnya)
	assert.Equal(t, 3, res.Ringkasan.TotalCuti)
	assert.Equal(t, 33, res.Ringkasan.TotalAbsen)

	require.Len(t, res.RekapAbsensi, 2)
	a := res.RekapAbsensi[0]
	assert.Equal(t, 20, a.Hadir)
	assert.Equal(t, 3, a.Cuti)
	assert.Equal(t, 5, a.Absen)
	assert.Equal(t, 71, a.PersentaseHadir)

	b := res.RekapAbsensi[1]
	assert.Equal(t, 0, b.Hadir)
	assert.Equal(t, 28, b.Absen)

	// 20/56, 18/56, 2/56, 33/56, 3/56
	assert.Equal(t, 36, res.RataRataHadir)
	assert.Equal(t, 32, res.StatistikDetail.KehadiranTepatWaktu)
	assert.Equal(t, 4, res.StatistikDetail.Terlambat)
	assert.Equal(t, 59, res.StatistikDetail.Absen)
	assert.Equal(t, 5, res.StatistikDetail.Cuti)
}

func TestAggregate_AbsenceNeverNegative(t *testing.T) {
	users := []rekap.UserRow{{ID: 1, Name: "A"}}
	// More rows than days, as produced by inconsistent data.
	attendance := []rekap.AttendanceCount{{UserID: 1, Hadir: 27, TepatWaktu: 27}}
	leaves := []rekap.LeaveRow{{UserID: 1, Start: day(2023, 2, 1), End: day(2023, 2, 10)}}

	res := Aggregate(february2023, users, attendance, leaves, nil)

	assert.Equal(t, 0, res.Ringkasan.TotalAbsen)
	assert.Equal(t, 0, res.RekapAbsensi[0].Absen)
	assert.Equal(t, 0, res.StatistikDetail.Absen)
}

func TestAggregate_LeaveClampedToPeriod(t *testing.T) {
	users := []rekap.UserRow{{ID: 1, Name: "A"}}
	leaves := []rekap.LeaveRow{
		{UserID: 1, Start: day(2023, 1, 29), End: day(2023, 2, 2)},  // 2 days in February
		{UserID: 1, Start: day(2023, 2, 27), End: day(2023, 3, 5)},  // 2 days in February
		{UserID: 1, Start: day(2023, 3, 10), End: day(2023, 3, 12)}, // outside
	}

	res := Aggregate(february2023, users, nil, leaves, nil)

	assert.Equal(t, 4, res.RekapAbsensi[0].Cuti)
	assert.Equal(t, 24, res.RekapAbsensi[0].Absen)
}

func TestAggregate_PercentagesUseOwnDenominators(t *testing.T) {
	users := []rekap.UserRow{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}
	attendance := []rekap.AttendanceCount{
		{UserID: 1, Hadir: 28, TepatWaktu: 28},
		{UserID: 2, Hadir: 14, TepatWaktu: 10, Terlambat: 4},
		{UserID: 3, Hadir: 1, Terlambat: 1},
	}

	res := Aggregate(february2023, users, attendance, nil, nil)

	var perUserSum int
	for _, r := range res.RekapAbsensi {
		perUserSum += r.PersentaseHadir
	}
	assert.Equal(t, 100+50+4, perUserSum)
	// 43 of 84 expected
	assert.Equal(t, 51, res.RataRataHadir)
	assert.NotEqual(t, perUserSum, res.RataRataHadir)
}

func TestAggregate_NoUsers(t *testing.T) {
	res := Aggregate(february2023, nil, nil, nil, nil)

	assert.Equal(t, 0, res.TotalPegawai)
	assert.Equal(t, 0, res.Ringkasan.KehadiranSeharusnya)
	assert.Equal(t, 0, res.RataRataHadir)
	assert.Equal(t, 0, res.StatistikDetail.Absen)
	assert.Empty(t, res.RekapAbsensi)
	assert.NotNil(t, res.RekapAbsensi)
}

func TestAggregate_IgnoresRowsOfUnlistedUsers(t *testing.T) {
	users := []rekap.UserRow{{ID: 1, Name: "A"}}
	attendance := []rekap.AttendanceCount{{UserID: 1, Hadir: 5, TepatWaktu: 5}, {UserID: 99, Hadir: 28}}
	tasks := []rekap.TaskCount{{UserID: 99, Total: 4, Done: 4}}

	res := Aggregate(february2023, users, attendance, nil, tasks)

	assert.Equal(t, 5, res.Ringkasan.TotalHadir)
	assert.Equal(t, 0, res.Ringkasan.TotalTugas)
}

func TestAggregate_TaskCompletion(t *testing.T) {
	users := []rekap.UserRow{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	tasks := []rekap.TaskCount{{UserID: 1, Total: 3, Done: 2}}

	res := Aggregate(february2023, users, nil, nil, tasks)

	require.Len(t, res.RekapPenyelesaianTugas, 2)
	assert.Equal(t, 67, res.RekapPenyelesaianTugas[0].Persentase)
	assert.Equal(t, 0, res.RekapPenyelesaianTugas[1].Persentase)
	assert.Equal(t, 0, res.RekapPenyelesaianTugas[1].TotalTugas)
	assert.Equal(t, 67, res.RataRataPenyelesaianTugas)
}

func TestPercent_RoundsHalfUp(t *testing.T) {
	assert.Equal(t, 1, percent(1, 200))
	assert.Equal(t, 0, percent(1, 201))
	assert.Equal(t, 0, percent(5, 0))
}
