package rekap

import (
	"math"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/cuti"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/rekap"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"
)

// Aggregate builds the recap for users over period. Rows for users outside
// users are ignored, as are leaves that do not overlap the period.
func Aggregate(period rekap.Period, users []rekap.UserRow, attendance []rekap.AttendanceCount, leaves []rekap.LeaveRow, tasks []rekap.TaskCount) rekap.Result {
	daysInPeriod := cuti.DaysBetween(period.Start, period.End) + 1
	if daysInPeriod < 0 {
		daysInPeriod = 0
	}

	attendanceByUser := make(map[int64]rekap.AttendanceCount, len(attendance))
	for _, a := range attendance {
		attendanceByUser[a.UserID] = a
	}

	leaveDaysByUser := make(map[int64]int, len(leaves))
	for _, l := range leaves {
		if !cuti.Overlaps(l.Start, l.End, period.Start, period.End) {
			continue
		}
		leaveDaysByUser[l.UserID] += cuti.ClampedDays(l.Start, l.End, period.Start, period.End)
	}

	tasksByUser := make(map[int64]rekap.TaskCount, len(tasks))
	for _, t := range tasks {
		tasksByUser[t.UserID] = t
	}

	var sum rekap.Ringkasan
	absensi := make([]rekap.RekapAbsensi, 0, len(users))
	penyelesaian := make([]rekap.RekapPenyelesaianTugas, 0, len(users))

	for _, u := range users {
		a := attendanceByUser[u.ID]
		leaveDays := leaveDaysByUser[u.ID]

		absensi = append(absensi, rekap.RekapAbsensi{
			UserID:          u.ID,
			Nama:            u.Name,
			Jabatan:         u.Position,
			Hadir:           a.Hadir,
			TepatWaktu:      a.TepatWaktu,
			Terlambat:       a.Terlambat,
			Cuti:            leaveDays,
			Absen:           nonNegative(daysInPeriod - a.Hadir - leaveDays),
			PersentaseHadir: percent(a.Hadir, max(daysInPeriod, 1)),
		})

		t := tasksByUser[u.ID]
		completion := 0
		if t.Total > 0 {
			completion = percent(t.Done, t.Total)
		}
		penyelesaian = append(penyelesaian, rekap.RekapPenyelesaianTugas{
			UserID:       u.ID,
			Nama:         u.Name,
			TotalTugas:   t.Total,
			TugasSelesai: t.Done,
			Persentase:   completion,
		})

		sum.TotalHadir += a.Hadir
		sum.TotalTepatWaktu += a.TepatWaktu
		sum.TotalTerlambat += a.Terlambat
		sum.TotalCuti += leaveDays
		sum.TotalTugas += t.Total
		sum.TotalTugasSelesai += t.Done
	}

	sum.KehadiranSeharusnya = len(users) * daysInPeriod
	sum.TotalAbsen = nonNegative(sum.KehadiranSeharusnya - sum.TotalHadir - sum.TotalCuti)

	expected := max(sum.KehadiranSeharusnya, 1)
	taskCompletion := 0
	if sum.TotalTugas > 0 {
		taskCompletion = percent(sum.TotalTugasSelesai, sum.TotalTugas)
	}

	return rekap.Result{
		Periode: rekap.PeriodeResponse{
			Mulai:      period.Start.Format(validator.DateLayout),
			Selesai:    period.End.Format(validator.DateLayout),
			JumlahHari: daysInPeriod,
		},
		TotalPegawai:  len(users),
		RataRataHadir: percent(sum.TotalHadir, expected),
		StatistikDetail: rekap.StatistikDetail{
			KehadiranTepatWaktu: percent(sum.TotalTepatWaktu, expected),
			Terlambat:           percent(sum.TotalTerlambat, expected),
			Absen:               percent(sum.TotalAbsen, expected),
			Cuti:                percent(sum.TotalCuti, expected),
		},
		RataRataPenyelesaianTugas: taskCompletion,
		Ringkasan:                 sum,
		RekapAbsensi:              absensi,
		RekapPenyelesaianTugas:    penyelesaian,
	}
}

// percent rounds count/denominator*100 half away from zero.
func percent(count, denominator int) int {
	if denominator <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(denominator) * 100))
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
