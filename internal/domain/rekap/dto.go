package rekap

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"
)

// RekapRequest selects the period either by month/year or by an explicit
// from/to range, which takes precedence.
type RekapRequest struct {
	Bulan  string
	Tahun  string
	From   string
	To     string
	Format string

	// Resolved by Validate
	Month  int
	Year   int
	Period Period
}

// Validate fills the period. Month and year default to now's; present values
// must parse.
func (r *RekapRequest) Validate(now time.Time) error {
	var errs validator.ValidationErrors

	if r.From != "" || r.To != "" {
		if r.From == "" {
			errs = append(errs, validator.ValidationError{Field: "from", Message: "from is required when to is set"})
		}
		if r.To == "" {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "to is required when from is set"})
		}
		from, to, rangeErrs := validator.DateRange(r.From, r.To, time.UTC)
		errs = append(errs, rangeErrs...)
		if len(errs) == 0 {
			if to.Sub(*from) > 366*24*time.Hour {
				errs = append(errs, validator.ValidationError{Field: "to", Message: "period must not exceed 366 days"})
			} else {
				r.Period = Period{Start: *from, End: *to}
			}
		}
	} else {
		r.Month, r.Year = int(now.Month()), now.Year()
		if b := strings.TrimSpace(r.Bulan); b != "" {
			m, err := strconv.Atoi(b)
			if err != nil || m < 1 || m > 12 {
				errs = append(errs, validator.ValidationError{Field: "bulan", Message: "bulan must be a number between 1 and 12"})
			}
			r.Month = m
		}
		if t := strings.TrimSpace(r.Tahun); t != "" {
			y, err := strconv.Atoi(t)
			if err != nil || y < 2020 || y > now.Year()+1 {
				errs = append(errs, validator.ValidationError{Field: "tahun", Message: fmt.Sprintf("tahun must be a year between 2020 and %d", now.Year()+1)})
			}
			r.Year = y
		}
		if len(errs) == 0 {
			start := time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC)
			r.Period = Period{Start: start, End: start.AddDate(0, 1, -1)}
		}
	}

	if r.Format != "" && !validator.IsInSlice(r.Format, []string{"csv", "xlsx", "pdf"}) {
		errs = append(errs, validator.ValidationError{Field: "format", Message: "format must be one of: csv, xlsx, pdf"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodeResponse struct {
	Mulai      string `json:"mulai"`
	Selesai    string `json:"selesai"`
	JumlahHari int    `json:"jumlahHari"`
}

// StatistikDetail holds institution-wide percentages of expected attendance.
type StatistikDetail struct {
	KehadiranTepatWaktu int `json:"kehadiranTepatWaktu"`
	Terlambat           int `json:"terlambat"`
	Absen               int `json:"absen"`
	Cuti                int `json:"cuti"`
}

type Ringkasan struct {
	KehadiranSeharusnya int `json:"kehadiranSeharusnya"`
	TotalHadir          int `json:"totalHadir"`
	TotalTepatWaktu     int `json:"totalTepatWaktu"`
	TotalTerlambat      int `json:"totalTerlambat"`
	TotalAbsen          int `json:"totalAbsen"`
	TotalCuti           int `json:"totalCuti"`
	TotalTugas          int `json:"totalTugas"`
	TotalTugasSelesai   int `json:"totalTugasSelesai"`
}

type RekapAbsensi struct {
	UserID          int64   `json:"userId"`
	Nama            string  `json:"nama"`
	Jabatan         *string `json:"jabatan"`
	Hadir           int     `json:"hadir"`
	TepatWaktu      int     `json:"tepatWaktu"`
	Terlambat       int     `json:"terlambat"`
	Cuti            int     `json:"cuti"`
	Absen           int     `json:"absen"`
	PersentaseHadir int     `json:"persentaseHadir"`
}

type RekapPenyelesaianTugas struct {
	UserID       int64  `json:"userId"`
	Nama         string `json:"nama"`
	TotalTugas   int    `json:"totalTugas"`
	TugasSelesai int    `json:"tugasSelesai"`
	Persentase   int    `json:"persentase"`
}

type Result struct {
	Periode                   PeriodeResponse          `json:"periode"`
	TotalPegawai              int                      `json:"totalPegawai"`
	RataRataHadir             int                      `json:"rataRataHadir"`
	StatistikDetail           StatistikDetail          `json:"statistikDetail"`
	RataRataPenyelesaianTugas int                      `json:"rataRataPenyelesaianTugas"`
	Ringkasan                 Ringkasan                `json:"ringkasan"`
	RekapAbsensi              []RekapAbsensi           `json:"rekapAbsensi"`
	RekapPenyelesaianTugas    []RekapPenyelesaianTugas `json:"rekapPenyelesaianTugas"`
	GeneratedAt               string                   `json:"generatedAt"`
}
