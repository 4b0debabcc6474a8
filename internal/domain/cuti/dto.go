package cuti

import (
	"strings"
	"time"

	"github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"
)

type CreateCutiRequest struct {
	Judul          string `json:"judul"`
	TanggalMulai   string `json:"tanggalMulai"`   // YYYY-MM-DD
	TanggalSelesai string `json:"tanggalSelesai"` // YYYY-MM-DD
	Alasan         string `json:"alasan"`

	// Parsed by Validate
	StartDate time.Time `json:"-"`
	EndDate   time.Time `json:"-"`
}

func (r *CreateCutiRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Judul = strings.TrimSpace(r.Judul)
	if r.Judul == "" {
		errs = append(errs, validator.ValidationError{Field: "judul", Message: "judul is required"})
	}

	startOK, endOK := false, false
	if validator.IsEmpty(r.TanggalMulai) {
		errs = append(errs, validator.ValidationError{Field: "tanggalMulai", Message: "tanggalMulai is required"})
	} else if d, ok := validator.IsValidDate(r.TanggalMulai); ok {
		r.StartDate, startOK = d, true
	} else {
		errs = append(errs, validator.ValidationError{Field: "tanggalMulai", Message: "tanggalMulai must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.TanggalSelesai) {
		errs = append(errs, validator.ValidationError{Field: "tanggalSelesai", Message: "tanggalSelesai is required"})
	} else if d, ok := validator.IsValidDate(r.TanggalSelesai); ok {
		r.EndDate, endOK = d, true
	} else {
		errs = append(errs, validator.ValidationError{Field: "tanggalSelesai", Message: "tanggalSelesai must be in YYYY-MM-DD format"})
	}
	if startOK && endOK && r.EndDate.Before(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "tanggalSelesai", Message: "tanggalSelesai must not be before tanggalMulai"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectCutiRequest struct {
	AlasanPenolakan string `json:"alasanPenolakan"`
}

func (r *RejectCutiRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.AlasanPenolakan) > 1000 {
		errs = append(errs, validator.ValidationError{Field: "alasanPenolakan", Message: "alasanPenolakan must not exceed 1000 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CutiFilter struct {
	UserID *int64
	Status string
}

func (f *CutiFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && !validator.IsInSlice(f.Status, []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: MENUNGGU_KONFIRMASI, DISETUJUI, DITOLAK",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CutiResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	UserName        string    `json:"userName,omitempty"`
	Judul           string    `json:"judul"`
	TanggalMulai    string    `json:"tanggalMulai"`
	TanggalSelesai  string    `json:"tanggalSelesai"`
	JumlahHari      int       `json:"jumlahHari"`
	Alasan          string    `json:"alasan"`
	Status          Status    `json:"status"`
	AlasanPenolakan *string   `json:"alasanPenolakan"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func ToResponse(c Cuti) CutiResponse {
	return CutiResponse{
		ID:              c.ID,
		UserID:          c.UserID,
		UserName:        c.UserName,
		Judul:           c.Judul,
		TanggalMulai:    c.TanggalMulai.Format(validator.DateLayout),
		TanggalSelesai:  c.TanggalSelesai.Format(validator.DateLayout),
		JumlahHari:      DaysBetween(c.TanggalMulai, c.TanggalSelesai) + 1,
		Alasan:          c.Alasan,
		Status:          c.Status,
		AlasanPenolakan: c.AlasanPenolakan,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
