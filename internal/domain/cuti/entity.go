package cuti

import "time"

type Status string

const (
	StatusPending  Status = "MENUNGGU_KONFIRMASI"
	StatusApproved Status = "DISETUJUI"
	StatusRejected Status = "DITOLAK"
)

// IsTerminal reports whether a decision has already been made.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Cuti is a leave request covering TanggalMulai..TanggalSelesai inclusive.
type Cuti struct {
	ID              int64
	UserID          int64
	Judul           string
	TanggalMulai    time.Time
	TanggalSelesai  time.Time
	Alasan          string
	Status          Status
	AlasanPenolakan *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join
	UserName  string
	UserEmail string
}
