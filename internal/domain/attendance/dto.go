package attendance

import (
	"time"

	"github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"
)

type CheckOutRequest struct {
	Note *string `json:"note"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Note != nil && len(*r.Note) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HistoryFilter struct {
	UserID *int64
	From   string // YYYY-MM-DD
	To     string // YYYY-MM-DD

	Page  int
	Limit int

	// Parsed by Validate
	FromDate *time.Time
	ToDate   *time.Time
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{Field: "page", Message: "page must be a positive number"})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be a positive number"})
	}
	if f.Limit == 0 {
		f.Limit = 31
	}
	if f.Limit > 366 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must not exceed 366"})
	}

	from, to, rangeErrs := validator.DateRange(f.From, f.To, time.UTC)
	errs = append(errs, rangeErrs...)
	f.FromDate, f.ToDate = from, to

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExportFilter struct {
	From   string
	To     string
	Format string

	FromDate *time.Time
	ToDate   *time.Time
}

func (f *ExportFilter) Validate() error {
	var errs validator.ValidationErrors

	from, to, rangeErrs := validator.DateRange(f.From, f.To, time.UTC)
	errs = append(errs, rangeErrs...)
	f.FromDate, f.ToDate = from, to

	if f.Format != "" && !validator.IsInSlice(f.Format, []string{"csv", "xlsx"}) {
		errs = append(errs, validator.ValidationError{Field: "format", Message: "format must be one of: csv, xlsx"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	UserName    string     `json:"userName,omitempty"`
	Date        string     `json:"date"`
	CheckIn     time.Time  `json:"checkIn"`
	CheckOut    *time.Time `json:"checkOut"`
	StatusAbsen Status     `json:"statusAbsen"`
	Note        *string    `json:"note"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		UserName:    a.UserName,
		Date:        a.Date.Format(validator.DateLayout),
		CheckIn:     a.CheckIn,
		CheckOut:    a.CheckOut,
		StatusAbsen: a.Status,
		Note:        a.Note,
	}
}

// CheckInResponse carries the user-facing message next to the record.
type CheckInResponse struct {
	Attendance AttendanceResponse `json:"attendance"`
	Message    string             `json:"message"`
	LateLimit  string             `json:"batasToleransi"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int64                `json:"totalPages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
