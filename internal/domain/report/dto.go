package report

import (
	"io"
	"time"

	"github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"
)

// Upload is one multipart file of a report.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type CreateReportRequest struct {
	Date  string // YYYY-MM-DD, defaults to today
	Note  string
	Files []Upload

	MaxFiles    int
	MaxFileSize int64

	// Parsed by Validate
	ReportDate *time.Time
}

func (r *CreateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if d, ok := validator.IsValidDate(r.Date); ok {
			r.ReportDate = &d
		} else {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}
	if r.MaxFiles > 0 && len(r.Files) > r.MaxFiles {
		errs = append(errs, validator.ValidationError{Field: "attachments", Message: "at most " + validator.Itoa(r.MaxFiles) + " attachments are allowed"})
	}
	for _, f := range r.Files {
		if r.MaxFileSize > 0 && f.Size > r.MaxFileSize {
			errs = append(errs, validator.ValidationError{Field: "attachments", Message: f.Filename + " exceeds the maximum file size"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReportFilter struct {
	UserID *int64
	From   string
	To     string

	FromDate *time.Time
	ToDate   *time.Time
}

func (f *ReportFilter) Validate() error {
	from, to, errs := validator.DateRange(f.From, f.To, time.UTC)
	f.FromDate, f.ToDate = from, to
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttachmentResponse struct {
	ID       int64  `json:"id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

type ReportResponse struct {
	ID          int64                `json:"id"`
	UserID      int64                `json:"userId"`
	UserName    string               `json:"userName,omitempty"`
	Date        string               `json:"date"`
	Note        string               `json:"note"`
	Attachments []AttachmentResponse `json:"attachments"`
	CreatedAt   time.Time            `json:"createdAt"`
}

func ToResponse(r DailyReport) ReportResponse {
	resp := ReportResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		UserName:    r.UserName,
		Date:        r.Date.Format(validator.DateLayout),
		Note:        r.Note,
		Attachments: []AttachmentResponse{},
		CreatedAt:   r.CreatedAt,
	}
	for _, a := range r.Attachments {
		resp.Attachments = append(resp.Attachments, AttachmentResponse{ID: a.ID, Filename: a.Filename, URL: a.URL})
	}
	return resp
}
