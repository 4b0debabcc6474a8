package activity

import (
	"time"

	"github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"
)

const defaultListLimit = 100

type ActivityFilter struct {
	UserID *int64
	From   string
	To     string
	Limit  int

	// Parsed by Validate
	FromDate *time.Time
	ToDate   *time.Time
}

func (f *ActivityFilter) Validate(loc *time.Location) error {
	from, to, errs := validator.DateRange(f.From, f.To, loc)
	if f.Limit <= 0 || f.Limit > 500 {
		f.Limit = defaultListLimit
	}
	if len(errs) > 0 {
		return errs
	}
	f.FromDate = from
	if to != nil {
		// inclusive end of day
		end := to.AddDate(0, 0, 1)
		f.ToDate = &end
	}
	return nil
}

type LogResponse struct {
	ID        int64    `json:"id"`
	UserID    int64    `json:"userId"`
	UserName  string   `json:"userName,omitempty"`
	Action    Action   `json:"action"`
	Metadata  Metadata `json:"metadata,omitempty"`
	CreatedAt string   `json:"createdAt"`
}

func ToResponse(l Log) LogResponse {
	return LogResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		UserName:  l.UserName,
		Action:    l.Action,
		Metadata:  l.Metadata,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}
