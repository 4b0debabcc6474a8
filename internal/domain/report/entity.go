package report

import "time"

// DailyReport is a staff member's end-of-day report with optional files.
type DailyReport struct {
	ID          int64
	UserID      int64
	Date        time.Time
	Note        string
	CreatedAt   time.Time
	Attachments []Attachment

	// Join
	UserName  string
	UserEmail string
}

type Attachment struct {
	ID        int64
	ReportID  int64
	Filename  string
	URL       string
	CreatedAt time.Time
}
