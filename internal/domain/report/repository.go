package report

import "context"

type ReportRepository interface {
	// Create inserts the report and its attachments in one transaction.
	Create(ctx context.Context, r DailyReport) (DailyReport, error)

	// List returns reports with their attachments, newest first.
	List(ctx context.Context, filter ReportFilter) ([]DailyReport, error)
}
