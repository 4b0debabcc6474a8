package report

import "context"

type ReportService interface {
	Create(ctx context.Context, req CreateReportRequest) (ReportResponse, error)
	// List shows the caller's reports; administrators may see everyone's.
	List(ctx context.Context, filter ReportFilter) ([]ReportResponse, error)
}
