package attendance

import (
	"context"

	"github.com/unand-tendik/tendik-backend-go/internal/pkg/export"
)

type AttendanceService interface {
	CheckIn(ctx context.Context) (CheckInResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)
	// History lists the caller's rows; administrators may filter by any user.
	History(ctx context.Context, filter HistoryFilter) (ListAttendanceResponse, error)
	Export(ctx context.Context, filter ExportFilter) (export.File, error)
}
