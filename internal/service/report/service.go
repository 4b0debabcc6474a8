package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/activity"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/report"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/clock"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/jwt"
	"github.com/unand-tendik/tendik-backend-go/internal/service/file"
)

type ReportServiceImpl struct {
	reportRepo  report.ReportRepository
	fileService file.FileService
	activity    activity.Recorder
	clock       clock.Clock
}

func NewReportService(reportRepo report.ReportRepository, fileService file.FileService, recorder activity.Recorder, clk clock.Clock) report.ReportService {
	return &ReportServiceImpl{
		reportRepo:  reportRepo,
		fileService: fileService,
		activity:    recorder,
		clock:       clk,
	}
}

// Create implements report.ReportService.
func (s *ReportServiceImpl) Create(ctx context.Context, req report.CreateReportRequest) (report.ReportResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return report.ReportResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	date := req.ReportDate
	if date == nil {
		today := clock.DateOf(s.clock.Now())
		date = &today
	}

	var stored []string
	cleanup := func() {
		for _, p := range stored {
			if err := s.fileService.DeleteFile(context.WithoutCancel(ctx), p); err != nil {
				slog.Warn("failed to remove orphaned attachment", "path", p, "error", err)
			}
		}
	}

	r := report.DailyReport{
		UserID: caller.UserID,
		Date:   *date,
		Note:   req.Note,
	}
	for _, f := range req.Files {
		path, url, err := s.fileService.UploadAttachment(ctx, f.Content, f.Filename, f.ContentType)
		if err != nil {
			cleanup()
			return report.ReportResponse{}, err
		}
		stored = append(stored, path)
		r.Attachments = append(r.Attachments, report.Attachment{Filename: f.Filename, URL: url})
	}

	created, err := s.reportRepo.Create(ctx, r)
	if err != nil {
		cleanup()
		return report.ReportResponse{}, fmt.Errorf("failed to create report: %w", err)
	}

	s.activity.Record(ctx, caller.UserID, activity.ActionReportCreate, activity.Metadata{
		"reportId":    created.ID,
		"attachments": len(created.Attachments),
	})
	return report.ToResponse(created), nil
}

// List implements report.ReportService.
func (s *ReportServiceImpl) List(ctx context.Context, filter report.ReportFilter) ([]report.ReportResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if !caller.Can(user.PermissionReportViewAll) {
		filter.UserID = &caller.UserID
	}

	reports, err := s.reportRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	responses := make([]report.ReportResponse, 0, len(reports))
	for _, r := range reports {
		responses = append(responses, report.ToResponse(r))
	}
	return responses, nil
}
