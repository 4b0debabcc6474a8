package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/report"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// Create implements report.ReportRepository.
func (r *reportRepositoryImpl) Create(ctx context.Context, newReport report.DailyReport) (report.DailyReport, error) {
	created := newReport
	created.Attachments = []report.Attachment{}

	err := WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO daily_reports (user_id, date, note)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`, newReport.UserID, newReport.Date, newReport.Note).Scan(&created.ID, &created.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert report: %w", err)
		}

		for _, att := range newReport.Attachments {
			a := report.Attachment{ReportID: created.ID, Filename: att.Filename, URL: att.URL}
			err := tx.QueryRow(ctx, `
				INSERT INTO attachments (report_id, filename, url)
				VALUES ($1, $2, $3)
				RETURNING id, created_at
			`, a.ReportID, a.Filename, a.URL).Scan(&a.ID, &a.CreatedAt)
			if err != nil {
				return fmt.Errorf("failed to insert attachment: %w", err)
			}
			created.Attachments = append(created.Attachments, a)
		}
		return nil
	})
	if err != nil {
		return report.DailyReport{}, err
	}
	return created, nil
}

// List implements report.ReportRepository.
func (r *reportRepositoryImpl) List(ctx context.Context, filter report.ReportFilter) ([]report.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT dr.id, dr.user_id, dr.date, dr.note, dr.created_at, u.name, u.email
		FROM daily_reports dr
		JOIN users u ON u.id = dr.user_id
		WHERE ($1::bigint IS NULL OR dr.user_id = $1)
		  AND ($2::date IS NULL OR dr.date >= $2)
		  AND ($3::date IS NULL OR dr.date <= $3)
		ORDER BY dr.date DESC, dr.created_at DESC
	`, filter.UserID, filter.FromDate, filter.ToDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	reports := []report.DailyReport{}
	index := map[int64]int{}
	for rows.Next() {
		var dr report.DailyReport
		if err := rows.Scan(&dr.ID, &dr.UserID, &dr.Date, &dr.Note, &dr.CreatedAt, &dr.UserName, &dr.UserEmail); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		dr.Attachments = []report.Attachment{}
		index[dr.ID] = len(reports)
		reports = append(reports, dr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}
	if len(reports) == 0 {
		return reports, nil
	}

	ids := make([]int64, 0, len(reports))
	for _, dr := range reports {
		ids = append(ids, dr.ID)
	}

	attRows, err := q.Query(ctx, `
		SELECT id, report_id, filename, url, created_at
		FROM attachments
		WHERE report_id = ANY($1)
		ORDER BY id ASC
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachments: %w", err)
	}
	defer attRows.Close()

	for attRows.Next() {
		var a report.Attachment
		if err := attRows.Scan(&a.ID, &a.ReportID, &a.Filename, &a.URL, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}
		i := index[a.ReportID]
		reports[i].Attachments = append(reports[i].Attachments, a)
	}
	return reports, attRows.Err()
}
