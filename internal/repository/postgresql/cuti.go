package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/cuti"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/database"
)

type cutiRepositoryImpl struct {
	db *database.DB
}

func NewCutiRepository(db *database.DB) cuti.CutiRepository {
	return &cutiRepositoryImpl{db: db}
}

const cutiSelect = `
	SELECT c.id, c.user_id, c.judul, c.tanggal_mulai, c.tanggal_selesai, c.alasan,
	       c.status, c.alasan_penolakan, c.created_at, c.updated_at, u.name, u.email
	FROM cuti c
	JOIN users u ON u.id = c.user_id`

func scanCuti(row pgx.Row) (cuti.Cuti, error) {
	var c cuti.Cuti
	err := row.Scan(
		&c.ID, &c.UserID, &c.Judul, &c.TanggalMulai, &c.TanggalSelesai, &c.Alasan,
		&c.Status, &c.AlasanPenolakan, &c.CreatedAt, &c.UpdatedAt, &c.UserName, &c.UserEmail,
	)
	return c, err
}

// Create implements cuti.CutiRepository.
func (r *cutiRepositoryImpl) Create(ctx context.Context, c cuti.Cuti) (cuti.Cuti, error) {
	q := GetQuerier(ctx, r.db)

	var id int64
	err := q.QueryRow(ctx, `
		INSERT INTO cuti (user_id, judul, tanggal_mulai, tanggal_selesai, alasan, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, c.UserID, c.Judul, c.TanggalMulai, c.TanggalSelesai, c.Alasan, cuti.StatusPending).Scan(&id)
	if err != nil {
		return cuti.Cuti{}, fmt.Errorf("failed to create cuti: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements cuti.CutiRepository.
func (r *cutiRepositoryImpl) GetByID(ctx context.Context, id int64) (cuti.Cuti, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanCuti(q.QueryRow(ctx, cutiSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cuti.Cuti{}, cuti.ErrCutiNotFound
		}
		return cuti.Cuti{}, fmt.Errorf("failed to get cuti: %w", err)
	}
	return c, nil
}

// List implements cuti.CutiRepository.
func (r *cutiRepositoryImpl) List(ctx context.Context, filter cuti.CutiFilter) ([]cuti.Cuti, error) {
	q := GetQuerier(ctx, r.db)

	var status *string
	if filter.Status != "" {
		status = &filter.Status
	}

	rows, err := q.Query(ctx, cutiSelect+`
		WHERE ($1::bigint IS NULL OR c.user_id = $1)
		  AND ($2::text IS NULL OR c.status = $2)
		ORDER BY c.created_at DESC, c.id DESC
	`, filter.UserID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query cuti: %w", err)
	}
	defer rows.Close()

	list := []cuti.Cuti{}
	for rows.Next() {
		c, err := scanCuti(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cuti: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// UpdateStatus implements cuti.CutiRepository.
func (r *cutiRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status cuti.Status, alasanPenolakan *string) (cuti.Cuti, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE cuti SET status = $1, alasan_penolakan = $2, updated_at = NOW() WHERE id = $3
	`, status, alasanPenolakan, id)
	if err != nil {
		return cuti.Cuti{}, fmt.Errorf("failed to update cuti status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return cuti.Cuti{}, cuti.ErrCutiNotFound
	}

	return r.GetByID(ctx, id)
}
