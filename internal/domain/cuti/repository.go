package cuti

import "context"

type CutiRepository interface {
	Create(ctx context.Context, c Cuti) (Cuti, error)

	// GetByID returns ErrCutiNotFound for unknown ids.
	GetByID(ctx context.Context, id int64) (Cuti, error)

	// List returns requests newest first, filtered by user and status when set.
	List(ctx context.Context, filter CutiFilter) ([]Cuti, error)

	// UpdateStatus records a decision; alasanPenolakan is stored as given (nil clears it).
	UpdateStatus(ctx context.Context, id int64, status Status, alasanPenolakan *string) (Cuti, error)
}
