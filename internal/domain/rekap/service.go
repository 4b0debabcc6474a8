package rekap

import (
	"context"

	"github.com/unand-tendik/tendik-backend-go/internal/pkg/export"
)

type RekapService interface {
	Generate(ctx context.Context, req RekapRequest) (Result, error)
	Export(ctx context.Context, req RekapRequest) (export.File, error)
}
