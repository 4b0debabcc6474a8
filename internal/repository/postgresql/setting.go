package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/setting"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/database"
)

type settingRepositoryImpl struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.SettingRepository {
	return &settingRepositoryImpl{db: db}
}

// GetAttendanceConfig implements setting.SettingRepository.
func (r *settingRepositoryImpl) GetAttendanceConfig(ctx context.Context) (setting.AttendanceConfig, error) {
	q := GetQuerier(ctx, r.db)

	// pgx decodes JSONB straight into the struct
	cfg := setting.DefaultAttendanceConfig()
	err := q.QueryRow(ctx, `SELECT value FROM system_settings WHERE key = $1`, setting.KeyAttendanceConfig).Scan(&cfg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return setting.DefaultAttendanceConfig(), nil
		}
		return setting.AttendanceConfig{}, fmt.Errorf("failed to get attendance config: %w", err)
	}
	return cfg, nil
}

// UpsertAttendanceConfig implements setting.SettingRepository.
func (r *settingRepositoryImpl) UpsertAttendanceConfig(ctx context.Context, cfg setting.AttendanceConfig) (setting.AttendanceConfig, error) {
	q := GetQuerier(ctx, r.db)

	var saved setting.AttendanceConfig
	err := q.QueryRow(ctx, `
		INSERT INTO system_settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING value
	`, setting.KeyAttendanceConfig, cfg).Scan(&saved)
	if err != nil {
		return setting.AttendanceConfig{}, fmt.Errorf("failed to save attendance config: %w", err)
	}
	return saved, nil
}
