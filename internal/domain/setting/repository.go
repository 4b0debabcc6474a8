package setting

import "context"

type SettingRepository interface {
	// GetAttendanceConfig returns DefaultAttendanceConfig when no row exists.
	GetAttendanceConfig(ctx context.Context) (AttendanceConfig, error)
	UpsertAttendanceConfig(ctx context.Context, cfg AttendanceConfig) (AttendanceConfig, error)
}
