package setting

import "context"

type SettingService interface {
	GetAttendanceConfig(ctx context.Context) (AttendanceConfig, error)
	UpdateAttendanceConfig(ctx context.Context, req UpdateAttendanceConfigRequest) (AttendanceConfig, error)
}
