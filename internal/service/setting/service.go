package setting

import (
	"context"
	"fmt"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/activity"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/setting"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/jwt"
)

type SettingServiceImpl struct {
	setting.SettingRepository
	activity activity.Recorder
}

func NewSettingService(repo setting.SettingRepository, recorder activity.Recorder) setting.SettingService {
	return &SettingServiceImpl{SettingRepository: repo, activity: recorder}
}

// UpdateAttendanceConfig implements setting.SettingService.
func (s *SettingServiceImpl) UpdateAttendanceConfig(ctx context.Context, req setting.UpdateAttendanceConfigRequest) (setting.AttendanceConfig, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return setting.AttendanceConfig{}, err
	}
	if !caller.Can(user.PermissionSettingsManage) {
		return setting.AttendanceConfig{}, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return setting.AttendanceConfig{}, err
	}

	cfg, err := s.SettingRepository.UpsertAttendanceConfig(ctx, req.ToConfig())
	if err != nil {
		return setting.AttendanceConfig{}, fmt.Errorf("failed to save attendance config: %w", err)
	}

	s.activity.Record(ctx, caller.UserID, activity.ActionSettingsUpdate, activity.Metadata{
		"startHour":   cfg.StartHour,
		"startMinute": cfg.StartMinute,
		"tolerance":   cfg.Tolerance,
	})
	return cfg, nil
}
