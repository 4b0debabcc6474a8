package setting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/activity"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/setting"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/jwt"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"
)

type fakeSettingRepo struct {
	cfg   *setting.AttendanceConfig
	saves int
}

func (f *fakeSettingRepo) GetAttendanceConfig(ctx context.Context) (setting.AttendanceConfig, error) {
	if f.cfg == nil {
		return setting.DefaultAttendanceConfig(), nil
	}
	return *f.cfg, nil
}

func (f *fakeSettingRepo) UpsertAttendanceConfig(ctx context.Context, cfg setting.AttendanceConfig) (setting.AttendanceConfig, error) {
	f.saves++
	f.cfg = &cfg
	return cfg, nil
}

type fakeRecorder struct {
	actions []activity.Action
	meta    activity.Metadata
}

func (f *fakeRecorder) Record(ctx context.Context, userID int64, action activity.Action, metadata activity.Metadata) {
	f.actions = append(f.actions, action)
	f.meta = metadata
}

func intPtr(i int) *int { return &i }

func TestUpdateAttendanceConfig(t *testing.T) {
	repo := &fakeSettingRepo{}
	rec := &fakeRecorder{}
	svc := NewSettingService(repo, rec)
	admin := jwt.WithCaller(context.Background(), jwt.Caller{UserID: 1, Role: user.RoleAdmin})

	cfg, err := svc.GetAttendanceConfig(admin)
	require.NoError(t, err)
	assert.Equal(t, setting.DefaultAttendanceConfig(), cfg)

	cfg, err = svc.UpdateAttendanceConfig(admin, setting.UpdateAttendanceConfigRequest{
		StartHour: intPtr(7), StartMinute: intPtr(30), Tolerance: intPtr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, setting.AttendanceConfig{StartHour: 7, StartMinute: 30, Tolerance: 10}, cfg)

	stored, err := svc.GetAttendanceConfig(admin)
	require.NoError(t, err)
	assert.Equal(t, cfg, stored)

	assert.Equal(t, []activity.Action{activity.ActionSettingsUpdate}, rec.actions)
	assert.Equal(t, 10, rec.meta["tolerance"])
}

func TestUpdateAttendanceConfig_Rejected(t *testing.T) {
	repo := &fakeSettingRepo{}
	svc := NewSettingService(repo, &fakeRecorder{})

	staff := jwt.WithCaller(context.Background(), jwt.Caller{UserID: 2, Role: user.RoleTenaga})
	_, err := svc.UpdateAttendanceConfig(staff, setting.UpdateAttendanceConfigRequest{
		StartHour: intPtr(7), StartMinute: intPtr(30), Tolerance: intPtr(10),
	})
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)

	admin := jwt.WithCaller(context.Background(), jwt.Caller{UserID: 1, Role: user.RoleAdmin})
	_, err = svc.UpdateAttendanceConfig(admin, setting.UpdateAttendanceConfigRequest{StartHour: intPtr(25)})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	assert.Zero(t, repo.saves)
}
