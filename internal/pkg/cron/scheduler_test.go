package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/activity"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/clock"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/jwt"
)

func TestScheduler_RunsImmediatelyAndOnTick(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddJob("count", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	require.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	stopped := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load())
}

func TestScheduler_RunOnceSurvivesFailures(t *testing.T) {
	s := NewScheduler()
	var ran []string
	s.AddJob("fails", time.Hour, func(ctx context.Context) error {
		ran = append(ran, "fails")
		return errors.New("boom")
	})
	s.AddJob("panics", time.Hour, func(ctx context.Context) error {
		ran = append(ran, "panics")
		panic("bad job")
	})
	s.AddJob("ok", time.Hour, func(ctx context.Context) error {
		ran = append(ran, "ok")
		return nil
	})

	s.RunOnce(context.Background())
	assert.Equal(t, []string{"fails", "panics", "ok"}, ran)
}

func TestScheduler_AddAfterStartIgnored(t *testing.T) {
	s := NewScheduler()
	s.Start()
	defer s.Stop()

	s.AddJob("late", time.Hour, func(ctx context.Context) error { return nil })
	assert.Empty(t, s.jobs)
}

type fakePurger struct {
	activity.ActivityService
	retention time.Duration
	calls     int
}

func (f *fakePurger) Purge(ctx context.Context, retention time.Duration) (int64, error) {
	f.calls++
	f.retention = retention
	return 4, nil
}

func TestHousekeeping_RegisterJobs(t *testing.T) {
	now := time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC)
	jwtSvc := jwt.NewJWTService("secret", "1h")
	purger := &fakePurger{}

	s := NewScheduler()
	NewHousekeepingJobs(purger, jwtSvc, clock.Fixed(now), 30).RegisterJobs(s)
	require.Len(t, s.jobs, 2)

	token, _, err := jwtSvc.GenerateAccessToken(1, "a@unand.ac.id", user.RoleTenaga)
	require.NoError(t, err)
	jwtSvc.RevokeToken(token, now.Add(-time.Minute).Unix())

	s.RunOnce(context.Background())
	assert.Equal(t, 1, purger.calls)
	assert.Equal(t, 30*24*time.Hour, purger.retention)
	assert.False(t, jwtSvc.IsTokenRevoked(token))
}

func TestHousekeeping_RetentionDisabled(t *testing.T) {
	purger := &fakePurger{}
	s := NewScheduler()
	NewHousekeepingJobs(purger, jwt.NewJWTService("secret", "1h"), clock.Fixed(time.Now()), 0).RegisterJobs(s)

	require.Len(t, s.jobs, 1)
	assert.Equal(t, "purge_revoked_tokens", s.jobs[0].Name)
}
