package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/activity"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/clock"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/jwt"
)

// HousekeepingJobs trims the activity log and the revoked-token set.
type HousekeepingJobs struct {
	activityService activity.ActivityService
	jwtService      jwt.Service
	clock           clock.Clock
	retentionDays   int
}

func NewHousekeepingJobs(activityService activity.ActivityService, jwtService jwt.Service, clk clock.Clock, retentionDays int) *HousekeepingJobs {
	return &HousekeepingJobs{
		activityService: activityService,
		jwtService:      jwtService,
		clock:           clk,
		retentionDays:   retentionDays,
	}
}

func (j *HousekeepingJobs) RegisterJobs(scheduler *Scheduler) {
	if j.retentionDays > 0 {
		scheduler.AddJob("purge_activity_logs", 24*time.Hour, j.PurgeActivityLogs)
	} else {
		slog.Info("Activity log retention disabled")
	}
	scheduler.AddJob("purge_revoked_tokens", time.Hour, j.PurgeRevokedTokens)
}

func (j *HousekeepingJobs) PurgeActivityLogs(ctx context.Context) error {
	retention := time.Duration(j.retentionDays) * 24 * time.Hour
	deleted, err := j.activityService.Purge(ctx, retention)
	if err != nil {
		return fmt.Errorf("failed to purge activity logs: %w", err)
	}
	if deleted > 0 {
		slog.Info("Cron: purged activity logs", "deleted", deleted, "retention_days", j.retentionDays)
	}
	return nil
}

func (j *HousekeepingJobs) PurgeRevokedTokens(ctx context.Context) error {
	if purged := j.jwtService.PurgeRevoked(j.clock.Now()); purged > 0 {
		slog.Info("Cron: purged expired revoked tokens", "purged", purged)
	}
	return nil
}
