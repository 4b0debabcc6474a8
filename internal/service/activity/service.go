package activity

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/activity"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/clock"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/jwt"
)

// Config holds activity writer configuration
type Config struct {
	Workers       int           // default: 2
	QueueSize     int           // default: 256
	BatchSize     int           // default: 50
	FlushInterval time.Duration // default: 2 seconds
	WriteTimeout  time.Duration // default: 5 seconds
}

type service struct {
	repo   activity.ActivityRepository
	clock  clock.Clock
	config Config

	queue  chan activity.Log
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewActivityService starts the background writers. Call Close on shutdown.
func NewActivityService(repo activity.ActivityRepository, clk clock.Clock, cfg Config) activity.ActivityService {
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 2 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}

	s := &service{
		repo:   repo,
		clock:  clk,
		config: cfg,
		queue:  make(chan activity.Log, cfg.QueueSize),
	}

	for i := 0; i < cfg.Workers; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	slog.Info("activity writer started", "workers", cfg.Workers, "queue_size", cfg.QueueSize, "batch_size", cfg.BatchSize)
	return s
}

func (s *service) worker(id int) {
	defer s.wg.Done()

	batch := make([]activity.Log, 0, s.config.BatchSize)
	ticker := time.NewTicker(s.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), s.config.WriteTimeout)
		defer cancel()

		if err := s.repo.CreateBatch(ctx, batch); err != nil {
			slog.Warn("failed to write activity logs", "worker", id, "count", len(batch), "error", err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case entry, ok := <-s.queue:
			if !ok {
				flush()
				return
			}
			batch = append(batch, entry)
			if len(batch) >= s.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

// Record queues an entry. A full queue or a closed writer drops it with a warning.
func (s *service) Record(ctx context.Context, userID int64, action activity.Action, metadata activity.Metadata) {
	entry := activity.Log{
		UserID:    userID,
		Action:    action,
		Metadata:  metadata,
		CreatedAt: s.clock.Now(),
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		slog.Warn("activity writer closed, dropping entry", "user_id", userID, "action", action)
		return
	}

	select {
	case s.queue <- entry:
	default:
		slog.Warn("activity queue full, dropping entry", "user_id", userID, "action", action)
	}
}

// Close stops accepting entries and waits until queued ones are written.
func (s *service) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	s.wg.Wait()
	slog.Info("activity writer stopped")
}

func (s *service) List(ctx context.Context, filter activity.ActivityFilter) ([]activity.LogResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !caller.Can(user.PermissionActivityViewAll) {
		return nil, user.ErrAdminPrivilegeRequired
	}
	if err := filter.Validate(s.clock.Now().Location()); err != nil {
		return nil, err
	}

	logs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}

	responses := make([]activity.LogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, activity.ToResponse(l))
	}
	return responses, nil
}

// Purge deletes entries older than retention. A non-positive retention keeps everything.
func (s *service) Purge(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}
	cutoff := s.clock.Now().Add(-retention)

	n, err := s.repo.PurgeBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge activity logs: %w", err)
	}
	return n, nil
}
