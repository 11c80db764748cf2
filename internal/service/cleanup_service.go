package service

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/cliptrim/api/internal/metrics"
	"github.com/cliptrim/api/internal/storage"
	"github.com/cliptrim/api/pkg/logger"
)

// CleanupService is the retention sweeper: a recurring pass over the
// storage directory that deletes files older than the retention window.
// It runs independently of request traffic against the same directory the
// trim pipeline writes to; that unsynchronized overlap is an accepted
// design tradeoff, since deletion only triggers well past the write.
type CleanupService struct {
	store     *storage.Store
	interval  time.Duration
	retention time.Duration
	cron      *cron.Cron
}

func NewCleanupService(store *storage.Store, interval, retention time.Duration) *CleanupService {
	return &CleanupService{
		store:     store,
		interval:  interval,
		retention: retention,
	}
}

// Start runs one immediate sweep, then schedules recurring sweeps on the
// configured interval.
func (s *CleanupService) Start() {
	logger.Log.Info("running startup cleanup")
	s.Sweep()

	s.cron = cron.New()
	// AddFunc only fails on an unparseable spec; @every with a valid
	// duration cannot produce one.
	_, _ = s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), func() { s.Sweep() })
	s.cron.Start()
}

// Stop halts the recurring schedule. A sweep already in flight finishes.
func (s *CleanupService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Sweep scans the storage directory once and deletes regular files whose
// age exceeds the retention window. A stat or remove failure on one entry
// is logged and skipped, never aborting the rest of the scan. Cleanup
// errors are terminal here; nothing propagates to callers.
func (s *CleanupService) Sweep() (deleted, total int) {
	entries, err := s.store.Entries()
	if err != nil {
		logger.Log.Error("cleanup failed to list storage directory", zap.Error(err))
		return 0, 0
	}

	now := time.Now()
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		total++

		info, err := e.Info()
		if err != nil {
			logger.Log.Warn("cleanup failed to stat file", zap.String("file", e.Name()), zap.Error(err))
			continue
		}

		age := now.Sub(info.ModTime())
		if age <= s.retention {
			continue
		}
		if err := s.store.Remove(e.Name()); err != nil {
			logger.Log.Warn("cleanup failed to delete file", zap.String("file", e.Name()), zap.Error(err))
			continue
		}
		deleted++
		logger.Log.Info("deleted old video",
			zap.String("file", e.Name()),
			zap.Int("age_minutes", int(age.Minutes())),
		)
	}

	metrics.SweepRunsTotal.Inc()
	metrics.SweepDeletedTotal.Add(float64(deleted))
	metrics.VideosStored.Set(float64(total - deleted))

	logger.Log.Info("cleanup complete", zap.Int("deleted", deleted), zap.Int("total", total))
	return deleted, total
}

// Schedule describes the sweep cadence for status endpoints.
func (s *CleanupService) Schedule() string {
	return fmt.Sprintf("Every %d minutes", int(s.interval.Minutes()))
}

// Retention describes the retention window for status endpoints.
func (s *CleanupService) Retention() string {
	if s.retention%time.Hour == 0 {
		hours := int(s.retention.Hours())
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d minutes", int(s.retention.Minutes()))
}
