package uploads

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/myanimal/petcare-service/internal/infrastructure/metrics"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReferenceLister returns every upload path still stored by the application
type ReferenceLister interface {
	ReferencedUploads(ctx context.Context) ([]string, error)
}

// Sweeper periodically removes upload files that no record references.
// Files younger than the grace period are kept.
type Sweeper struct {
	manager *Manager
	refs    ReferenceLister
	grace   time.Duration
	cron    *cron.Cron
	logger  *zap.Logger
	now     func() time.Time
}

func NewSweeper(manager *Manager, refs ReferenceLister, grace time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		manager: manager,
		refs:    refs,
		grace:   grace,
		cron:    cron.New(),
		logger:  logger,
		now:     time.Now,
	}
}

// Start schedules Sweep with a standard five-field cron spec
func (s *Sweeper) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := s.Sweep(ctx); err != nil {
			s.logger.Error("upload sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	s.cron.Start()
	s.logger.Info("upload sweeper started", zap.String("schedule", schedule), zap.Duration("grace", s.grace))
	return nil
}

// Stop waits for a running sweep to finish
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

// Sweep removes unreferenced files older than the grace period and returns how many were removed
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	referenced, err := s.refs.ReferencedUploads(ctx)
	if err != nil {
		return 0, err
	}
	keep := make(map[string]struct{}, len(referenced))
	for _, p := range referenced {
		keep[p] = struct{}{}
	}

	entries, err := os.ReadDir(s.manager.Dir())
	if err != nil {
		return 0, fmt.Errorf("read upload directory: %w", err)
	}

	cutoff := s.now().Add(-s.grace)
	var orphans []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		public := s.manager.PublicPath(entry.Name())
		if _, ok := keep[public]; !ok {
			orphans = append(orphans, public)
		}
	}

	if len(orphans) > 0 {
		s.manager.Discard(orphans...)
		metrics.RecordOrphansRemoved(len(orphans))
		s.logger.Info("removed orphaned uploads", zap.Int("count", len(orphans)))
	}
	return len(orphans), nil
}
