package holds

import (
	"context"
	"sync/atomic"
	"time"

	"cinebook/pkg/logger"
)

// Sweeper periodically deletes expired seat holds. A hold past its TTL is
// already unclaimable (conflict checks and materialization both filter or
// purge expired rows); the sweeper just reclaims the storage.
type Sweeper struct {
	repo     Repository
	interval time.Duration
	running  atomic.Bool
	done     chan struct{}
}

func NewSweeper(repo Repository, interval time.Duration) *Sweeper {
	return &Sweeper{
		repo:     repo,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop in a goroutine
func (s *Sweeper) Start(ctx context.Context) {
	logger.GetDefault().Info("Starting seat hold sweeper", "interval", s.interval.String())

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweep(ctx)
			case <-s.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (s *Sweeper) Stop() {
	close(s.done)
	logger.GetDefault().Info("Seat hold sweeper stopped")
}

// sweep runs one pass. The CAS guard skips a tick while the previous pass
// is still deleting, so passes never overlap.
func (s *Sweeper) sweep(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	defer s.running.Store(false)

	start := time.Now()
	deleted, err := s.repo.DeleteExpired(ctx, start)
	if err != nil {
		logger.GetDefault().WithError(err).Error("Failed to sweep expired seat holds")
		return
	}

	if deleted > 0 {
		logger.GetDefault().LogSweepCompleted(ctx, deleted, time.Since(start))
	}
}
