package holds

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type sweepRepo struct {
	mockRepository
	calls   atomic.Int32
	block   chan struct{}
	deleted int64
	err     error
}

func (r *sweepRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.calls.Add(1)
	if r.block != nil {
		<-r.block
	}
	return r.deleted, r.err
}

func TestSweepDeletesExpired(t *testing.T) {
	repo := &sweepRepo{deleted: 4}
	sweeper := NewSweeper(repo, time.Minute)

	sweeper.sweep(context.Background())

	assert.Equal(t, int32(1), repo.calls.Load())
	assert.False(t, sweeper.running.Load())
}

func TestSweepSwallowsErrors(t *testing.T) {
	repo := &sweepRepo{err: errors.New("connection reset")}
	sweeper := NewSweeper(repo, time.Minute)

	// Must not panic, must leave the guard released
	sweeper.sweep(context.Background())
	assert.False(t, sweeper.running.Load())

	// And the next pass still runs
	sweeper.sweep(context.Background())
	assert.Equal(t, int32(2), repo.calls.Load())
}

func TestSweepNeverOverlaps(t *testing.T) {
	repo := &sweepRepo{block: make(chan struct{})}
	sweeper := NewSweeper(repo, time.Minute)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sweeper.sweep(context.Background())
	}()

	// Wait for the first pass to take the guard
	for sweeper.running.Load() == false {
		time.Sleep(time.Millisecond)
	}

	// Concurrent ticks bounce off the guard without touching the repo
	sweeper.sweep(context.Background())
	sweeper.sweep(context.Background())
	assert.Equal(t, int32(1), repo.calls.Load())

	close(repo.block)
	wg.Wait()
	assert.False(t, sweeper.running.Load())
}

func TestSweeperStartStop(t *testing.T) {
	repo := &sweepRepo{}
	sweeper := NewSweeper(repo, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper.Start(ctx)
	time.Sleep(35 * time.Millisecond)
	sweeper.Stop()

	// Let any in-flight pass drain before sampling
	time.Sleep(25 * time.Millisecond)
	swept := repo.calls.Load()
	assert.Greater(t, swept, int32(0))

	// No more passes after Stop
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, swept, repo.calls.Load())
}

// guard against accidental interface drift
var _ Repository = (*sweepRepo)(nil)
