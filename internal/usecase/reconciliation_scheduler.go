package usecase

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// IReconciliationScheduler is what the HTTP layer needs from the scheduler.
type IReconciliationScheduler interface {
	RunNow(ctx context.Context) (ReconciliationResult, bool)
	Last() (ReconciliationResult, int)
}

// ReconciliationScheduler drives an IReconciler periodically and on demand.
// At most one run is in flight; overlapping requests are dropped.
type ReconciliationScheduler struct {
	reconciler IReconciler
	interval   time.Duration

	running atomic.Bool
	wg      sync.WaitGroup

	mu   sync.Mutex
	last ReconciliationResult
	runs int
}

var (
	_ IReconciliationScheduler = (*ReconciliationScheduler)(nil)
	_ ReconcileTrigger         = (*ReconciliationScheduler)(nil)
)

func NewReconciliationScheduler(reconciler IReconciler, interval time.Duration) *ReconciliationScheduler {
	return &ReconciliationScheduler{reconciler: reconciler, interval: interval}
}

// Start runs the reconciler once and then on every tick until ctx is
// cancelled. A non-positive interval runs once and never ticks.
func (s *ReconciliationScheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.RunNow(ctx)
		if s.interval <= 0 {
			return
		}
		log.Printf("[reconcile][scheduler] started interval=%s", s.interval)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.RunNow(ctx)
			case <-ctx.Done():
				log.Printf("[reconcile][scheduler] stopped")
				return
			}
		}
	}()
}

// Trigger starts a run in the background and returns immediately.
func (s *ReconciliationScheduler) Trigger(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.RunNow(context.WithoutCancel(ctx))
	}()
}

// RunNow runs synchronously. It reports false when another run was already
// in flight and nothing was done.
func (s *ReconciliationScheduler) RunNow(ctx context.Context) (ReconciliationResult, bool) {
	if !s.running.CompareAndSwap(false, true) {
		log.Printf("[reconcile][scheduler] run already in flight; skipping")
		return ReconciliationResult{}, false
	}
	defer s.running.Store(false)

	res := s.reconciler.Run(ctx)

	s.mu.Lock()
	s.last = res
	s.runs++
	s.mu.Unlock()
	return res, true
}

// Last returns the most recent result and how many runs have completed.
func (s *ReconciliationScheduler) Last() (ReconciliationResult, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.runs
}

// Wait blocks until every background run started by Start or Trigger returns.
func (s *ReconciliationScheduler) Wait() {
	s.wg.Wait()
}
