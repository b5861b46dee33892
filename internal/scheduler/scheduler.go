package scheduler

import (
	"sync"
	"time"

	"visitcap/internal/tabtrack"
	"visitcap/pkg/logger"
)

// Scheduler periodically forgets tabs that were marked longer than ttl ago, for hosts that
// never deliver a removed event.
type Scheduler struct {
	tabs     *tabtrack.Tracker
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a sweeper. The sweep runs every interval, or every ttl/4 when interval is zero.
func New(tabs *tabtrack.Tracker, ttl, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = ttl / 4
	}
	if interval < time.Second {
		interval = time.Second
	}
	return &Scheduler{
		tabs:     tabs,
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
}

// Start runs the sweep loop in a goroutine.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("tab sweeper started", "ttl", s.ttl, "interval", s.interval)
}

// Stop ends the loop and waits for it. Calling it more than once is safe.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	s.wg.Wait()
	logger.Info("tab sweeper stopped")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-s.stopCh:
			return
		}
	}
}

// Sweep evicts stale tabs once and returns how many were forgotten.
func (s *Scheduler) Sweep() int {
	n := s.tabs.EvictOlderThan(s.now().Add(-s.ttl))
	if n > 0 {
		logger.Debug("evicted stale tabs", "count", n, "remaining", s.tabs.Size())
	}
	return n
}
