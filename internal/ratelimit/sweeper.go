package ratelimit

import (
	"time"

	"kaapi/backend/internal/logger"
)

// DefaultSweepInterval is how often expired buckets are reclaimed.
const DefaultSweepInterval = 5 * time.Minute

// StartSweeper runs a background loop that drops expired buckets so the
// table stays bounded under many distinct clients. Stop shuts it down.
func (l *Limiter) StartSweeper(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	l.wg.Add(1)
	go l.sweepLoop(interval)
	logger.Info("rate limit sweeper started", "interval", interval)
}

// Stop terminates the sweeper and waits for it to exit.
func (l *Limiter) Stop() {
	close(l.stopCh)
	l.wg.Wait()
	logger.Info("rate limit sweeper stopped")
}

func (l *Limiter) sweepLoop(interval time.Duration) {
	defer l.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed := l.Sweep()
			if removed > 0 {
				logger.Debug("swept expired rate limit buckets", "removed", removed)
			}
		case <-l.stopCh:
			return
		}
	}
}

// Sweep removes every bucket whose window has already expired and returns
// how many were dropped.
func (l *Limiter) Sweep() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, b := range l.buckets {
		if now.After(b.resetAt) {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}
