package ratelimit_test

import (
	"testing"
	"time"

	"kaapi/backend/internal/ratelimit"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestLimiter(t *testing.T) (*ratelimit.Limiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)}
	return ratelimit.New(ratelimit.WithClock(clock.Now)), clock
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path   string
		method string
		want   ratelimit.Class
	}{
		{"/api/revenue", "GET", ratelimit.ClassRead},
		{"/api/uploads", "GET", ratelimit.ClassRead},
		{"/api/revenue", "POST", ratelimit.ClassWrite},
		{"/api/chat", "POST", ratelimit.ClassChat},
		{"/api/chat/session", "POST", ratelimit.ClassChat},
		{"/api/upload", "POST", ratelimit.ClassUpload},
		{"/api/chat", "GET", ratelimit.ClassRead},
		{"/api/upload", "OPTIONS", ratelimit.ClassRead},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, ratelimit.Classify(tc.path, tc.method), "%s %s", tc.method, tc.path)
	}
}

func TestLimiter_RejectsSixthUploadInWindow(t *testing.T) {
	limiter, _ := newTestLimiter(t)

	for i := 0; i < 5; i++ {
		result := limiter.Check("1.2.3.4", "/api/upload", "POST")
		require.True(t, result.Allowed, "request %d", i+1)
		require.Equal(t, 4-i, result.Remaining)
	}

	result := limiter.Check("1.2.3.4", "/api/upload", "POST")
	require.False(t, result.Allowed)
	require.Zero(t, result.Remaining)
	require.LessOrEqual(t, result.ResetIn, 60)
	require.Positive(t, result.ResetIn)
}

func TestLimiter_WindowResetRestoresBudget(t *testing.T) {
	limiter, clock := newTestLimiter(t)

	for i := 0; i < 6; i++ {
		limiter.Check("1.2.3.4", "/api/upload", "POST")
	}

	clock.Advance(61 * time.Second)

	result := limiter.Check("1.2.3.4", "/api/upload", "POST")
	require.True(t, result.Allowed)
	// Counter restarted at 1.
	require.Equal(t, 4, result.Remaining)
	require.Equal(t, 60, result.ResetIn)
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t)

	for i := 0; i < 5; i++ {
		require.True(t, limiter.Check("1.2.3.4", "/api/upload", "POST").Allowed)
	}
	require.False(t, limiter.Check("1.2.3.4", "/api/upload", "POST").Allowed)

	// Different client: fresh budget.
	require.True(t, limiter.Check("5.6.7.8", "/api/upload", "POST").Allowed)
	// Same client, different class: fresh budget.
	require.True(t, limiter.Check("1.2.3.4", "/api/revenue", "GET").Allowed)
	// Same client and path, different method: separate bucket.
	require.True(t, limiter.Check("1.2.3.4", "/api/upload", "GET").Allowed)
}

func TestLimiter_ReadBudget(t *testing.T) {
	limiter, _ := newTestLimiter(t)

	for i := 0; i < 60; i++ {
		require.True(t, limiter.Check("c", "/api/revenue", "GET").Allowed, "request %d", i+1)
	}
	require.False(t, limiter.Check("c", "/api/revenue", "GET").Allowed)
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := ratelimit.New()

	const goroutines = 8
	const perGoroutine = 5

	results := make(chan bool, goroutines*perGoroutine)
	for g := 0; g < goroutines; g++ {
		go func() {
			for i := 0; i < perGoroutine; i++ {
				results <- limiter.Check("shared", "/api/revenue", "GET").Allowed
			}
		}()
	}

	allowed := 0
	for i := 0; i < goroutines*perGoroutine; i++ {
		if <-results {
			allowed++
		}
	}

	// 40 requests against a budget of 60: every one must land exactly once.
	require.Equal(t, goroutines*perGoroutine, allowed)
}

func TestSweep_RemovesOnlyExpiredBuckets(t *testing.T) {
	limiter, clock := newTestLimiter(t)

	limiter.Check("a", "/api/revenue", "GET")
	clock.Advance(30 * time.Second)
	limiter.Check("b", "/api/revenue", "GET")
	require.Equal(t, 2, limiter.Len())

	// 31s later bucket "a" (60s window) has expired, "b" has not.
	clock.Advance(31 * time.Second)
	removed := limiter.Sweep()
	require.Equal(t, 1, removed)
	require.Equal(t, 1, limiter.Len())
}

func TestStartSweeper_StopTerminates(t *testing.T) {
	limiter := ratelimit.New()
	limiter.StartSweeper(time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	limiter.Stop()
}
