// Package ratelimit implements the fixed-window request limiter that
// gates the API surface. Counters live in process memory only: each
// instance of the service has an independent view, so a horizontally
// scaled deployment needs a shared counter store instead.
package ratelimit

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
)

// Class is the coarse route category a request is limited under.
type Class string

const (
	ClassRead   Class = "read"
	ClassWrite  Class = "write"
	ClassChat   Class = "chat"
	ClassUpload Class = "upload"
)

// Policy is the fixed-window budget for one route class.
type Policy struct {
	Window      time.Duration
	MaxRequests int
}

// DefaultPolicies reflect the cost profile of each class: reads are cheap,
// chat burns LLM spend, uploads hit parsing and the store hardest.
var DefaultPolicies = map[Class]Policy{
	ClassRead:   {Window: time.Minute, MaxRequests: 60},
	ClassWrite:  {Window: time.Minute, MaxRequests: 10},
	ClassChat:   {Window: time.Minute, MaxRequests: 15},
	ClassUpload: {Window: time.Minute, MaxRequests: 5},
}

// Classify buckets a request by path prefix and method. Chat and upload
// prefixes take precedence for POST; any other POST is a write; everything
// else counts as a read.
func Classify(path, method string) Class {
	if method == "POST" {
		switch {
		case strings.HasPrefix(path, "/api/chat"):
			return ClassChat
		case strings.HasPrefix(path, "/api/upload"):
			return ClassUpload
		default:
			return ClassWrite
		}
	}
	return ClassRead
}

// Result is the outcome of one limiter check.
type Result struct {
	Allowed   bool
	Class     Class
	Remaining int
	// ResetIn is whole seconds until the current window expires, rounded up.
	ResetIn int
}

type bucket struct {
	count   int
	resetAt time.Time
}

// Limiter is a process-wide fixed-window counter keyed by
// (client, path, method). A bucket resets wholesale once its window
// elapses, which can admit up to twice the nominal rate across a window
// boundary; the trade is that no per-request decay bookkeeping is needed.
type Limiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	policies map[Class]Policy
	now      func() time.Time

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// WithPolicies overrides the per-class budgets.
func WithPolicies(policies map[Class]Policy) Option {
	return func(l *Limiter) { l.policies = policies }
}

func New(opts ...Option) *Limiter {
	l := &Limiter{
		buckets:  make(map[string]*bucket),
		policies: DefaultPolicies,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check records one request against the client's bucket for the request's
// route class and reports whether it is allowed.
func (l *Limiter) Check(clientID, path, method string) Result {
	class := Classify(path, method)
	policy := l.policies[class]
	key := fmt.Sprintf("%s:%s:%s", clientID, path, method)
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok || now.After(b.resetAt) {
		l.buckets[key] = &bucket{count: 1, resetAt: now.Add(policy.Window)}
		return Result{
			Allowed:   true,
			Class:     class,
			Remaining: policy.MaxRequests - 1,
			ResetIn:   ceilSeconds(policy.Window),
		}
	}

	if b.count >= policy.MaxRequests {
		return Result{
			Allowed:   false,
			Class:     class,
			Remaining: 0,
			ResetIn:   ceilSeconds(b.resetAt.Sub(now)),
		}
	}

	b.count++
	return Result{
		Allowed:   true,
		Class:     class,
		Remaining: policy.MaxRequests - b.count,
		ResetIn:   ceilSeconds(b.resetAt.Sub(now)),
	}
}

// Len reports the number of live buckets.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func ceilSeconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}
