package chatapi

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roost/pkg/domain/types"
)

type budget struct {
	remaining int
	reset     time.Time
}

// Ledger tracks per-route rate-limit budgets shared by all concurrent
// space pipelines. Access is serialized so no two goroutines can race on
// consuming the same budget window, and an exhaustion observed by one
// goroutine is immediately visible to others issuing on the same route.
type Ledger struct {
	mu      sync.Mutex
	budgets map[types.RouteKey]budget
}

// NewLedger creates an empty rate budget ledger
func NewLedger() *Ledger {
	return &Ledger{
		budgets: make(map[types.RouteKey]budget),
	}
}

// Reserve consumes one call from the route's budget, blocking until the
// window resets when the budget is exhausted. The reserve-time decrement is
// the conservative default accounting; Update overwrites it with
// authoritative header data once a response arrives.
//
// A wait longer than maxWait fails immediately with a non-retriable
// rate-limit error instead of blocking.
func (l *Ledger) Reserve(ctx context.Context, route types.RouteKey, maxWait time.Duration) error {
	for {
		wait, ok := l.tryReserve(route)
		if ok {
			return nil
		}

		if maxWait > 0 && wait > maxWait {
			return goerr.New("rate limit reset exceeds maximum wait",
				goerr.T(ErrTagRateLimited),
				goerr.V("route", route),
				goerr.V("wait", wait),
				goerr.V("maxWait", maxWait))
		}

		select {
		case <-ctx.Done():
			return goerr.Wrap(ctx.Err(), "canceled while waiting for rate limit reset",
				goerr.T(ErrTagRateLimited), goerr.V("route", route))
		case <-time.After(wait):
		}
	}
}

func (l *Ledger) tryReserve(route types.RouteKey) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.budgets[route]
	if !ok {
		// Unknown budget: allow, real accounting comes from response headers
		return 0, true
	}

	now := time.Now()
	if !b.reset.After(now) {
		// Window expired
		delete(l.budgets, route)
		return 0, true
	}

	if b.remaining > 0 {
		b.remaining--
		l.budgets[route] = b
		return 0, true
	}

	return b.reset.Sub(now), false
}

// Update records the budget reported by response headers
func (l *Ledger) Update(route types.RouteKey, remaining int, reset time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.budgets[route] = budget{remaining: remaining, reset: reset}
}

// Exhaust marks a route exhausted until the given reset time. Used when a
// 429 response arrives as an authoritative rate-limit signal.
func (l *Ledger) Exhaust(route types.RouteKey, reset time.Time) {
	l.Update(route, 0, reset)
}

// Remaining returns the tracked remaining budget for a route
func (l *Ledger) Remaining(route types.RouteKey) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.budgets[route]
	if !ok || !b.reset.After(time.Now()) {
		return 0, false
	}
	return b.remaining, true
}
