package chatapi_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roost/pkg/domain/types"
	"github.com/secmon-lab/roost/pkg/service/chatapi"
)

const testRoute = types.RouteKey("POST /test")

func TestLedgerReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown route is allowed immediately", func(t *testing.T) {
		l := chatapi.NewLedger()
		gt.NoError(t, l.Reserve(ctx, testRoute, time.Second))
	})

	t.Run("Budget is consumed per reserve", func(t *testing.T) {
		l := chatapi.NewLedger()
		l.Update(testRoute, 2, time.Now().Add(time.Hour))

		gt.NoError(t, l.Reserve(ctx, testRoute, time.Second))
		gt.NoError(t, l.Reserve(ctx, testRoute, time.Second))

		remaining, ok := l.Remaining(testRoute)
		gt.True(t, ok)
		gt.Equal(t, 0, remaining)
	})

	t.Run("Exhausted budget waits for the window reset", func(t *testing.T) {
		l := chatapi.NewLedger()
		l.Exhaust(testRoute, time.Now().Add(100*time.Millisecond))

		start := time.Now()
		gt.NoError(t, l.Reserve(ctx, testRoute, time.Second))
		gt.True(t, time.Since(start) >= 80*time.Millisecond)
	})

	t.Run("Expired window is allowed without waiting", func(t *testing.T) {
		l := chatapi.NewLedger()
		l.Exhaust(testRoute, time.Now().Add(-time.Second))

		start := time.Now()
		gt.NoError(t, l.Reserve(ctx, testRoute, time.Second))
		gt.True(t, time.Since(start) < 50*time.Millisecond)
	})

	t.Run("Wait beyond maxWait fails immediately", func(t *testing.T) {
		l := chatapi.NewLedger()
		l.Exhaust(testRoute, time.Now().Add(time.Hour))

		start := time.Now()
		err := l.Reserve(ctx, testRoute, 100*time.Millisecond)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, chatapi.ErrTagRateLimited))
		gt.True(t, time.Since(start) < 50*time.Millisecond)
	})

	t.Run("Cancellation interrupts the wait", func(t *testing.T) {
		l := chatapi.NewLedger()
		l.Exhaust(testRoute, time.Now().Add(time.Minute))

		waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		err := l.Reserve(waitCtx, testRoute, 10*time.Minute)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, chatapi.ErrTagRateLimited))
	})

	t.Run("Routes have independent budgets", func(t *testing.T) {
		l := chatapi.NewLedger()
		l.Exhaust(testRoute, time.Now().Add(time.Hour))

		other := types.RouteKey("GET /other")
		gt.NoError(t, l.Reserve(ctx, other, time.Second))
	})
}

func TestLedgerUpdate(t *testing.T) {
	t.Run("Header data overwrites reserve-time accounting", func(t *testing.T) {
		l := chatapi.NewLedger()
		l.Update(testRoute, 1, time.Now().Add(time.Hour))
		gt.NoError(t, l.Reserve(context.Background(), testRoute, time.Second))

		// A response reported a fresh window
		l.Update(testRoute, 5, time.Now().Add(time.Hour))

		remaining, ok := l.Remaining(testRoute)
		gt.True(t, ok)
		gt.Equal(t, 5, remaining)
	})

	t.Run("Remaining reports nothing for untracked routes", func(t *testing.T) {
		l := chatapi.NewLedger()
		_, ok := l.Remaining(testRoute)
		gt.False(t, ok)
	})
}
