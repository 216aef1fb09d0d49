package interfaces

import (
	"context"

	"github.com/secmon-lab/roost/pkg/domain/model"
)

// Notifier delivers provisioning results to an external reporting target.
// Delivery failures are logged by callers and never propagate into the
// provisioning pipeline.
type Notifier interface {
	// NotifySpace reports a single finalized space outcome
	NotifySpace(ctx context.Context, outcome *model.SpaceOutcome) error

	// NotifyResult reports the aggregate result of a completed run
	NotifyResult(ctx context.Context, result *model.ProvisionResult) error
}

// ProgressObserver receives fire-and-forget per-step completion events.
// Implementations must not assume they are called on any particular
// goroutine; the orchestrator never waits for an observer.
type ProgressObserver interface {
	OnStep(ctx context.Context, event *model.ProgressEvent)
}
