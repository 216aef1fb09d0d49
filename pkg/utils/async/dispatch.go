package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/roost/pkg/utils/apperr"
)

// Dispatch executes a handler function asynchronously with panic recovery.
// Progress events and webhook notifications are delivered through it so a
// slow or failing receiver can never block a provisioning pipeline.
//
// The handler runs on a detached background context that preserves the
// logger; it is intentionally not bound to the run context so a cancelled
// run can still flush its final notifications.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(stack),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			apperr.Handle(newCtx, err)
		}
	}()
}

// newBackgroundContext creates a new background context preserving the logger
func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()

	logger := ctxlog.From(ctx)
	if logger != nil {
		newCtx = ctxlog.With(newCtx, logger)
	}

	return newCtx
}
