package async

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/m-mizutani/ctxlog"
)

// inflight tracks dispatched handlers that have not yet finished
var inflight sync.WaitGroup

// Dispatch executes a handler asynchronously with panic recovery. The
// caller's context may be cancelled as soon as its request completes, so
// the handler runs on a fresh background context that keeps the logger.
// Used for best-effort notification delivery that must never block or
// fail the triggering flow.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := ctxlog.With(context.Background(), ctxlog.From(ctx))

	inflight.Add(1)
	go func() {
		defer inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("Error in async handler",
				"error", err,
			)
		}
	}()
}

// Wait blocks until every dispatched handler has finished or the context
// is cancelled. Short-lived commands call this before exiting so pending
// notifications are not cut off.
func Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
