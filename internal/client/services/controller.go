// Package services contains the submission controllers of the gymtrack
// client. Each controller sequences one user-initiated action: validate
// the form, call the session store, classify any failure, and report the
// outcome through the Notifier. Controllers are thin state machines
// (idle → submitting → idle) exposing a busy flag so screens can disable
// duplicate submission.
package services

import (
	"context"
	"sync"
)

// NotifyKind tags a user-facing notification.
type NotifyKind int

const (
	NotifySuccess NotifyKind = iota
	NotifyError
)

// Notifier renders user-facing feedback; screens decide how (toast,
// banner, terminal line).
type Notifier interface {
	Notify(kind NotifyKind, message string)
}

// submitGuard is the shared controller state machine. begin refuses
// re-entry while a submission is running; Reset (screen teardown)
// invalidates the running submission so its late completion is dropped.
type submitGuard struct {
	mu     sync.Mutex
	busy   bool
	gen    int
	cancel context.CancelFunc
}

// begin claims the submission slot. It returns the submission generation,
// a derived context that Reset cancels, and false when already busy.
func (g *submitGuard) begin(ctx context.Context) (int, context.Context, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return 0, nil, false
	}
	g.busy = true
	ctx, g.cancel = context.WithCancel(ctx)
	return g.gen, ctx, true
}

// finish releases the slot. It returns false when the submission went
// stale (Reset ran while it was in flight); callers must then stay silent.
func (g *submitGuard) finish(gen int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.gen != gen {
		return false
	}
	g.busy = false
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	return true
}

// Busy reports whether a submission is in flight.
func (g *submitGuard) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}

// Reset detaches the controller from any in-flight submission, cancelling
// its context. Called when the originating screen is torn down.
func (g *submitGuard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	g.busy = false
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}
