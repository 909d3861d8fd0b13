// Package notification delivers chat notifications to subscribed recipients.
//
// Delivery is best-effort: each sink gets a bounded amount of time and a
// failing sink is logged, never retried.
//
// Batching
//
// A caller that is about to trigger many notifications at once calls Defer and
// passes the returned context down. Notifications emitted with that context are
// queued in the caller's own batch. Flush, given the same context, groups the
// queue per recipient so somebody who is a member of several sessions receives
// a single digest for the whole batch.
//
// Batches travel with the context, so concurrent callers never share one. A
// Defer on a context that already carries a batch returns false and the nested
// caller must not Flush; the outermost caller flushes.
package notification

import (
	"breakout-lab/contract"
	"breakout-lab/domain"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"
)

type Manager struct {
	log         *slog.Logger
	registry    contract.IRegistry
	sinkTimeout time.Duration
}

func NewManager(log *slog.Logger, registry contract.IRegistry, sinkTimeout time.Duration) *Manager {
	return &Manager{log: log, registry: registry, sinkTimeout: sinkTimeout}
}

type batchKey struct{}

// batch is the queue of one Defer caller. Once drained it is closed and later
// notifications go straight to delivery.
type batch struct {
	mu      sync.Mutex
	closed  bool
	pending []domain.Notification
}

func (b *batch) add(n domain.Notification) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return false
	}
	b.pending = append(b.pending, n)
	return true
}

func (b *batch) drain() []domain.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	pending := b.pending
	b.pending = nil
	b.closed = true
	return pending
}

func batchFrom(ctx context.Context) *batch {
	b, _ := ctx.Value(batchKey{}).(*batch)
	return b
}

// Notify delivers n right away, or queues it in the batch carried by ctx.
func (m *Manager) Notify(ctx context.Context, n domain.Notification) {
	if b := batchFrom(ctx); b != nil && b.add(n) {
		return
	}
	m.deliver(ctx, []domain.Digest{{Recipient: n.Recipient, Notifications: []domain.Notification{n}}})
}

// Defer opens a batch bound to the returned context.
// It returns true only when this call opened it.
func (m *Manager) Defer(ctx context.Context) (context.Context, bool) {
	if batchFrom(ctx) != nil {
		return ctx, false
	}
	return context.WithValue(ctx, batchKey{}, &batch{}), true
}

// Flush closes the batch carried by ctx and delivers its queue as one digest
// per recipient. Cancelling ctx does not drop the queue.
func (m *Manager) Flush(ctx context.Context) {
	b := batchFrom(ctx)
	if b == nil {
		return
	}
	pending := b.drain()
	if len(pending) == 0 {
		return
	}
	digests := Coalesce(pending)
	m.log.Debug("Flushing deferred notifications",
		"notifications", len(pending), "recipients", len(digests))
	m.deliver(context.WithoutCancel(ctx), digests)
}

// Deferred reports whether ctx carries a batch that is still open.
func (m *Manager) Deferred(ctx context.Context) bool {
	b := batchFrom(ctx)
	if b == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.closed
}

// Coalesce groups notifications per recipient, keeping the order in which
// recipients and their notifications first appeared.
func Coalesce(notifications []domain.Notification) []domain.Digest {
	byRecipient := lo.GroupBy(notifications, func(n domain.Notification) string {
		return n.Recipient
	})
	recipients := lo.Uniq(lo.Map(notifications, func(n domain.Notification, _ int) string {
		return n.Recipient
	}))
	return lo.Map(recipients, func(recipient string, _ int) domain.Digest {
		return domain.Digest{Recipient: recipient, Notifications: byRecipient[recipient]}
	})
}

func (m *Manager) deliver(ctx context.Context, digests []domain.Digest) {
	for _, digest := range digests {
		sinks := m.registry.GetSinks(digest.Recipient)
		if len(sinks) == 0 {
			m.log.Debug("No active sink for recipient", "recipient", digest.Recipient)
			continue
		}
		for _, sink := range sinks {
			m.consume(ctx, sink, digest)
		}
	}
}

func (m *Manager) consume(ctx context.Context, sink contract.NotificationSink, digest domain.Digest) {
	sinkCtx, cancel := context.WithTimeout(ctx, m.sinkTimeout)
	defer cancel()
	if err := sink.Consume(sinkCtx, digest); err != nil {
		m.log.Warn("Notification sink failed",
			"recipient", digest.Recipient, "notifications", len(digest.Notifications), "error", err)
	}
}
