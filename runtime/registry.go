// Package runtime holds the in-process state shared by the breakout services:
// notification subscriptions and per-parent serialization.
// It contains no business rules.
package runtime

import (
	"breakout-lab/contract"
	"maps"
	"slices"
	"sync"
)

type Set map[string]struct{}

// subscription is one live connection and the recipient it delivers for.
type subscription struct {
	recipient string
	sink      contract.NotificationSink
}

// Registry routes digests to the connections of their recipient.
// It implements contract.IRegistry.
type Registry struct {
	mu            sync.RWMutex
	subscriptions map[string]subscription // by connection id
	recipients    map[string]Set          // recipient -> connection ids
}

func NewRegistry() *Registry {
	return &Registry{
		subscriptions: make(map[string]subscription),
		recipients:    make(map[string]Set),
	}
}

// GetSinks returns the sinks of every connection of recipient, ordered by
// connection id, or nil when it has none.
func (r *Registry) GetSinks(recipient string) []contract.NotificationSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	connections, ok := r.recipients[recipient]
	if !ok {
		return nil
	}
	sinks := make([]contract.NotificationSink, 0, len(connections))
	for _, connectionID := range slices.Sorted(maps.Keys(connections)) {
		sinks = append(sinks, r.subscriptions[connectionID].sink)
	}
	return sinks
}

// Subscribe binds connectionID to recipient. A connection already bound,
// to the same recipient or another one, is rebound with the new sink.
func (r *Registry) Subscribe(recipient string, connectionID string, sink contract.NotificationSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if previous, ok := r.subscriptions[connectionID]; ok {
		r.detach(previous.recipient, connectionID)
	}
	r.subscriptions[connectionID] = subscription{recipient: recipient, sink: sink}
	if _, ok := r.recipients[recipient]; !ok {
		r.recipients[recipient] = make(Set)
	}
	r.recipients[recipient][connectionID] = struct{}{}
}

// Unsubscribe drops connectionID. A connection bound to another recipient
// is left alone.
func (r *Registry) Unsubscribe(recipient string, connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.subscriptions[connectionID]
	if !ok || current.recipient != recipient {
		return
	}
	delete(r.subscriptions, connectionID)
	r.detach(recipient, connectionID)
}

func (r *Registry) detach(recipient, connectionID string) {
	connections := r.recipients[recipient]
	delete(connections, connectionID)
	if len(connections) == 0 {
		delete(r.recipients, recipient)
	}
}
