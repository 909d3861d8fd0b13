package sink

import (
	"breakout-lab/domain"
	"context"
	"sync"
)

// Inbox holds the digests delivered to one connected recipient
type Inbox struct {
	mu      sync.Mutex
	Owner   string
	digests []domain.Digest
}

func NewInbox(owner string) *Inbox {
	return &Inbox{Owner: owner}
}

func (i *Inbox) Consume(_ context.Context, digest domain.Digest) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.digests = append(i.digests, digest)
	return nil
}

// Digests returns a copy of everything received so far, oldest first.
func (i *Inbox) Digests() []domain.Digest {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]domain.Digest(nil), i.digests...)
}

// Notifications flattens every received digest.
func (i *Inbox) Notifications() []domain.Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	var all []domain.Notification
	for _, digest := range i.digests {
		all = append(all, digest.Notifications...)
	}
	return all
}
