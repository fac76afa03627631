// Package session provides the identity source that every marketplace
// service receives in its constructor.
package session

import (
	"context"
	"sync"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
	"github.com/bhagyarekha373/Reuse-Hub/pkg/ctxutil"
)

// Source yields the identity of the caller, or nil when anonymous.
type Source interface {
	Identity(ctx context.Context) *domain.Identity
}

// Require returns the caller identity or domain.ErrUnauthenticated.
func Require(ctx context.Context, src Source) (*domain.Identity, error) {
	id := src.Identity(ctx)
	if id == nil {
		return nil, domain.ErrUnauthenticated
	}
	return id, nil
}

// RequestScoped reads the identity the auth middleware attached to the
// request context.
type RequestScoped struct{}

// Identity implements Source.
func (RequestScoped) Identity(ctx context.Context) *domain.Identity {
	c, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return nil
	}
	return &domain.Identity{ID: c.ID, Email: c.Email}
}

// Holder is a process-wide identity for single-user processes such as
// command line tools. It is updated by session events and fans them out to
// subscribers. Safe for concurrent use.
type Holder struct {
	mu      sync.RWMutex
	current *domain.Identity
	subs    map[int]chan domain.SessionEvent
	nextID  int
}

// NewHolder creates a Holder with an optional initial identity.
func NewHolder(initial *domain.Identity) *Holder {
	h := &Holder{subs: make(map[int]chan domain.SessionEvent)}
	if initial != nil {
		cp := *initial
		h.current = &cp
	}
	return h
}

// Identity implements Source. The context is ignored.
func (h *Holder) Identity(context.Context) *domain.Identity {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return nil
	}
	cp := *h.current
	return &cp
}

// Publish applies a session event and forwards it to subscribers.
// Subscribers whose buffer is full miss the event.
func (h *Holder) Publish(ev domain.SessionEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch ev.Type {
	case domain.SessionSignedIn:
		if ev.Identity != nil {
			cp := *ev.Identity
			h.current = &cp
		}
	case domain.SessionSignedOut:
		h.current = nil
	}

	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribe returns a stream of session events and a function that ends
// the subscription and closes the stream.
func (h *Holder) Subscribe(buffer int) (<-chan domain.SessionEvent, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan domain.SessionEvent, buffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}
