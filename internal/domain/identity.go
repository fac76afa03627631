package domain

import "github.com/google/uuid"

// Identity is the authenticated principal. Only ID and Email are meaningful
// to the marketplace.
type Identity struct {
	ID    uuid.UUID
	Email string
}

// Is reports whether the identity is present and refers to id.
func (i *Identity) Is(id uuid.UUID) bool {
	return i != nil && i.ID != uuid.Nil && i.ID == id
}

// SessionEventType distinguishes sign-in from sign-out.
type SessionEventType string

const (
	SessionSignedIn  SessionEventType = "SIGNED_IN"
	SessionSignedOut SessionEventType = "SIGNED_OUT"
)

func (t SessionEventType) String() string { return string(t) }

// SessionEvent is published by the identity boundary whenever the
// authenticated identity changes. Identity is nil on sign-out.
type SessionEvent struct {
	Type     SessionEventType
	Identity *Identity
}
