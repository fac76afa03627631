package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public face of an identity. ID equals the identity ID.
type Profile struct {
	ID        uuid.UUID
	Username  string
	FullName  *string
	Phone     *string
	Location  *string
	Bio       *string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileChanges carries the owner-editable profile fields.
type ProfileChanges struct {
	Username  string
	FullName  *string
	Phone     *string
	Location  *string
	Bio       *string
	AvatarURL *string
}
