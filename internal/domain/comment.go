package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is an append-only remark on an item.
type Comment struct {
	ID             uuid.UUID
	ItemID         uuid.UUID
	AuthorID       uuid.UUID
	AuthorUsername string
	Content        string
	CreatedAt      time.Time
}
