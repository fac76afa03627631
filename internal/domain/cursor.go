package domain

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ItemCursor marks a position in the newest-first listing order
// (created_at DESC, id DESC).
type ItemCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// CursorAt returns the cursor pointing just past it.
func CursorAt(it Item) ItemCursor {
	return ItemCursor{CreatedAt: it.CreatedAt, ID: it.ID}
}

// Compare orders cursors newest first: negative when c sorts before o.
func (c ItemCursor) Compare(o ItemCursor) int {
	if n := o.CreatedAt.Compare(c.CreatedAt); n != 0 {
		return n
	}
	return bytes.Compare(o.ID[:], c.ID[:])
}

// Encode returns an opaque URL-safe token for c.
func (c ItemCursor) Encode() string {
	raw := strconv.FormatInt(c.CreatedAt.UnixMicro(), 10) + "." + c.ID.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// ParseItemCursor decodes a token produced by Encode. Malformed tokens are
// validation errors on the "cursor" field.
func ParseItemCursor(token string) (ItemCursor, error) {
	invalid := NewValidationError("cursor", "Invalid cursor")

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return ItemCursor{}, invalid
	}
	micros, id, ok := strings.Cut(string(raw), ".")
	if !ok {
		return ItemCursor{}, invalid
	}
	us, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return ItemCursor{}, invalid
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return ItemCursor{}, fmt.Errorf("cursor id: %w", invalid)
	}
	return ItemCursor{CreatedAt: time.UnixMicro(us).UTC(), ID: parsed}, nil
}

// ItemPage is one page of a listing. Next is nil on the last page.
type ItemPage struct {
	Items []Item
	Next  *ItemCursor
}
