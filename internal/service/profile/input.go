package profile

import (
	"strings"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

// Validation messages shown to users.
const (
	MsgUsernameRequired = "Username is required"
	MsgUsernameTooLong  = "Username must be less than 50 characters"
	MsgFullNameTooLong  = "Full name must be less than 100 characters"
	MsgInvalidPhone     = "Invalid phone number format (e.g., +919876543210)"
	MsgLocationTooLong  = "Location must be less than 200 characters"
	MsgBioTooLong       = "Bio must be less than 500 characters"
)

// UpdateInput replaces every editable profile field. Nil clears a field.
type UpdateInput struct {
	Username  string
	FullName  *string
	Phone     *string
	Location  *string
	Bio       *string
	AvatarURL *string
}

// Validate reports the first violated rule.
func (i UpdateInput) Validate() error {
	username := strings.TrimSpace(i.Username)
	phone := domain.TrimPtr(i.Phone)

	c := &domain.Check{}
	c.Rule(username != "", "username", MsgUsernameRequired).
		Rule(domain.Len(username) <= 50, "username", MsgUsernameTooLong).
		Rule(optLen(i.FullName) <= 100, "full_name", MsgFullNameTooLong).
		Rule(phone == nil || domain.ValidPhone(*phone), "phone", MsgInvalidPhone).
		Rule(optLen(i.Location) <= 200, "location", MsgLocationTooLong).
		Rule(optLen(i.Bio) <= 500, "bio", MsgBioTooLong)
	return c.Err()
}

func optLen(s *string) int {
	if s == nil {
		return 0
	}
	return domain.Len(strings.TrimSpace(*s))
}
