package ordering

import (
	"strings"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

// Validation messages shown to users.
const (
	MsgNameTooShort    = "Name must be at least 2 characters"
	MsgNameTooLong     = "Name must be less than 100 characters"
	MsgAddressTooShort = "Address must be at least 10 characters"
	MsgAddressTooLong  = "Address must be less than 500 characters"
	MsgContactTooShort = "Contact must be at least 10 characters"
	MsgContactTooLong  = "Contact must be less than 100 characters"
	MsgMessageTooLong  = "Message must be less than 500 characters"
)

// ValidateBuyer checks the buyer form and returns the first violation.
func ValidateBuyer(b domain.BuyerFields) error {
	name := domain.Len(strings.TrimSpace(b.Name))
	address := domain.Len(strings.TrimSpace(b.Address))
	contact := domain.Len(strings.TrimSpace(b.Contact))
	message := 0
	if b.Message != nil {
		message = domain.Len(strings.TrimSpace(*b.Message))
	}

	c := &domain.Check{}
	c.Rule(name >= 2, "name", MsgNameTooShort).
		Rule(name <= 100, "name", MsgNameTooLong).
		Rule(address >= 10, "address", MsgAddressTooShort).
		Rule(address <= 500, "address", MsgAddressTooLong).
		Rule(contact >= 10, "contact", MsgContactTooShort).
		Rule(contact <= 100, "contact", MsgContactTooLong).
		Rule(message <= 500, "message", MsgMessageTooLong)
	return c.Err()
}

func normalizeBuyer(b domain.BuyerFields) domain.BuyerFields {
	return domain.BuyerFields{
		Name:    strings.TrimSpace(b.Name),
		Address: strings.TrimSpace(b.Address),
		Contact: strings.TrimSpace(b.Contact),
		Message: domain.TrimPtr(b.Message),
	}
}
