package partner

import (
	"strings"
	"time"

	"github.com/pedidos/backend/internal/domain/shared"
)

// Customer represents a retail customer (cliente)
// Customers are created once and never deleted; account movements live in
// the finance context keyed by the customer ID.
type Customer struct {
	ID        string // assigned by the document store
	FirstName string
	LastName  string
	WhatsApp  string // digits only, used for wa.me deep links
	CreatedAt time.Time
}

// NewCustomer creates a new customer pending persistence (ID is assigned on save)
func NewCustomer(firstName, lastName, whatsApp string) (*Customer, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	whatsApp = normalizePhone(whatsApp)

	if firstName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "First name cannot be empty")
	}
	if lastName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Last name cannot be empty")
	}
	if !validPhone(whatsApp) {
		return nil, shared.NewDomainError("INVALID_WHATSAPP", "WhatsApp number must be 10 to 15 digits")
	}

	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		WhatsApp:  whatsApp,
	}, nil
}

// FullName returns the display name used to denormalize customers into orders
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// normalizePhone strips spaces, dashes and a leading plus sign
func normalizePhone(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")
	replacer := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return replacer.Replace(s)
}

func validPhone(s string) bool {
	if len(s) < 10 || len(s) > 15 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
