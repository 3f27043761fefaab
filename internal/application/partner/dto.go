package partner

import (
	"time"

	"github.com/pedidos/backend/internal/domain/partner"
)

// CreateCustomerRequest represents a request to register a customer
type CreateCustomerRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	WhatsApp  string `json:"whatsapp" binding:"required,min=10,max=20"`
}

// CustomerResponse represents customer data returned to the client
type CustomerResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	WhatsApp  string    `json:"whatsapp"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCustomerResponse converts a domain customer to its response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
		WhatsApp:  c.WhatsApp,
		CreatedAt: c.CreatedAt,
	}
}
