package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pedidos/backend/internal/domain/finance"
	"github.com/pedidos/backend/internal/domain/shared/valueobject"
)

// CreateDebtRequest represents a request to record a charge on an account
type CreateDebtRequest struct {
	Label  string          `json:"label" binding:"required,min=1,max=200"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateDebtRequest represents a request to correct an existing charge
type UpdateDebtRequest struct {
	Label  string          `json:"label" binding:"required,min=1,max=200"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// DebtResponse represents a recorded charge
type DebtResponse struct {
	ID        string          `json:"id"`
	Label     string          `json:"label"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

// CreatePaymentRequest represents a request to record money received
type CreatePaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	EffectiveDate time.Time       `json:"effective_date" binding:"required"`
}

// UpdatePaymentRequest represents a request to correct an existing payment
type UpdatePaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	EffectiveDate time.Time       `json:"effective_date" binding:"required"`
}

// PaymentResponse represents a recorded payment
type PaymentResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	EffectiveDate time.Time       `json:"effective_date"`
	UpdatedAt     *time.Time      `json:"updated_at,omitempty"`
}

// BalanceResponse represents a customer's aggregated account position
type BalanceResponse struct {
	CustomerID string            `json:"customer_id"`
	Owed       valueobject.Money `json:"owed"`
	Paid       valueobject.Money `json:"paid"`
	Remaining  valueobject.Money `json:"remaining"`
}

// StatementResponse carries the rendered estado de cuenta
type StatementResponse struct {
	CustomerID  string `json:"customer_id"`
	Text        string `json:"text"`
	WhatsAppURL string `json:"whatsapp_url,omitempty"`
}

// ToDebtResponse converts a domain debt to its response DTO
func ToDebtResponse(d *finance.Debt) DebtResponse {
	return DebtResponse{
		ID:        d.ID,
		Label:     d.Label,
		Amount:    d.Amount,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToPaymentResponse converts a domain payment to its response DTO
func ToPaymentResponse(p *finance.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		Amount:        p.Amount,
		EffectiveDate: p.EffectiveDate,
		UpdatedAt:     p.UpdatedAt,
	}
}
