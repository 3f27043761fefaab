package finance

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pedidos/backend/internal/domain/shared"
)

// Debt represents a deuda: a manually recorded charge against a customer's
// account, living in the customer's deudas subcollection
type Debt struct {
	ID        string
	Label     string // free-text description ("2 pares tenis")
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewDebt creates a validated debt entry
func NewDebt(label string, amount decimal.Decimal) (*Debt, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError("INVALID_LABEL", "Debt description cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}
	return &Debt{Label: label, Amount: amount}, nil
}

// Revise overwrites the description and amount of an existing debt
func (d *Debt) Revise(label string, amount decimal.Decimal) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return shared.NewDomainError("INVALID_LABEL", "Debt description cannot be empty")
	}
	if !amount.IsPositive() {
		return shared.ErrInvalidAmount
	}
	d.Label = label
	d.Amount = amount
	now := time.Now()
	d.UpdatedAt = &now
	return nil
}
