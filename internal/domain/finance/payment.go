package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pedidos/backend/internal/domain/shared"
)

// Payment represents an abono: money received from a customer, living in the
// customer's abonos subcollection. EffectiveDate is operator-entered and may
// differ from the moment of capture.
type Payment struct {
	ID            string
	Amount        decimal.Decimal
	EffectiveDate time.Time
	UpdatedAt     *time.Time
}

// NewPayment creates a validated payment entry
func NewPayment(amount decimal.Decimal, effectiveDate time.Time) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}
	if effectiveDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Payment date cannot be empty")
	}
	return &Payment{Amount: amount, EffectiveDate: effectiveDate}, nil
}

// Revise overwrites the amount and effective date of an existing payment
func (p *Payment) Revise(amount decimal.Decimal, effectiveDate time.Time) error {
	if !amount.IsPositive() {
		return shared.ErrInvalidAmount
	}
	if effectiveDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Payment date cannot be empty")
	}
	p.Amount = amount
	p.EffectiveDate = effectiveDate
	now := time.Now()
	p.UpdatedAt = &now
	return nil
}
