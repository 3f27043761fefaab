package finance

import "context"

// DebtRepository is the persistence port for a customer's deudas subcollection
type DebtRepository interface {
	// Create persists a new debt under the given customer and returns the
	// store-assigned ID; the store stamps fechaCreacion
	Create(ctx context.Context, customerID string, debt *Debt) (string, error)
	// FindByID returns shared.ErrNotFound if no such debt exists
	FindByID(ctx context.Context, customerID, debtID string) (*Debt, error)
	// FindAll returns the customer's debts newest-first
	FindAll(ctx context.Context, customerID string) ([]Debt, error)
	// Update rewrites the description and amount of an existing debt
	Update(ctx context.Context, customerID string, debt *Debt) error
	// Delete removes the debt permanently
	Delete(ctx context.Context, customerID, debtID string) error
}

// PaymentRepository is the persistence port for a customer's abonos subcollection
type PaymentRepository interface {
	Create(ctx context.Context, customerID string, payment *Payment) (string, error)
	FindByID(ctx context.Context, customerID, paymentID string) (*Payment, error)
	// FindAll returns the customer's payments newest-first by effective date
	FindAll(ctx context.Context, customerID string) ([]Payment, error)
	Update(ctx context.Context, customerID string, payment *Payment) error
	Delete(ctx context.Context, customerID, paymentID string) error
}
