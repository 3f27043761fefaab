package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pedidos/backend/internal/domain/finance"
	"github.com/pedidos/backend/internal/domain/shared"
)

// debtDoc mirrors the wire shape of a clientes/{id}/deudas document.
// Amounts ride as plain numbers on the wire; decimals exist only in memory.
type debtDoc struct {
	Nombre             string     `firestore:"nombre"`
	Monto              float64    `firestore:"monto"`
	FechaCreacion      time.Time  `firestore:"fechaCreacion,serverTimestamp"`
	FechaActualizacion *time.Time `firestore:"fechaActualizacion"`
}

// paymentDoc mirrors the wire shape of a clientes/{id}/abonos document
type paymentDoc struct {
	Monto              float64    `firestore:"monto"`
	Fecha              time.Time  `firestore:"fecha"`
	FechaActualizacion *time.Time `firestore:"fechaActualizacion"`
}

// DebtRepository implements finance.DebtRepository on Firestore
type DebtRepository struct {
	client *firestore.Client
}

// NewDebtRepository creates a new DebtRepository
func NewDebtRepository(client *firestore.Client) *DebtRepository {
	return &DebtRepository{client: client}
}

func (r *DebtRepository) col(customerID string) *firestore.CollectionRef {
	return r.client.Collection(collectionCustomers).Doc(customerID).Collection(subcollectionDebts)
}

// Create persists a new debt under the given customer
func (r *DebtRepository) Create(ctx context.Context, customerID string, debt *finance.Debt) (string, error) {
	ref := r.col(customerID).NewDoc()
	_, err := ref.Set(ctx, debtDoc{
		Nombre: debt.Label,
		Monto:  debt.Amount.InexactFloat64(),
	})
	if err != nil {
		return "", fmt.Errorf("creating debt for customer %s: %w", customerID, err)
	}
	return ref.ID, nil
}

// FindByID retrieves one debt
func (r *DebtRepository) FindByID(ctx context.Context, customerID, debtID string) (*finance.Debt, error) {
	snap, err := r.col(customerID).Doc(debtID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("fetching debt %s: %w", debtID, err)
	}
	return debtToDomain(snap)
}

// FindAll retrieves the customer's debts newest-first
func (r *DebtRepository) FindAll(ctx context.Context, customerID string) ([]finance.Debt, error) {
	iter := r.col(customerID).OrderBy("fechaCreacion", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var debts []finance.Debt
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing debts for customer %s: %w", customerID, err)
		}
		debt, err := debtToDomain(snap)
		if err != nil {
			return nil, err
		}
		debts = append(debts, *debt)
	}
	return debts, nil
}

// Update rewrites the description and amount of an existing debt
func (r *DebtRepository) Update(ctx context.Context, customerID string, debt *finance.Debt) error {
	_, err := r.col(customerID).Doc(debt.ID).Update(ctx, []firestore.Update{
		{Path: "nombre", Value: debt.Label},
		{Path: "monto", Value: debt.Amount.InexactFloat64()},
		{Path: "fechaActualizacion", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return shared.ErrNotFound
		}
		return fmt.Errorf("updating debt %s: %w", debt.ID, err)
	}
	return nil
}

// Delete removes the debt permanently
func (r *DebtRepository) Delete(ctx context.Context, customerID, debtID string) error {
	if _, err := r.col(customerID).Doc(debtID).Delete(ctx); err != nil {
		return fmt.Errorf("deleting debt %s: %w", debtID, err)
	}
	return nil
}

func debtToDomain(snap *firestore.DocumentSnapshot) (*finance.Debt, error) {
	var doc debtDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decoding debt %s: %w", snap.Ref.ID, err)
	}
	return &finance.Debt{
		ID:        snap.Ref.ID,
		Label:     doc.Nombre,
		Amount:    decimal.NewFromFloat(doc.Monto),
		CreatedAt: doc.FechaCreacion,
		UpdatedAt: doc.FechaActualizacion,
	}, nil
}

// PaymentRepository implements finance.PaymentRepository on Firestore
type PaymentRepository struct {
	client *firestore.Client
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(client *firestore.Client) *PaymentRepository {
	return &PaymentRepository{client: client}
}

func (r *PaymentRepository) col(customerID string) *firestore.CollectionRef {
	return r.client.Collection(collectionCustomers).Doc(customerID).Collection(subcollectionPayments)
}

// Create persists a new payment under the given customer
func (r *PaymentRepository) Create(ctx context.Context, customerID string, payment *finance.Payment) (string, error) {
	ref := r.col(customerID).NewDoc()
	_, err := ref.Set(ctx, paymentDoc{
		Monto: payment.Amount.InexactFloat64(),
		Fecha: payment.EffectiveDate,
	})
	if err != nil {
		return "", fmt.Errorf("creating payment for customer %s: %w", customerID, err)
	}
	return ref.ID, nil
}

// FindByID retrieves one payment
func (r *PaymentRepository) FindByID(ctx context.Context, customerID, paymentID string) (*finance.Payment, error) {
	snap, err := r.col(customerID).Doc(paymentID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("fetching payment %s: %w", paymentID, err)
	}
	return paymentToDomain(snap)
}

// FindAll retrieves the customer's payments newest-first by effective date
func (r *PaymentRepository) FindAll(ctx context.Context, customerID string) ([]finance.Payment, error) {
	iter := r.col(customerID).OrderBy("fecha", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var payments []finance.Payment
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing payments for customer %s: %w", customerID, err)
		}
		payment, err := paymentToDomain(snap)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *payment)
	}
	return payments, nil
}

// Update rewrites the amount and effective date of an existing payment
func (r *PaymentRepository) Update(ctx context.Context, customerID string, payment *finance.Payment) error {
	_, err := r.col(customerID).Doc(payment.ID).Update(ctx, []firestore.Update{
		{Path: "monto", Value: payment.Amount.InexactFloat64()},
		{Path: "fecha", Value: payment.EffectiveDate},
		{Path: "fechaActualizacion", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return shared.ErrNotFound
		}
		return fmt.Errorf("updating payment %s: %w", payment.ID, err)
	}
	return nil
}

// Delete removes the payment permanently
func (r *PaymentRepository) Delete(ctx context.Context, customerID, paymentID string) error {
	if _, err := r.col(customerID).Doc(paymentID).Delete(ctx); err != nil {
		return fmt.Errorf("deleting payment %s: %w", paymentID, err)
	}
	return nil
}

func paymentToDomain(snap *firestore.DocumentSnapshot) (*finance.Payment, error) {
	var doc paymentDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decoding payment %s: %w", snap.Ref.ID, err)
	}
	return &finance.Payment{
		ID:            snap.Ref.ID,
		Amount:        decimal.NewFromFloat(doc.Monto),
		EffectiveDate: doc.Fecha,
		UpdatedAt:     doc.FechaActualizacion,
	}, nil
}
