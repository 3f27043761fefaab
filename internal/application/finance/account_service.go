package finance

import (
	"context"

	"github.com/pedidos/backend/internal/domain/finance"
	"github.com/pedidos/backend/internal/domain/partner"
	"github.com/pedidos/backend/internal/domain/trade"
)

// AccountService handles the movements of a customer account: charges
// (deudas), payments (abonos) and the derived balance and statement
type AccountService struct {
	customerRepo partner.CustomerRepository
	debtRepo     finance.DebtRepository
	paymentRepo  finance.PaymentRepository
	orderRepo    trade.OrderRepository
	calculator   *finance.BalanceCalculator
}

// NewAccountService creates a new AccountService
func NewAccountService(
	customerRepo partner.CustomerRepository,
	debtRepo finance.DebtRepository,
	paymentRepo finance.PaymentRepository,
	orderRepo trade.OrderRepository,
) *AccountService {
	return &AccountService{
		customerRepo: customerRepo,
		debtRepo:     debtRepo,
		paymentRepo:  paymentRepo,
		orderRepo:    orderRepo,
		calculator:   finance.NewBalanceCalculator(),
	}
}

// CreateDebt records a new charge on the customer's account
func (s *AccountService) CreateDebt(ctx context.Context, customerID string, req CreateDebtRequest) (*DebtResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	debt, err := finance.NewDebt(req.Label, req.Amount)
	if err != nil {
		return nil, err
	}

	id, err := s.debtRepo.Create(ctx, customerID, debt)
	if err != nil {
		return nil, err
	}
	debt.ID = id

	response := ToDebtResponse(debt)
	return &response, nil
}

// UpdateDebt corrects the description and amount of an existing charge
func (s *AccountService) UpdateDebt(ctx context.Context, customerID, debtID string, req UpdateDebtRequest) (*DebtResponse, error) {
	debt, err := s.debtRepo.FindByID(ctx, customerID, debtID)
	if err != nil {
		return nil, err
	}
	if err := debt.Revise(req.Label, req.Amount); err != nil {
		return nil, err
	}
	if err := s.debtRepo.Update(ctx, customerID, debt); err != nil {
		return nil, err
	}

	response := ToDebtResponse(debt)
	return &response, nil
}

// DeleteDebt removes a charge permanently
func (s *AccountService) DeleteDebt(ctx context.Context, customerID, debtID string) error {
	if _, err := s.debtRepo.FindByID(ctx, customerID, debtID); err != nil {
		return err
	}
	return s.debtRepo.Delete(ctx, customerID, debtID)
}

// ListDebts returns the customer's charges newest-first
func (s *AccountService) ListDebts(ctx context.Context, customerID string) ([]DebtResponse, error) {
	debts, err := s.debtRepo.FindAll(ctx, customerID)
	if err != nil {
		return nil, err
	}
	responses := make([]DebtResponse, len(debts))
	for i := range debts {
		responses[i] = ToDebtResponse(&debts[i])
	}
	return responses, nil
}

// CreatePayment records money received from the customer
func (s *AccountService) CreatePayment(ctx context.Context, customerID string, req CreatePaymentRequest) (*PaymentResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	payment, err := finance.NewPayment(req.Amount, req.EffectiveDate)
	if err != nil {
		return nil, err
	}

	id, err := s.paymentRepo.Create(ctx, customerID, payment)
	if err != nil {
		return nil, err
	}
	payment.ID = id

	response := ToPaymentResponse(payment)
	return &response, nil
}

// UpdatePayment corrects the amount and date of an existing payment
func (s *AccountService) UpdatePayment(ctx context.Context, customerID, paymentID string, req UpdatePaymentRequest) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, customerID, paymentID)
	if err != nil {
		return nil, err
	}
	if err := payment.Revise(req.Amount, req.EffectiveDate); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Update(ctx, customerID, payment); err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// DeletePayment removes a payment permanently
func (s *AccountService) DeletePayment(ctx context.Context, customerID, paymentID string) error {
	if _, err := s.paymentRepo.FindByID(ctx, customerID, paymentID); err != nil {
		return err
	}
	return s.paymentRepo.Delete(ctx, customerID, paymentID)
}

// ListPayments returns the customer's payments newest-first
func (s *AccountService) ListPayments(ctx context.Context, customerID string) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindAll(ctx, customerID)
	if err != nil {
		return nil, err
	}
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses, nil
}

// Balance computes the customer's current account position. Every source is
// fetched fresh; if any fetch fails the whole computation fails rather than
// returning a partial sum. The customer record itself is not consulted: an
// unknown identifier simply has no movements and yields zero balances.
func (s *AccountService) Balance(ctx context.Context, customerID string) (*BalanceResponse, error) {
	debts, payments, orders, err := s.fetchMovements(ctx, customerID)
	if err != nil {
		return nil, err
	}

	balance := s.calculator.Compute(customerID, debts, payments, orders)
	return &BalanceResponse{
		CustomerID: customerID,
		Owed:       balance.Owed,
		Paid:       balance.Paid,
		Remaining:  balance.Remaining,
	}, nil
}

// Statement renders the customer's estado de cuenta with a wa.me deep link.
// Unlike Balance this needs the customer record (name and WhatsApp number),
// so an unknown customer is an error here.
func (s *AccountService) Statement(ctx context.Context, customerID string) (*StatementResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	debts, payments, orders, err := s.fetchMovements(ctx, customerID)
	if err != nil {
		return nil, err
	}

	balance := s.calculator.Compute(customerID, debts, payments, orders)
	statement := finance.BuildStatement(customer.FullName(), customer.WhatsApp, customerID, debts, payments, orders, balance)
	return &StatementResponse{
		CustomerID:  customerID,
		Text:        statement.Text,
		WhatsAppURL: statement.WhatsAppURL,
	}, nil
}

func (s *AccountService) fetchMovements(ctx context.Context, customerID string) ([]finance.Debt, []finance.Payment, []trade.Order, error) {
	debts, err := s.debtRepo.FindAll(ctx, customerID)
	if err != nil {
		return nil, nil, nil, err
	}
	payments, err := s.paymentRepo.FindAll(ctx, customerID)
	if err != nil {
		return nil, nil, nil, err
	}
	orders, err := s.orderRepo.FindAll(ctx, false)
	if err != nil {
		return nil, nil, nil, err
	}
	return debts, payments, orders, nil
}
