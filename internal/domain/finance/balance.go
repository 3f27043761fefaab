package finance

import (
	"github.com/shopspring/decimal"

	"github.com/pedidos/backend/internal/domain/shared/valueobject"
	"github.com/pedidos/backend/internal/domain/trade"
)

// Balance is the aggregated account position of a single customer
type Balance struct {
	Owed      valueobject.Money // debts plus attributable order charges
	Paid      valueobject.Money // sum of payments
	Remaining valueobject.Money // Owed minus Paid; negative means credit
}

// BalanceCalculator derives a customer's balance from the full set of source
// records. It holds no state and never talks to the store: callers fetch
// everything first so that a partial read can never produce a silently
// understated balance.
type BalanceCalculator struct{}

// NewBalanceCalculator creates a balance calculator
func NewBalanceCalculator() *BalanceCalculator {
	return &BalanceCalculator{}
}

// Compute aggregates debts, payments and order charges for one customer.
//
// Order charges follow the document shape: for item orders only the
// customer's completed items count, for legacy single-customer orders the
// stored total counts as-is (legacy items have no completion state).
// Soft-deleted orders contribute nothing.
func (c *BalanceCalculator) Compute(customerID string, debts []Debt, payments []Payment, orders []trade.Order) Balance {
	owed := decimal.Zero
	for _, d := range debts {
		owed = owed.Add(d.Amount)
	}

	for _, o := range orders {
		if o.Deleted {
			continue
		}
		if o.IsLegacy() {
			if o.LegacyCustomerID == customerID {
				owed = owed.Add(o.TotalFinal)
			}
			continue
		}
		for _, item := range o.Items {
			if item.CustomerID == customerID && item.Completed {
				owed = owed.Add(item.FinalPrice)
			}
		}
	}

	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}

	return Balance{
		Owed:      valueobject.NewMoneyMXN(owed),
		Paid:      valueobject.NewMoneyMXN(paid),
		Remaining: valueobject.NewMoneyMXN(owed.Sub(paid)),
	}
}
