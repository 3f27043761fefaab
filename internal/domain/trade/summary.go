package trade

import "github.com/shopspring/decimal"

// ItemSummary aggregates a list of line items
type ItemSummary struct {
	Count          int
	TotalReference decimal.Decimal
	TotalFinal     decimal.Decimal
}

// Summarize counts items and sums both price columns. It is pure: the input
// is never modified and absent prices (zero values) contribute nothing.
func Summarize(items []OrderItem) ItemSummary {
	s := ItemSummary{
		Count:          len(items),
		TotalReference: decimal.Zero,
		TotalFinal:     decimal.Zero,
	}
	for _, item := range items {
		s.TotalReference = s.TotalReference.Add(item.ReferencePrice)
		s.TotalFinal = s.TotalFinal.Add(item.FinalPrice)
	}
	return s
}
