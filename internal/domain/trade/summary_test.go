package trade

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Run("empty list yields zero summary", func(t *testing.T) {
		s := Summarize(nil)
		assert.Equal(t, 0, s.Count)
		assert.True(t, s.TotalReference.IsZero())
		assert.True(t, s.TotalFinal.IsZero())
	})

	t.Run("sums both price columns", func(t *testing.T) {
		items := []OrderItem{
			{ReferencePrice: decimal.NewFromFloat(40.50), FinalPrice: decimal.NewFromFloat(55.25)},
			{ReferencePrice: decimal.NewFromFloat(10.00), FinalPrice: decimal.NewFromFloat(20.75)},
		}
		s := Summarize(items)
		assert.Equal(t, 2, s.Count)
		assert.Equal(t, "50.50", s.TotalReference.StringFixed(2))
		assert.Equal(t, "76.00", s.TotalFinal.StringFixed(2))
	})

	t.Run("missing prices count as zero", func(t *testing.T) {
		items := []OrderItem{
			{FinalPrice: decimal.NewFromInt(30)},
			{},
		}
		s := Summarize(items)
		assert.Equal(t, 2, s.Count)
		assert.True(t, s.TotalReference.IsZero())
		assert.Equal(t, "30.00", s.TotalFinal.StringFixed(2))
	})

	t.Run("repeated calls leave the input untouched", func(t *testing.T) {
		items := []OrderItem{{FinalPrice: decimal.NewFromInt(10)}}
		first := Summarize(items)
		second := Summarize(items)
		assert.Equal(t, first, second)
		assert.Equal(t, "10", items[0].FinalPrice.String())
	})
}
