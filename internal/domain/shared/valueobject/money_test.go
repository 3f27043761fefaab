package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromInt(100), MXN)
		require.NoError(t, err)
		assert.Equal(t, MXN, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
	})

	t.Run("fails with empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "")
		require.Error(t, err)
	})
}

func TestMoney_Add(t *testing.T) {
	a := NewMoneyMXNFromFloat(100.50)
	b := NewMoneyMXNFromFloat(30.25)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "130.75", sum.StringFixed(2))

	t.Run("fails on currency mismatch", func(t *testing.T) {
		usd, _ := NewMoney(decimal.NewFromInt(1), USD)
		_, err := a.Add(usd)
		require.Error(t, err)
	})
}

func TestMoney_Subtract(t *testing.T) {
	owed := NewMoneyMXNFromFloat(150)
	paid := NewMoneyMXNFromFloat(30)

	rest, err := owed.Subtract(paid)
	require.NoError(t, err)
	assert.Equal(t, "120.00", rest.StringFixed(2))

	// remaining can go negative when paid exceeds owed
	over, err := paid.Subtract(owed)
	require.NoError(t, err)
	assert.True(t, over.IsNegative())
}

func TestMoney_ExactDecimalArithmetic(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, no float drift
	a, err := NewMoneyMXNFromString("0.1")
	require.NoError(t, err)
	b, err := NewMoneyMXNFromString("0.2")
	require.NoError(t, err)

	sum := a.MustAdd(b)
	expected, _ := NewMoneyMXNFromString("0.3")
	assert.True(t, sum.Equals(expected))
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, ZeroMXN().IsZero())
	assert.True(t, NewMoneyMXNFromFloat(1).IsPositive())
	assert.True(t, NewMoneyMXNFromFloat(-1).IsNegative())
	assert.True(t, NewMoneyMXNFromFloat(1).Negate().IsNegative())
}

func TestMoney_JSON(t *testing.T) {
	m := NewMoneyMXNFromFloat(99.99)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"99.99","currency":"MXN"}`, string(data))

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, m.Equals(back))

	t.Run("empty currency defaults to MXN", func(t *testing.T) {
		var v Money
		require.NoError(t, json.Unmarshal([]byte(`{"amount":"5"}`), &v))
		assert.Equal(t, MXN, v.Currency())
	})
}
