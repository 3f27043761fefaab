package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with valid inputs", func(t *testing.T) {
		c, err := NewCustomer("Maria", "Lopez", "5215512345678")
		require.NoError(t, err)
		assert.Equal(t, "Maria", c.FirstName)
		assert.Equal(t, "Lopez", c.LastName)
		assert.Equal(t, "5215512345678", c.WhatsApp)
		assert.Empty(t, c.ID)
	})

	t.Run("normalizes phone formatting", func(t *testing.T) {
		c, err := NewCustomer("Maria", "Lopez", "+52 1 55-1234-5678")
		require.NoError(t, err)
		assert.Equal(t, "5215512345678", c.WhatsApp)
	})

	t.Run("trims names", func(t *testing.T) {
		c, err := NewCustomer("  Maria ", " Lopez ", "5215512345678")
		require.NoError(t, err)
		assert.Equal(t, "Maria Lopez", c.FullName())
	})

	tests := []struct {
		name      string
		firstName string
		lastName  string
		whatsApp  string
	}{
		{"empty first name", "", "Lopez", "5215512345678"},
		{"empty last name", "Maria", "", "5215512345678"},
		{"phone too short", "Maria", "Lopez", "12345"},
		{"phone too long", "Maria", "Lopez", "1234567890123456"},
		{"phone with letters", "Maria", "Lopez", "52155abc45678"},
	}
	for _, tt := range tests {
		t.Run("fails with "+tt.name, func(t *testing.T) {
			_, err := NewCustomer(tt.firstName, tt.lastName, tt.whatsApp)
			require.Error(t, err)
		})
	}
}
