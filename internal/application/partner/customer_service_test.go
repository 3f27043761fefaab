package partner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pedidos/backend/internal/domain/partner"
	"github.com/pedidos/backend/internal/domain/shared"
)

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *partner.Customer) (string, error) {
	args := m.Called(ctx, customer)
	return args.String(0), args.Error(1)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id string) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]partner.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func TestCustomerService_Create(t *testing.T) {
	t.Run("registers customer and returns assigned ID", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*partner.Customer")).Return("cust-1", nil)

		service := NewCustomerService(repo)
		resp, err := service.Create(context.Background(), CreateCustomerRequest{
			FirstName: "Maria",
			LastName:  "Lopez",
			WhatsApp:  "+52 55 1234-5678",
		})

		assert.NoError(t, err)
		assert.Equal(t, "cust-1", resp.ID)
		assert.Equal(t, "Maria Lopez", resp.FullName)
		assert.Equal(t, "525512345678", resp.WhatsApp)
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid phone without touching the store", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		_, err := service.Create(context.Background(), CreateCustomerRequest{
			FirstName: "Maria",
			LastName:  "Lopez",
			WhatsApp:  "123",
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestCustomerService_GetByID(t *testing.T) {
	t.Run("returns the customer", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("FindByID", mock.Anything, "cust-1").Return(&partner.Customer{
			ID: "cust-1", FirstName: "Maria", LastName: "Lopez", WhatsApp: "5512345678",
		}, nil)

		service := NewCustomerService(repo)
		resp, err := service.GetByID(context.Background(), "cust-1")

		assert.NoError(t, err)
		assert.Equal(t, "Maria Lopez", resp.FullName)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("FindByID", mock.Anything, "ghost").Return(nil, shared.ErrNotFound)

		service := NewCustomerService(repo)
		_, err := service.GetByID(context.Background(), "ghost")

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCustomerService_List(t *testing.T) {
	repo := new(MockCustomerRepository)
	repo.On("FindAll", mock.Anything).Return([]partner.Customer{
		{ID: "c1", FirstName: "Ana", LastName: "Ruiz"},
		{ID: "c2", FirstName: "Maria", LastName: "Lopez"},
	}, nil)

	service := NewCustomerService(repo)
	resp, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Ana Ruiz", resp[0].FullName)
}
