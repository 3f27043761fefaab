package trade

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pedidos/backend/internal/domain/partner"
	"github.com/pedidos/backend/internal/domain/shared"
	"github.com/pedidos/backend/internal/domain/trade"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *trade.Order) (string, error) {
	args := m.Called(ctx, order)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, includeDeleted bool) ([]trade.Order, error) {
	args := m.Called(ctx, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, includeDeleted bool) (int, error) {
	args := m.Called(ctx, includeDeleted)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
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

func itemInput(customerID string, finalPrice float64, location string) CreateOrderItemInput {
	return CreateOrderItemInput{
		CustomerID:     customerID,
		Category:       "Zapato",
		SizeLabel:      "25",
		ReferencePrice: decimal.NewFromFloat(finalPrice * 0.8),
		FinalPrice:     decimal.NewFromFloat(finalPrice),
		Location:       location,
	}
}

func storedOrder(t *testing.T, id string, items ...trade.OrderItem) *trade.Order {
	t.Helper()
	order, err := trade.NewOrder("PED-0001", items)
	require.NoError(t, err)
	order.ID = id
	return order
}

func storedItem(t *testing.T, customerID, location string, finalPrice float64) trade.OrderItem {
	t.Helper()
	item, err := trade.NewOrderItem(customerID, "Maria Lopez", trade.CategoryShoe, "25",
		decimal.NewFromFloat(finalPrice*0.8), decimal.NewFromFloat(finalPrice), location)
	require.NoError(t, err)
	return item
}

func TestOrderService_Create(t *testing.T) {
	customer := &partner.Customer{ID: "c1", FirstName: "Maria", LastName: "Lopez", WhatsApp: "5512345678"}

	t.Run("sequences the folio from the order count", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		customerRepo := new(MockCustomerRepository)
		customerRepo.On("FindByID", mock.Anything, "c1").Return(customer, nil)
		orderRepo.On("Count", mock.Anything, true).Return(3, nil)
		orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*trade.Order")).Return("ord-1", nil)

		service := NewOrderService(orderRepo, customerRepo, true)
		resp, err := service.Create(context.Background(), CreateOrderRequest{
			Items: []CreateOrderItemInput{itemInput("c1", 50, "Pasillo 1")},
		})

		require.NoError(t, err)
		assert.Equal(t, "ord-1", resp.ID)
		assert.Equal(t, "PED-0004", resp.Folio)
		assert.Equal(t, "Maria Lopez", resp.Items[0].CustomerName)
		assert.Equal(t, []string{"Maria Lopez"}, resp.CustomerNames)
		orderRepo.AssertExpectations(t)
	})

	t.Run("falls back to a timestamp folio when the count fails", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		customerRepo := new(MockCustomerRepository)
		customerRepo.On("FindByID", mock.Anything, "c1").Return(customer, nil)
		orderRepo.On("Count", mock.Anything, true).Return(0, errors.New("unavailable"))
		orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*trade.Order")).Return("ord-1", nil)

		service := NewOrderService(orderRepo, customerRepo, true)
		resp, err := service.Create(context.Background(), CreateOrderRequest{
			Items: []CreateOrderItemInput{itemInput("c1", 50, "")},
		})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(resp.Folio, "PED-"))
		assert.Greater(t, len(resp.Folio), len("PED-0004"))
	})

	t.Run("unknown item customer aborts the order", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		customerRepo := new(MockCustomerRepository)
		customerRepo.On("FindByID", mock.Anything, "ghost").Return(nil, shared.ErrNotFound)

		service := NewOrderService(orderRepo, customerRepo, true)
		_, err := service.Create(context.Background(), CreateOrderRequest{
			Items: []CreateOrderItemInput{itemInput("ghost", 50, "")},
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		orderRepo.AssertNotCalled(t, "Create")
	})
}

func TestOrderService_GetByID(t *testing.T) {
	t.Run("soft-deleted orders read as not found", func(t *testing.T) {
		order := storedOrder(t, "ord-1", storedItem(t, "c1", "", 50))
		require.NoError(t, order.SoftDelete())

		orderRepo := new(MockOrderRepository)
		orderRepo.On("FindByID", mock.Anything, "ord-1").Return(order, nil)

		service := NewOrderService(orderRepo, new(MockCustomerRepository), true)
		_, err := service.GetByID(context.Background(), "ord-1")

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestOrderService_ToggleItem(t *testing.T) {
	order := storedOrder(t, "ord-1", storedItem(t, "c1", "", 50))

	orderRepo := new(MockOrderRepository)
	orderRepo.On("FindByID", mock.Anything, "ord-1").Return(order, nil)
	orderRepo.On("Update", mock.Anything, order).Return(nil)

	service := NewOrderService(orderRepo, new(MockCustomerRepository), true)
	resp, err := service.ToggleItem(context.Background(), "ord-1", 0)

	require.NoError(t, err)
	assert.True(t, resp.Completed)
	assert.True(t, order.Items[0].Completed)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_ReplaceItems(t *testing.T) {
	t.Run("legacy orders cannot be edited", func(t *testing.T) {
		legacy := &trade.Order{ID: "ord-9", Folio: "PED-0002", LegacyCustomerID: "c1"}

		orderRepo := new(MockOrderRepository)
		orderRepo.On("FindByID", mock.Anything, "ord-9").Return(legacy, nil)
		customerRepo := new(MockCustomerRepository)
		customerRepo.On("FindByID", mock.Anything, "c1").Return(
			&partner.Customer{ID: "c1", FirstName: "Maria", LastName: "Lopez"}, nil)

		service := NewOrderService(orderRepo, customerRepo, true)
		_, err := service.ReplaceItems(context.Background(), "ord-9", ReplaceItemsRequest{
			Items: []CreateOrderItemInput{itemInput("c1", 50, "")},
		})

		assert.Error(t, err)
		orderRepo.AssertNotCalled(t, "Update")
	})
}

func TestOrderService_Delete(t *testing.T) {
	order := storedOrder(t, "ord-1", storedItem(t, "c1", "", 50))

	orderRepo := new(MockOrderRepository)
	orderRepo.On("FindByID", mock.Anything, "ord-1").Return(order, nil)
	orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *trade.Order) bool {
		return o.Deleted
	})).Return(nil)

	service := NewOrderService(orderRepo, new(MockCustomerRepository), true)
	err := service.Delete(context.Background(), "ord-1")

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_Picklist(t *testing.T) {
	order := storedOrder(t, "ord-1",
		storedItem(t, "c1", "Mesa 2", 50),
		storedItem(t, "c1", "Pasillo 1", 60),
		storedItem(t, "c1", "", 70),
	)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("FindByID", mock.Anything, "ord-1").Return(order, nil)

	service := NewOrderService(orderRepo, new(MockCustomerRepository), true)
	resp, err := service.Picklist(context.Background(), "ord-1")

	require.NoError(t, err)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "Pasillo 1", resp.Items[0].Location)
	assert.Equal(t, "Mesa 2", resp.Items[1].Location)
	assert.Empty(t, resp.Items[2].Location)
	// positions refer back into the stored item list
	assert.Equal(t, 1, resp.Items[0].Index)
	assert.Equal(t, 0, resp.Items[1].Index)
}

func TestOrderService_CustomerView(t *testing.T) {
	items := []trade.OrderItem{
		storedItem(t, "c1", "", 50),
		storedItem(t, "c2", "", 80),
		storedItem(t, "c1", "", 25),
	}
	order := storedOrder(t, "ord-1", items...)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("FindByID", mock.Anything, "ord-1").Return(order, nil)

	service := NewOrderService(orderRepo, new(MockCustomerRepository), true)
	resp, err := service.CustomerView(context.Background(), "ord-1", "c1")

	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "75", resp.Subtotal.String())
	assert.Equal(t, 0, resp.Items[0].Index)
	assert.Equal(t, 2, resp.Items[1].Index)
}
