package trade

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pedidos/backend/internal/domain/partner"
	"github.com/pedidos/backend/internal/domain/shared"
	"github.com/pedidos/backend/internal/domain/trade"
)

// OrderService handles order lifecycle operations
type OrderService struct {
	orderRepo    trade.OrderRepository
	customerRepo partner.CustomerRepository

	// folioIncludeDeleted keeps soft-deleted orders in the folio count so a
	// delete never causes a folio to be handed out twice
	folioIncludeDeleted bool
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository, customerRepo partner.CustomerRepository, folioIncludeDeleted bool) *OrderService {
	return &OrderService{
		orderRepo:           orderRepo,
		customerRepo:        customerRepo,
		folioIncludeDeleted: folioIncludeDeleted,
	}
}

// Create creates a new order with a sequenced folio
// When the folio count cannot be read the order still goes through under a
// timestamp-based fallback folio.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	items, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	var folio string
	if count, err := s.orderRepo.Count(ctx, s.folioIncludeDeleted); err != nil {
		folio = trade.FallbackFolio(time.Now())
	} else {
		folio = trade.FormatFolio(count)
	}

	order, err := trade.NewOrder(folio, items)
	if err != nil {
		return nil, err
	}
	order.CreatedAt = time.Now()

	id, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order; soft-deleted orders read as not found
func (s *OrderService) GetByID(ctx context.Context, id string) (*OrderResponse, error) {
	order, err := s.findLive(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves all live orders newest-first
func (s *OrderService) List(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx, false)
	if err != nil {
		return nil, err
	}
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses, nil
}

// ReplaceItems overwrites the full item list of an order
func (s *OrderService) ReplaceItems(ctx context.Context, orderID string, req ReplaceItemsRequest) (*OrderResponse, error) {
	order, err := s.findLive(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	if err := order.ReplaceItems(items); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// ToggleItem flips the completion state of one item
func (s *OrderService) ToggleItem(ctx context.Context, orderID string, index int) (*ToggleItemResponse, error) {
	order, err := s.findLive(ctx, orderID)
	if err != nil {
		return nil, err
	}

	completed, err := order.ToggleItemCompleted(index)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return &ToggleItemResponse{OrderID: order.ID, Index: index, Completed: completed}, nil
}

// SetItemNote annotates one item
func (s *OrderService) SetItemNote(ctx context.Context, orderID string, index int, req SetItemNoteRequest) (*OrderResponse, error) {
	order, err := s.findLive(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.SetItemNote(index, req.Note); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Delete soft-deletes an order; the folio stays occupied
func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	order, err := s.findLive(ctx, orderID)
	if err != nil {
		return err
	}
	if err := order.SoftDelete(); err != nil {
		return err
	}
	return s.orderRepo.Update(ctx, order)
}

// Picklist returns the order's items in warehouse walking order: aisles,
// then tables, then hanging racks, unlocated items last
func (s *OrderService) Picklist(ctx context.Context, orderID string) (*PicklistResponse, error) {
	order, err := s.findLive(ctx, orderID)
	if err != nil {
		return nil, err
	}

	sorted := trade.SortByLocation(order.Items)
	items := make([]OrderItemResponse, len(sorted))
	for i, li := range sorted {
		items[i] = ToOrderItemResponse(li.Index, li.Item)
	}
	return &PicklistResponse{OrderID: order.ID, Folio: order.Folio, Items: items}, nil
}

// CustomerView returns one customer's share of an order with a subtotal
func (s *OrderService) CustomerView(ctx context.Context, orderID, customerID string) (*CustomerOrderViewResponse, error) {
	order, err := s.findLive(ctx, orderID)
	if err != nil {
		return nil, err
	}

	located := order.ItemsForCustomer(customerID)
	items := make([]OrderItemResponse, len(located))
	subtotal := decimal.Zero
	for i, li := range located {
		items[i] = ToOrderItemResponse(li.Index, li.Item)
		subtotal = subtotal.Add(li.Item.FinalPrice)
	}

	return &CustomerOrderViewResponse{
		OrderID:    order.ID,
		Folio:      order.Folio,
		CustomerID: customerID,
		Items:      items,
		Subtotal:   subtotal,
	}, nil
}

func (s *OrderService) findLive(ctx context.Context, id string) (*trade.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Deleted {
		return nil, shared.ErrNotFound
	}
	return order, nil
}

// buildItems resolves each input row into a validated item, denormalizing the
// customer display name from the customer record
func (s *OrderService) buildItems(ctx context.Context, inputs []CreateOrderItemInput) ([]trade.OrderItem, error) {
	names := make(map[string]string, len(inputs))
	items := make([]trade.OrderItem, 0, len(inputs))

	for _, in := range inputs {
		name, ok := names[in.CustomerID]
		if !ok {
			customer, err := s.customerRepo.FindByID(ctx, in.CustomerID)
			if err != nil {
				return nil, err
			}
			name = customer.FullName()
			names[in.CustomerID] = name
		}

		item, err := trade.NewOrderItem(in.CustomerID, name, trade.Category(in.Category), in.SizeLabel, in.ReferencePrice, in.FinalPrice, in.Location)
		if err != nil {
			return nil, err
		}
		item.CatalogID = in.CatalogID
		item.Brand = in.Brand
		items = append(items, item)
	}
	return items, nil
}
