package trade

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pedidos/backend/internal/domain/trade"
)

// CreateOrderItemInput represents one line item in a create or edit request
// The customer display name is denormalized server-side from the customer record.
type CreateOrderItemInput struct {
	CustomerID     string          `json:"customer_id" binding:"required"`
	Category       string          `json:"category" binding:"required,oneof=Zapato Ropa"`
	CatalogID      string          `json:"catalog_id"`
	Brand          string          `json:"brand"`
	SizeLabel      string          `json:"size_label" binding:"required,min=1,max=20"`
	ReferencePrice decimal.Decimal `json:"reference_price" binding:"required"`
	FinalPrice     decimal.Decimal `json:"final_price" binding:"required"`
	Location       string          `json:"location" binding:"omitempty,ubicacion"`
}

// CreateOrderRequest represents a request to create an order
type CreateOrderRequest struct {
	Items []CreateOrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// ReplaceItemsRequest represents a request to overwrite an order's item list
type ReplaceItemsRequest struct {
	Items []CreateOrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// SetItemNoteRequest represents a request to annotate one item
type SetItemNoteRequest struct {
	Note string `json:"note" binding:"max=500"`
}

// OrderItemResponse represents a line item with its position in the order
type OrderItemResponse struct {
	Index          int             `json:"index"`
	CustomerID     string          `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	Category       string          `json:"category"`
	CatalogID      string          `json:"catalog_id,omitempty"`
	Brand          string          `json:"brand,omitempty"`
	SizeLabel      string          `json:"size_label"`
	ReferencePrice decimal.Decimal `json:"reference_price"`
	FinalPrice     decimal.Decimal `json:"final_price"`
	Location       string          `json:"location,omitempty"`
	Completed      bool            `json:"completed"`
	Note           string          `json:"note,omitempty"`
}

// OrderResponse represents a full order
type OrderResponse struct {
	ID             string              `json:"id"`
	Folio          string              `json:"folio"`
	CustomerNames  []string            `json:"customer_names"`
	Items          []OrderItemResponse `json:"items"`
	TotalReference decimal.Decimal     `json:"total_reference"`
	TotalFinal     decimal.Decimal     `json:"total_final"`
	CompletedCount int                 `json:"completed_count"`
	ItemCount      int                 `json:"item_count"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      *time.Time          `json:"updated_at,omitempty"`
	Deleted        bool                `json:"deleted"`
	Legacy         bool                `json:"legacy"`
	// Populated only for the legacy single-customer shape
	LegacyCustomerID   string `json:"legacy_customer_id,omitempty"`
	LegacyCustomerName string `json:"legacy_customer_name,omitempty"`
}

// ToggleItemResponse reports the new completion state of an item
type ToggleItemResponse struct {
	OrderID   string `json:"order_id"`
	Index     int    `json:"index"`
	Completed bool   `json:"completed"`
}

// PicklistResponse represents an order's items in warehouse walking order
type PicklistResponse struct {
	OrderID string              `json:"order_id"`
	Folio   string              `json:"folio"`
	Items   []OrderItemResponse `json:"items"`
}

// CustomerOrderViewResponse represents one customer's share of an order
type CustomerOrderViewResponse struct {
	OrderID    string              `json:"order_id"`
	Folio      string              `json:"folio"`
	CustomerID string              `json:"customer_id"`
	Items      []OrderItemResponse `json:"items"`
	Subtotal   decimal.Decimal     `json:"subtotal"`
}

// FeedResponse represents the operator's incremental order feed
type FeedResponse struct {
	Orders  []OrderResponse `json:"orders"`
	Visible int             `json:"visible"`
	Total   int             `json:"total"`
	HasMore bool            `json:"has_more"`
}

// ToOrderItemResponse converts one located item to its response DTO
func ToOrderItemResponse(index int, item trade.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		Index:          index,
		CustomerID:     item.CustomerID,
		CustomerName:   item.CustomerName,
		Category:       item.Category.String(),
		CatalogID:      item.CatalogID,
		Brand:          item.Brand,
		SizeLabel:      item.SizeLabel,
		ReferencePrice: item.ReferencePrice,
		FinalPrice:     item.FinalPrice,
		Location:       item.Location,
		Completed:      item.Completed,
		Note:           item.Note,
	}
}

// ToOrderResponse converts a domain order to its response DTO
func ToOrderResponse(o *trade.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = ToOrderItemResponse(i, item)
	}
	return OrderResponse{
		ID:                 o.ID,
		Folio:              o.Folio,
		CustomerNames:      o.CustomerNames,
		Items:              items,
		TotalReference:     o.TotalReference,
		TotalFinal:         o.TotalFinal,
		CompletedCount:     o.CompletedCount(),
		ItemCount:          len(o.Items),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		Deleted:            o.Deleted,
		Legacy:             o.IsLegacy(),
		LegacyCustomerID:   o.LegacyCustomerID,
		LegacyCustomerName: o.LegacyCustomerName,
	}
}
