package trade

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pedidos/backend/internal/domain/shared"
)

// Category classifies an order line item
type Category string

const (
	CategoryShoe     Category = "Zapato"
	CategoryClothing Category = "Ropa"
)

// IsValid checks if the category is one of the known values
func (c Category) IsValid() bool {
	return c == CategoryShoe || c == CategoryClothing
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// OrderItem represents a line item embedded in an order (no identity of its
// own; items are addressed by their position in the order's item list)
type OrderItem struct {
	CustomerID     string
	CustomerName   string // denormalized display name
	Category       Category
	CatalogID      string // external catalog reference, optional
	Brand          string // optional
	SizeLabel      string // free text ("25", "M", "28.5")
	ReferencePrice decimal.Decimal
	FinalPrice     decimal.Decimal
	Location       string // "" means unassigned, otherwise "<Kind> <n>"
	Completed      bool
	Note           string
}

// NewOrderItem creates a validated line item
func NewOrderItem(customerID, customerName string, category Category, sizeLabel string, referencePrice, finalPrice decimal.Decimal, location string) (OrderItem, error) {
	customerID = strings.TrimSpace(customerID)
	sizeLabel = strings.TrimSpace(sizeLabel)
	location = strings.TrimSpace(location)

	if customerID == "" {
		return OrderItem{}, shared.NewDomainError("INVALID_CUSTOMER", "Item customer cannot be empty")
	}
	if !category.IsValid() {
		return OrderItem{}, shared.NewDomainError("INVALID_CATEGORY", "Category must be Zapato or Ropa")
	}
	if sizeLabel == "" {
		return OrderItem{}, shared.NewDomainError("INVALID_SIZE", "Size label cannot be empty")
	}
	if !referencePrice.IsPositive() {
		return OrderItem{}, shared.NewDomainError("INVALID_PRICE", "Reference price must be positive")
	}
	if !finalPrice.IsPositive() {
		return OrderItem{}, shared.NewDomainError("INVALID_PRICE", "Final price must be positive")
	}
	if location != "" {
		if _, ok := ParseLocation(location); !ok {
			return OrderItem{}, shared.NewDomainError("INVALID_LOCATION", "Location must be '<Pasillo|Mesa|R colgada> <number>'")
		}
	}

	return OrderItem{
		CustomerID:     customerID,
		CustomerName:   strings.TrimSpace(customerName),
		Category:       category,
		SizeLabel:      sizeLabel,
		ReferencePrice: referencePrice,
		FinalPrice:     finalPrice,
		Location:       location,
	}, nil
}

// Order represents a pedido aggregate root
//
// Two document shapes exist in the store: the current shape embeds a list of
// items for any number of customers; the legacy shape has no item list and a
// single direct customer reference. Legacy orders are read-only.
type Order struct {
	ID             string // assigned by the document store
	Folio          string
	CustomerNames  []string // distinct item customer names, order of first appearance
	Items          []OrderItem
	TotalReference decimal.Decimal
	TotalFinal     decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	Deleted        bool

	// Legacy single-customer shape
	LegacyCustomerID   string
	LegacyCustomerName string
}

// NewOrder creates a new order with the given folio and items
// Totals and the denormalized customer list are derived from the items.
func NewOrder(folio string, items []OrderItem) (*Order, error) {
	folio = strings.TrimSpace(folio)
	if folio == "" {
		return nil, shared.NewDomainError("INVALID_FOLIO", "Folio cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.ErrEmptyOrder
	}

	o := &Order{
		Folio: folio,
		Items: append([]OrderItem(nil), items...),
	}
	o.recalculate()
	return o, nil
}

// IsLegacy reports whether the order uses the pre-item single-customer shape
func (o *Order) IsLegacy() bool {
	return len(o.Items) == 0 && o.LegacyCustomerID != ""
}

// ReplaceItems swaps the entire item list and recomputes the derived fields
// The store has no element-level update for embedded lists, so every item
// mutation flows through here.
func (o *Order) ReplaceItems(items []OrderItem) error {
	if o.Deleted {
		return shared.ErrOrderDeleted
	}
	if o.IsLegacy() {
		return shared.NewDomainError("INVALID_STATE", "Legacy orders cannot be modified")
	}
	if len(items) == 0 {
		return shared.ErrEmptyOrder
	}

	o.Items = append([]OrderItem(nil), items...)
	o.recalculate()
	o.touch()
	return nil
}

// ToggleItemCompleted flips the completion flag of the item at the given
// position in the item list and returns the new state
func (o *Order) ToggleItemCompleted(index int) (bool, error) {
	if o.Deleted {
		return false, shared.ErrOrderDeleted
	}
	if index < 0 || index >= len(o.Items) {
		return false, shared.ErrItemNotFound
	}

	o.Items[index].Completed = !o.Items[index].Completed
	o.touch()
	return o.Items[index].Completed, nil
}

// SetItemNote sets the free-text note of the item at the given position
func (o *Order) SetItemNote(index int, note string) error {
	if o.Deleted {
		return shared.ErrOrderDeleted
	}
	if index < 0 || index >= len(o.Items) {
		return shared.ErrItemNotFound
	}

	o.Items[index].Note = strings.TrimSpace(note)
	o.touch()
	return nil
}

// SoftDelete flags the order as deleted; deleted orders drop out of every
// listing and every balance aggregate but keep occupying their folio
func (o *Order) SoftDelete() error {
	if o.Deleted {
		return shared.ErrOrderDeleted
	}
	o.Deleted = true
	o.touch()
	return nil
}

// ItemsForCustomer returns the items attributed to the given customer,
// each carrying its original position in the item list
func (o *Order) ItemsForCustomer(customerID string) []LocatedItem {
	var out []LocatedItem
	for i, item := range o.Items {
		if item.CustomerID == customerID {
			out = append(out, LocatedItem{Index: i, Item: item})
		}
	}
	return out
}

// CompletedCount returns the number of completed items
func (o *Order) CompletedCount() int {
	n := 0
	for _, item := range o.Items {
		if item.Completed {
			n++
		}
	}
	return n
}

// recalculate rebuilds totals and the denormalized customer name list
func (o *Order) recalculate() {
	summary := Summarize(o.Items)
	o.TotalReference = summary.TotalReference
	o.TotalFinal = summary.TotalFinal

	seen := make(map[string]struct{}, len(o.Items))
	names := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		if item.CustomerName == "" {
			continue
		}
		if _, ok := seen[item.CustomerName]; ok {
			continue
		}
		seen[item.CustomerName] = struct{}{}
		names = append(names, item.CustomerName)
	}
	o.CustomerNames = names
}

func (o *Order) touch() {
	now := time.Now()
	o.UpdatedAt = &now
}
