package trade

import "context"

// OrderRepository is the persistence port for orders
// Implementations map to the `pedidos` collection.
type OrderRepository interface {
	// Create persists a new order and returns the store-assigned ID;
	// the store stamps fechaCreacion
	Create(ctx context.Context, order *Order) (string, error)
	// FindByID returns shared.ErrNotFound if no such order exists
	FindByID(ctx context.Context, id string) (*Order, error)
	// FindAll returns orders newest-first; soft-deleted orders are included
	// only when includeDeleted is set
	FindAll(ctx context.Context, includeDeleted bool) ([]Order, error)
	// Count counts orders for folio sequencing
	Count(ctx context.Context, includeDeleted bool) (int, error)
	// Update rewrites the mutable top-level fields of an existing order:
	// the whole item list, both totals, the customer names and the deleted
	// flag (embedded list elements cannot be updated individually)
	Update(ctx context.Context, order *Order) error
}
