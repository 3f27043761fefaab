package partner

import "context"

// CustomerRepository is the persistence port for customers
// Implementations map to the `clientes` collection; the store assigns IDs and
// stamps fechaCreacion on create.
type CustomerRepository interface {
	// Create persists a new customer and returns the store-assigned ID
	Create(ctx context.Context, customer *Customer) (string, error)
	// FindByID returns shared.ErrNotFound if no such customer exists
	FindByID(ctx context.Context, id string) (*Customer, error)
	// FindAll returns every customer; the data set is assumed small
	FindAll(ctx context.Context) ([]Customer, error)
}
