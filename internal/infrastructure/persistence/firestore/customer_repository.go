package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pedidos/backend/internal/domain/partner"
	"github.com/pedidos/backend/internal/domain/shared"
)

// customerDoc mirrors the wire shape of a clientes document
type customerDoc struct {
	Nombre        string    `firestore:"nombre"`
	Apellido      string    `firestore:"apellido"`
	WhatsApp      string    `firestore:"whatsapp"`
	FechaCreacion time.Time `firestore:"fechaCreacion,serverTimestamp"`
}

// CustomerRepository implements partner.CustomerRepository on Firestore
type CustomerRepository struct {
	client *firestore.Client
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(client *firestore.Client) *CustomerRepository {
	return &CustomerRepository{client: client}
}

func (r *CustomerRepository) col() *firestore.CollectionRef {
	return r.client.Collection(collectionCustomers)
}

// Create persists a new customer and returns the store-assigned ID
func (r *CustomerRepository) Create(ctx context.Context, customer *partner.Customer) (string, error) {
	ref := r.col().NewDoc()
	_, err := ref.Set(ctx, customerDoc{
		Nombre:   customer.FirstName,
		Apellido: customer.LastName,
		WhatsApp: customer.WhatsApp,
	})
	if err != nil {
		return "", fmt.Errorf("creating customer: %w", err)
	}
	return ref.ID, nil
}

// FindByID retrieves one customer
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*partner.Customer, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("fetching customer %s: %w", id, err)
	}
	return r.toDomain(snap)
}

// FindAll retrieves every customer ordered by first name
func (r *CustomerRepository) FindAll(ctx context.Context) ([]partner.Customer, error) {
	iter := r.col().OrderBy("nombre", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var customers []partner.Customer
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing customers: %w", err)
		}
		customer, err := r.toDomain(snap)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *customer)
	}
	return customers, nil
}

func (r *CustomerRepository) toDomain(snap *firestore.DocumentSnapshot) (*partner.Customer, error) {
	var doc customerDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decoding customer %s: %w", snap.Ref.ID, err)
	}
	return &partner.Customer{
		ID:        snap.Ref.ID,
		FirstName: doc.Nombre,
		LastName:  doc.Apellido,
		WhatsApp:  doc.WhatsApp,
		CreatedAt: doc.FechaCreacion,
	}, nil
}
