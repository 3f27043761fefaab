package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pedidos/backend/internal/domain/shared"
	"github.com/pedidos/backend/internal/domain/trade"
)

// orderItemDoc mirrors one element of a pedidos document's embedded item list
type orderItemDoc struct {
	ClienteID      string  `firestore:"clienteId"`
	ClienteNombre  string  `firestore:"clienteNombre"`
	Categoria      string  `firestore:"categoria"`
	NumeroCatalogo string  `firestore:"numeroCatalogo,omitempty"`
	Marca          string  `firestore:"marca,omitempty"`
	Numero         string  `firestore:"numero"`
	PriceShoes     float64 `firestore:"priceShoes"`
	PrecioFinal    float64 `firestore:"precioFinal"`
	Ubicacion      string  `firestore:"ubicacion,omitempty"`
	Completado     bool    `firestore:"completado"`
	Nota           string  `firestore:"nota,omitempty"`
}

// orderDoc mirrors the wire shape of a pedidos document. Two shapes coexist:
// the current one carries the items list, the legacy one has no items and a
// direct clienteId/cliente pair instead.
type orderDoc struct {
	Folio              string         `firestore:"folio"`
	Clientes           []string       `firestore:"clientes"`
	Items              []orderItemDoc `firestore:"items"`
	TotalPriceShoes    float64        `firestore:"totalPriceShoes"`
	TotalPrecioFinal   float64        `firestore:"totalPrecioFinal"`
	FechaCreacion      time.Time      `firestore:"fechaCreacion,serverTimestamp"`
	FechaActualizacion *time.Time     `firestore:"fechaActualizacion"`
	Eliminado          bool           `firestore:"eliminado"`

	// Legacy single-customer shape
	ClienteID string `firestore:"clienteId,omitempty"`
	Cliente   string `firestore:"cliente,omitempty"`
}

// OrderRepository implements trade.OrderRepository on Firestore
type OrderRepository struct {
	client *firestore.Client
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(client *firestore.Client) *OrderRepository {
	return &OrderRepository{client: client}
}

func (r *OrderRepository) col() *firestore.CollectionRef {
	return r.client.Collection(collectionOrders)
}

// Create persists a new order and returns the store-assigned ID
func (r *OrderRepository) Create(ctx context.Context, order *trade.Order) (string, error) {
	ref := r.col().NewDoc()
	if _, err := ref.Set(ctx, toOrderDoc(order)); err != nil {
		return "", fmt.Errorf("creating order %s: %w", order.Folio, err)
	}
	return ref.ID, nil
}

// FindByID retrieves one order, soft-deleted included; callers decide whether
// a deleted order is visible
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*trade.Order, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("fetching order %s: %w", id, err)
	}
	return orderToDomain(snap)
}

// FindAll retrieves orders newest-first. Legacy documents predate the
// eliminado field, so the deleted filter runs in memory rather than as a
// store query.
func (r *OrderRepository) FindAll(ctx context.Context, includeDeleted bool) ([]trade.Order, error) {
	iter := r.col().OrderBy("fechaCreacion", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var orders []trade.Order
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing orders: %w", err)
		}
		order, err := orderToDomain(snap)
		if err != nil {
			return nil, err
		}
		if order.Deleted && !includeDeleted {
			continue
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

// Count counts orders for folio sequencing. Only document keys travel over
// the wire.
func (r *OrderRepository) Count(ctx context.Context, includeDeleted bool) (int, error) {
	query := r.col().Select()
	if !includeDeleted {
		query = r.col().Select("eliminado")
	}
	iter := query.Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("counting orders: %w", err)
		}
		if !includeDeleted {
			if deleted, ok := snap.Data()["eliminado"].(bool); ok && deleted {
				continue
			}
		}
		count++
	}
	return count, nil
}

// Update rewrites the mutable top-level fields of an existing order. Items
// ride as a whole-list replace since embedded elements have no addressable
// identity in the store.
func (r *OrderRepository) Update(ctx context.Context, order *trade.Order) error {
	items := make([]orderItemDoc, len(order.Items))
	for i, item := range order.Items {
		items[i] = toOrderItemDoc(item)
	}

	_, err := r.col().Doc(order.ID).Update(ctx, []firestore.Update{
		{Path: "items", Value: items},
		{Path: "clientes", Value: order.CustomerNames},
		{Path: "totalPriceShoes", Value: order.TotalReference.InexactFloat64()},
		{Path: "totalPrecioFinal", Value: order.TotalFinal.InexactFloat64()},
		{Path: "eliminado", Value: order.Deleted},
		{Path: "fechaActualizacion", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return shared.ErrNotFound
		}
		return fmt.Errorf("updating order %s: %w", order.ID, err)
	}
	return nil
}

func toOrderItemDoc(item trade.OrderItem) orderItemDoc {
	return orderItemDoc{
		ClienteID:      item.CustomerID,
		ClienteNombre:  item.CustomerName,
		Categoria:      item.Category.String(),
		NumeroCatalogo: item.CatalogID,
		Marca:          item.Brand,
		Numero:         item.SizeLabel,
		PriceShoes:     item.ReferencePrice.InexactFloat64(),
		PrecioFinal:    item.FinalPrice.InexactFloat64(),
		Ubicacion:      item.Location,
		Completado:     item.Completed,
		Nota:           item.Note,
	}
}

func toOrderDoc(order *trade.Order) orderDoc {
	items := make([]orderItemDoc, len(order.Items))
	for i, item := range order.Items {
		items[i] = toOrderItemDoc(item)
	}
	return orderDoc{
		Folio:            order.Folio,
		Clientes:         order.CustomerNames,
		Items:            items,
		TotalPriceShoes:  order.TotalReference.InexactFloat64(),
		TotalPrecioFinal: order.TotalFinal.InexactFloat64(),
		Eliminado:        order.Deleted,
		ClienteID:        order.LegacyCustomerID,
		Cliente:          order.LegacyCustomerName,
	}
}

func orderToDomain(snap *firestore.DocumentSnapshot) (*trade.Order, error) {
	var doc orderDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decoding order %s: %w", snap.Ref.ID, err)
	}

	items := make([]trade.OrderItem, len(doc.Items))
	for i, item := range doc.Items {
		items[i] = trade.OrderItem{
			CustomerID:     item.ClienteID,
			CustomerName:   item.ClienteNombre,
			Category:       trade.Category(item.Categoria),
			CatalogID:      item.NumeroCatalogo,
			Brand:          item.Marca,
			SizeLabel:      item.Numero,
			ReferencePrice: decimal.NewFromFloat(item.PriceShoes),
			FinalPrice:     decimal.NewFromFloat(item.PrecioFinal),
			Location:       item.Ubicacion,
			Completed:      item.Completado,
			Note:           item.Nota,
		}
	}

	return &trade.Order{
		ID:                 snap.Ref.ID,
		Folio:              doc.Folio,
		CustomerNames:      doc.Clientes,
		Items:              items,
		TotalReference:     decimal.NewFromFloat(doc.TotalPriceShoes),
		TotalFinal:         decimal.NewFromFloat(doc.TotalPrecioFinal),
		CreatedAt:          doc.FechaCreacion,
		UpdatedAt:          doc.FechaActualizacion,
		Deleted:            doc.Eliminado,
		LegacyCustomerID:   doc.ClienteID,
		LegacyCustomerName: doc.Cliente,
	}, nil
}
