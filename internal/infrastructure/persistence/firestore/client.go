package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/pedidos/backend/internal/infrastructure/config"
)

// Top-level collection names
const (
	collectionCustomers = "clientes"
	collectionOrders    = "pedidos"

	subcollectionDebts    = "deudas"
	subcollectionPayments = "abonos"
)

// NewClient creates the Firestore client for the configured project. With no
// credentials file configured, Application Default Credentials apply.
func NewClient(ctx context.Context, cfg config.FirebaseConfig) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firestore client: %w", err)
	}
	return client, nil
}
