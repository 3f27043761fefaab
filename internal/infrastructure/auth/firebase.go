package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/pedidos/backend/internal/infrastructure/config"
)

// NewApp initializes the Firebase app backing both authentication and the
// document store. With no credentials file configured, Application Default
// Credentials apply.
func NewApp(ctx context.Context, cfg config.FirebaseConfig) (*firebase.App, error) {
	fbConfig := &firebase.Config{ProjectID: cfg.ProjectID}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}
	return app, nil
}

// NewTokenVerifier returns the Firebase Auth client used to verify operator
// ID tokens on every request
func NewTokenVerifier(ctx context.Context, app *firebase.App) (*firebaseauth.Client, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase auth client: %w", err)
	}
	return client, nil
}
