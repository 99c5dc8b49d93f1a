// Package firebase initializes the shared Firebase app backing both the auth
// collaborator and the Firestore document store.
package firebase

import (
	"context"

	"lumera/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// AppParams holds dependencies for the Firebase app, injected by Fx.
type AppParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
}

// NewApp creates the Firebase app from the configured project and credentials.
func NewApp(params AppParams) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}

// NewAuthClient returns the Firebase Auth admin client.
func NewAuthClient(ctx context.Context, app *firebase.App) (*auth.Client, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return client, nil
}
