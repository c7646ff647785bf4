// Package firestore implements the document-store repositories over Google
// Cloud Firestore.
package firestore

import (
	"context"

	"domkarta/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// NewClient initializes the Firestore client through the Firebase app. With
// an empty credentials path the client falls back to application default
// credentials.
func NewClient(ctx context.Context, cfg *config.FirebaseConfig) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firestore client")
	}

	return client, nil
}
