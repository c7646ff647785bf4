// Package auth provides concrete implementations of the token verification
// service.
package auth

import (
	"context"

	"domkarta/config"
	"domkarta/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier creates the production token verifier backed by
// Firebase Auth. Tokens are fully verified: signature, expiry and audience.
func NewFirebaseVerifier(ctx context.Context, cfg *config.FirebaseConfig) (service.TokenVerifier, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.AuthUser, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "verify id token")
	}

	user := &service.AuthUser{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		user.Email = email
	}

	return user, nil
}
