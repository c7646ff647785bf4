package service

import "context"

// AuthUser is the identity extracted from a verified ID token.
type AuthUser struct {
	UID   string
	Email string
}

// TokenVerifier validates an identity-provider ID token and returns the
// authenticated user. Authorization (admin role) is checked separately
// against the role store.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*AuthUser, error)
}
