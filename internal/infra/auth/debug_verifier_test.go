package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDebugToken(t *testing.T, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("local-secret"))
	require.NoError(t, err)

	return signed
}

func TestDebugVerifier_ExtractsIdentity(t *testing.T) {
	verifier := NewDebugVerifier(slog.New(slog.NewTextHandler(io.Discard, nil)))

	idToken := newDebugToken(t, jwt.MapClaims{
		"user_id": "uid-1",
		"email":   "admin@example.com",
	})

	user, err := verifier.VerifyIDToken(context.Background(), idToken)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.UID)
	assert.Equal(t, "admin@example.com", user.Email)
}

func TestDebugVerifier_FallsBackToSubject(t *testing.T) {
	verifier := NewDebugVerifier(slog.New(slog.NewTextHandler(io.Discard, nil)))

	idToken := newDebugToken(t, jwt.MapClaims{"sub": "uid-2"})

	user, err := verifier.VerifyIDToken(context.Background(), idToken)
	require.NoError(t, err)
	assert.Equal(t, "uid-2", user.UID)
}

func TestDebugVerifier_RejectsGarbage(t *testing.T) {
	verifier := NewDebugVerifier(slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := verifier.VerifyIDToken(context.Background(), "not-a-token")
	require.Error(t, err)
}

func TestDebugVerifier_RejectsTokenWithoutSubject(t *testing.T) {
	verifier := NewDebugVerifier(slog.New(slog.NewTextHandler(io.Discard, nil)))

	idToken := newDebugToken(t, jwt.MapClaims{"email": "nobody@example.com"})

	_, err := verifier.VerifyIDToken(context.Background(), idToken)
	require.Error(t, err)
}
