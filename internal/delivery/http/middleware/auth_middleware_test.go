package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"domkarta/internal/domain/service"
	repomocks "domkarta/internal/mocks/repository"
	servicemocks "domkarta/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthMiddleware(t *testing.T) (*AuthMiddleware, *servicemocks.MockTokenVerifier, *repomocks.MockAdminRoleRepository) {
	t.Helper()

	verifier := servicemocks.NewMockTokenVerifier(t)
	adminRepo := repomocks.NewMockAdminRoleRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthMiddleware(verifier, adminRepo, logger), verifier, adminRepo
}

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/houses", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := mw(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, reached
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	mw, _, _ := newAuthMiddleware(t)

	rec, reached := runMiddleware(t, mw.Authenticate, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	mw, verifier, _ := newAuthMiddleware(t)

	rec, reached := runMiddleware(t, mw.Authenticate, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	verifier.AssertNotCalled(t, "VerifyIDToken")
}

func TestAuthenticate_RejectedToken(t *testing.T) {
	mw, verifier, _ := newAuthMiddleware(t)

	verifier.EXPECT().
		VerifyIDToken(mock.Anything, "bad-token").
		Return(nil, errors.New("token expired"))

	rec, reached := runMiddleware(t, mw.Authenticate, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthenticate_StoresIdentity(t *testing.T) {
	mw, verifier, _ := newAuthMiddleware(t)

	verifier.EXPECT().
		VerifyIDToken(mock.Anything, "good-token").
		Return(&service.AuthUser{UID: "uid-1", Email: "admin@example.com"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/houses", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.Authenticate(func(c echo.Context) error {
		assert.Equal(t, "uid-1", c.Get(ContextKeyUserUID))
		assert.Equal(t, "admin@example.com", c.Get(ContextKeyUserEmail))

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_NotAuthenticated(t *testing.T) {
	mw, _, adminRepo := newAuthMiddleware(t)

	rec, reached := runMiddleware(t, mw.RequireAdmin, "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
	adminRepo.AssertNotCalled(t, "IsAdmin")
}

func TestRequireAdmin_NonAdmin(t *testing.T) {
	mw, _, adminRepo := newAuthMiddleware(t)

	adminRepo.EXPECT().
		IsAdmin(mock.Anything, "uid-1").
		Return(false, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/houses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyUserUID, "uid-1")

	handler := mw.RequireAdmin(func(c echo.Context) error {
		t.Fatal("handler must not run for non-admins")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_Admin(t *testing.T) {
	mw, _, adminRepo := newAuthMiddleware(t)

	adminRepo.EXPECT().
		IsAdmin(mock.Anything, "uid-1").
		Return(true, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/houses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyUserUID, "uid-1")

	handler := mw.RequireAdmin(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_LookupFailure(t *testing.T) {
	mw, _, adminRepo := newAuthMiddleware(t)

	adminRepo.EXPECT().
		IsAdmin(mock.Anything, "uid-1").
		Return(false, errors.New("store unavailable"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/houses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyUserUID, "uid-1")

	handler := mw.RequireAdmin(func(c echo.Context) error {
		t.Fatal("handler must not run when the role lookup fails")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
