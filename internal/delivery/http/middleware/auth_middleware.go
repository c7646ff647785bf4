// Package middleware contains the HTTP middleware of the admin API.
package middleware

import (
	"log/slog"
	"strings"

	"domkarta/internal/delivery/http/response"
	"domkarta/internal/domain/repository"
	"domkarta/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for handlers to use.
const (
	ContextKeyUserUID   = "userUID"
	ContextKeyUserEmail = "userEmail"
)

// AuthMiddleware verifies identity-provider ID tokens and checks the admin
// role. Reads stay public; every mutating route goes through both steps.
type AuthMiddleware struct {
	verifier  service.TokenVerifier
	adminRepo repository.AdminRoleRepository
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, adminRepo repository.AdminRoleRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:  verifier,
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// Authenticate validates the Bearer ID token and stores the identity on the
// context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		idToken := strings.TrimPrefix(authHeader, "Bearer ")
		if idToken == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		user, err := m.verifier.VerifyIDToken(c.Request().Context(), idToken)
		if err != nil {
			m.logger.Debug("id token rejected", slog.Any("error", err))

			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		c.Set(ContextKeyUserUID, user.UID)
		c.Set(ContextKeyUserEmail, user.Email)

		return next(c)
	}
}

// RequireAdmin checks the roles_admin document of the authenticated user.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get(ContextKeyUserUID).(string)
		if !ok || uid == "" {
			return response.Forbidden(c, "FORBIDDEN", "Identity information missing")
		}

		isAdmin, err := m.adminRepo.IsAdmin(c.Request().Context(), uid)
		if err != nil {
			m.logger.Error("admin role lookup failed",
				slog.String("uid", uid),
				slog.Any("error", err),
			)

			return response.Forbidden(c, "FORBIDDEN", "Could not verify admin role")
		}
		if !isAdmin {
			return response.Forbidden(c, "FORBIDDEN", "Admin role required")
		}

		return next(c)
	}
}
