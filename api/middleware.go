package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/Domenick1991/travelbook/internal/auth"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// TokenVerifier is the slice of internal/auth the middleware needs.
type TokenVerifier interface {
	Verify(ctx context.Context, authHeader string) (*auth.Identity, error)
	VerifyAdmin(ctx context.Context, authHeader string) (*auth.Identity, error)
}

// RequireUser authenticates the request and stores the identity in the
// gin context. Each authentication failure keeps its own code so clients
// can tell an expired session from a bad token.
func RequireUser(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := verifier.Verify(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			status, code := authFailure(err)
			fail(c, status, err.Error(), code)
			c.Abort()
			return
		}
		c.Set(identityKey, *identity)
		c.Next()
	}
}

// RequireAdmin authenticates and enforces the admin role. The admin
// surface collapses all authentication failures to a single 401 code;
// an authenticated non-admin gets 403.
func RequireAdmin(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := verifier.VerifyAdmin(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrAdminRequired):
				fail(c, http.StatusForbidden, "Forbidden: Admin access required", "FORBIDDEN")
			case auth.IsAuthError(err):
				fail(c, http.StatusUnauthorized, "Unauthorized: "+err.Error(), "UNAUTHORIZED")
			default:
				internalError(c, err)
			}
			c.Abort()
			return
		}
		c.Set(identityKey, *identity)
		c.Next()
	}
}

func authFailure(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrAuthRequired):
		return http.StatusUnauthorized, "MISSING_AUTH_TOKEN"
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, "INVALID_TOKEN"
	case errors.Is(err, auth.ErrTokenExpired):
		return http.StatusUnauthorized, "TOKEN_EXPIRED"
	case errors.Is(err, auth.ErrUserNotFound):
		return http.StatusUnauthorized, "USER_NOT_FOUND"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

func identityFrom(c *gin.Context) auth.Identity {
	v, _ := c.Get(identityKey)
	identity, _ := v.(auth.Identity)
	return identity
}
