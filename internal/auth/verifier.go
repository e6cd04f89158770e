// Package auth resolves bearer tokens to user identities. Tokens are
// opaque session credentials issued by the external auth provider; this
// package only reads the session and user tables, it never writes.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/Domenick1991/travelbook/internal/repository"
)

var (
	// ErrAuthRequired: Authorization header absent or not a Bearer scheme.
	ErrAuthRequired = errors.New("authorization token is required")
	// ErrInvalidToken: no session row matches the presented token.
	ErrInvalidToken = errors.New("invalid authentication token")
	// ErrTokenExpired: the session exists but its expiry instant has passed.
	ErrTokenExpired = errors.New("authentication token has expired")
	// ErrUserNotFound: the session's user row is gone. Treated as an
	// authentication failure, not an authorization one.
	ErrUserNotFound = errors.New("user not found")
	// ErrAdminRequired: authenticated, but the caller is not an admin.
	ErrAdminRequired = errors.New("admin access required")
)

type Identity struct {
	UserID string
	Role   string
}

func (i Identity) IsAdmin() bool {
	return i.Role == domain.RoleAdmin
}

type Verifier struct {
	sessions repository.SessionRepository
	users    repository.UserRepository
}

func NewVerifier(sessions repository.SessionRepository, users repository.UserRepository) *Verifier {
	return &Verifier{sessions: sessions, users: users}
}

// Verify resolves a raw Authorization header value to an identity. Each
// failure condition maps to a distinct sentinel so handlers can pick the
// response code; a failed lookup is terminal for the request.
func (v *Verifier) Verify(ctx context.Context, authHeader string) (*Identity, error) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, ErrAuthRequired
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return nil, ErrAuthRequired
	}

	session, err := v.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if session.Expired(time.Now()) {
		return nil, ErrTokenExpired
	}

	user, err := v.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &Identity{UserID: user.ID, Role: user.Role}, nil
}

// VerifyAdmin is Verify plus the admin gate: any Verify failure passes
// through unchanged, a non-admin role yields ErrAdminRequired.
func (v *Verifier) VerifyAdmin(ctx context.Context, authHeader string) (*Identity, error) {
	identity, err := v.Verify(ctx, authHeader)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdmin() {
		return nil, ErrAdminRequired
	}
	return identity, nil
}

// IsAuthError reports whether err is one of the authentication sentinels
// (the 401 family, not the 403 admin gate).
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuthRequired) || errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrTokenExpired) || errors.Is(err, ErrUserNotFound)
}
