package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/travelbook/internal/auth"
	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(ctx context.Context, authHeader string) (*auth.Identity, error) {
	args := m.Called(ctx, authHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Identity), args.Error(1)
}

func (m *MockTokenVerifier) VerifyAdmin(ctx context.Context, authHeader string) (*auth.Identity, error) {
	args := m.Called(ctx, authHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Identity), args.Error(1)
}

func middlewareRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", handler, func(c *gin.Context) {
		identity := identityFrom(c)
		c.JSON(http.StatusOK, gin.H{"userId": identity.UserID})
	})
	return router
}

func TestRequireUser_distinctCodes(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{auth.ErrAuthRequired, "MISSING_AUTH_TOKEN"},
		{auth.ErrInvalidToken, "INVALID_TOKEN"},
		{auth.ErrTokenExpired, "TOKEN_EXPIRED"},
		{auth.ErrUserNotFound, "USER_NOT_FOUND"},
	}

	for _, tc := range cases {
		verifier := &MockTokenVerifier{}
		verifier.On("Verify", mock.Anything, mock.Anything).Return(nil, tc.err)
		router := middlewareRouter(RequireUser(verifier))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer whatever")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), tc.code)
	}
}

func TestRequireUser_storesIdentity(t *testing.T) {
	verifier := &MockTokenVerifier{}
	verifier.On("Verify", mock.Anything, "Bearer tok-1").
		Return(&auth.Identity{UserID: "u1", Role: domain.RoleUser}, nil)
	router := middlewareRouter(RequireUser(verifier))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestRequireAdmin_collapsesAuthFailuresToUnauthorized(t *testing.T) {
	for _, authErr := range []error{auth.ErrAuthRequired, auth.ErrInvalidToken, auth.ErrTokenExpired} {
		verifier := &MockTokenVerifier{}
		verifier.On("VerifyAdmin", mock.Anything, mock.Anything).Return(nil, authErr)
		router := middlewareRouter(RequireAdmin(verifier))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	}
}

func TestRequireAdmin_nonAdminIsForbiddenNot401(t *testing.T) {
	verifier := &MockTokenVerifier{}
	verifier.On("VerifyAdmin", mock.Anything, mock.Anything).Return(nil, auth.ErrAdminRequired)
	router := middlewareRouter(RequireAdmin(verifier))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestRequireAdmin_adminPasses(t *testing.T) {
	verifier := &MockTokenVerifier{}
	verifier.On("VerifyAdmin", mock.Anything, "Bearer tok-a").
		Return(&auth.Identity{UserID: "a1", Role: domain.RoleAdmin}, nil)
	router := middlewareRouter(RequireAdmin(verifier))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer tok-a")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a1")
}
