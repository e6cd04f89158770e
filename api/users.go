package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/travelbook/internal/repository"
	"github.com/Domenick1991/travelbook/internal/service/users"
	"github.com/Domenick1991/travelbook/internal/validate"
	"github.com/gin-gonic/gin"
)

// UserHandler exposes the admin-only user management surface. User ids
// are opaque strings issued by the auth provider, not numeric.
type UserHandler struct {
	service users.UserUseCase
}

func NewUserHandler(service users.UserUseCase) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(router *gin.RouterGroup, verifier TokenVerifier) {
	admin := router.Group("", RequireAdmin(verifier))
	admin.GET("", h.list)
	admin.PUT("", h.update)
	admin.DELETE("", h.delete)
}

func (h *UserHandler) list(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		user, err := h.service.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				fail(c, http.StatusNotFound, "User not found", "USER_NOT_FOUND")
				return
			}
			internalError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
		return
	}

	result, err := h.service.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *UserHandler) update(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		fail(c, http.StatusBadRequest, "User ID is required", "INVALID_ID")
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON body", "INVALID_JSON")
		return
	}
	upd, verr := validate.UserPatch(body)
	if verr != nil {
		fail(c, http.StatusBadRequest, verr.Message, verr.Code)
		return
	}
	user, err := h.service.Update(c.Request.Context(), id, *upd)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			fail(c, http.StatusNotFound, "User not found", "USER_NOT_FOUND")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		fail(c, http.StatusBadRequest, "User ID is required", "INVALID_ID")
		return
	}
	user, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			fail(c, http.StatusNotFound, "User not found", "USER_NOT_FOUND")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully", "user": user})
}
