package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Domenick1991/travelbook/internal/repository"
	"github.com/Domenick1991/travelbook/internal/service/bookings"
	"github.com/Domenick1991/travelbook/internal/validate"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service bookings.BookingUseCase
}

func NewBookingHandler(service bookings.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

// Register mounts the booking routes. Every route requires an
// authenticated caller; the update route additionally requires the
// admin role, checked in the handler so the booking surface keeps its
// per-cause 401 codes.
func (h *BookingHandler) Register(router *gin.RouterGroup, verifier TokenVerifier) {
	authed := router.Group("", RequireUser(verifier))
	authed.GET("", h.list)
	authed.GET("/:id", h.getByID)
	authed.POST("", h.create)
	authed.PUT("", h.update)
	authed.DELETE("", h.delete)
}

func (h *BookingHandler) list(c *gin.Context) {
	identity := identityFrom(c)

	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid booking ID", "INVALID_ID")
			return
		}
		detail, err := h.service.Get(c.Request.Context(), identity, id)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrBookingNotFound):
				fail(c, http.StatusNotFound, "Booking not found", "BOOKING_NOT_FOUND")
			case errors.Is(err, bookings.ErrNotOwner):
				fail(c, http.StatusForbidden, "Forbidden: Cannot access other users bookings", "FORBIDDEN")
			default:
				internalError(c, err)
			}
			return
		}
		c.JSON(http.StatusOK, detail)
		return
	}

	result, err := h.service.List(c.Request.Context(), identity)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) getByID(c *gin.Context) {
	identity := identityFrom(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid booking ID", "INVALID_ID")
		return
	}
	detail, err := h.service.Get(c.Request.Context(), identity, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			fail(c, http.StatusNotFound, "Booking not found", "BOOKING_NOT_FOUND")
		case errors.Is(err, bookings.ErrNotOwner):
			fail(c, http.StatusForbidden, "You do not have permission to access this booking", "FORBIDDEN")
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *BookingHandler) create(c *gin.Context) {
	identity := identityFrom(c)
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON body", "INVALID_JSON")
		return
	}
	input, verr := validate.BookingCreate(body)
	if verr != nil {
		fail(c, http.StatusBadRequest, verr.Message, verr.Code)
		return
	}

	booking, err := h.service.Create(c.Request.Context(), identity, input)
	if err != nil {
		var fkErr *validate.Error
		if errors.As(err, &fkErr) {
			fail(c, http.StatusBadRequest, fkErr.Message, fkErr.Code)
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) update(c *gin.Context) {
	identity := identityFrom(c)
	if !identity.IsAdmin() {
		fail(c, http.StatusForbidden, "Forbidden: Admin access required", "FORBIDDEN")
		return
	}
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid booking ID", "INVALID_ID")
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON body", "INVALID_JSON")
		return
	}
	upd, verr := validate.BookingPatch(body)
	if verr != nil {
		fail(c, http.StatusBadRequest, verr.Message, verr.Code)
		return
	}
	booking, err := h.service.Update(c.Request.Context(), id, *upd)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			fail(c, http.StatusNotFound, "Booking not found", "BOOKING_NOT_FOUND")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) delete(c *gin.Context) {
	identity := identityFrom(c)
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid booking ID", "INVALID_ID")
		return
	}
	booking, err := h.service.Delete(c.Request.Context(), identity, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			fail(c, http.StatusNotFound, "Booking not found", "BOOKING_NOT_FOUND")
		case errors.Is(err, bookings.ErrNotOwner):
			fail(c, http.StatusForbidden, "Forbidden: Cannot access other users bookings", "FORBIDDEN")
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully", "booking": booking})
}
