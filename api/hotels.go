package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Domenick1991/travelbook/internal/repository"
	"github.com/Domenick1991/travelbook/internal/service/hotels"
	"github.com/Domenick1991/travelbook/internal/validate"
	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	service hotels.HotelUseCase
}

func NewHotelHandler(service hotels.HotelUseCase) *HotelHandler {
	return &HotelHandler{service: service}
}

func (h *HotelHandler) Register(router *gin.RouterGroup, verifier TokenVerifier) {
	router.GET("", h.list)
	router.GET("/:id", h.getByID)

	admin := router.Group("", RequireAdmin(verifier))
	admin.POST("", h.create)
	admin.PUT("", h.update)
	admin.DELETE("", h.delete)
}

// list serves both the filtered collection and single-record lookup via
// ?id=, the way the original collection endpoint behaved.
func (h *HotelHandler) list(c *gin.Context) {
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid hotel ID", "INVALID_ID")
			return
		}
		hotel, err := h.service.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrHotelNotFound) {
				fail(c, http.StatusNotFound, "Hotel not found", "NOT_FOUND")
				return
			}
			internalError(c, err)
			return
		}
		c.JSON(http.StatusOK, hotel)
		return
	}

	opts := hotels.ListOptions{
		HotelFilter: repository.HotelFilter{
			MinPrice:  queryInt(c, "minPrice"),
			MaxPrice:  queryInt(c, "maxPrice"),
			MinRating: queryFloat(c, "minRating"),
			RoomType:  c.Query("roomType"),
			SortBy:    c.Query("sortBy"),
		},
	}
	if raw := c.Query("amenities"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				opts.Amenities = append(opts.Amenities, a)
			}
		}
	}

	result, err := h.service.List(c.Request.Context(), opts)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *HotelHandler) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid hotel ID", "INVALID_ID")
		return
	}
	hotel, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			fail(c, http.StatusNotFound, "Hotel not found", "HOTEL_NOT_FOUND")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (h *HotelHandler) create(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON body", "INVALID_JSON")
		return
	}
	hotel, verr := validate.HotelCreate(body)
	if verr != nil {
		fail(c, http.StatusBadRequest, verr.Message, verr.Code)
		return
	}
	if err := h.service.Create(c.Request.Context(), hotel); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

func (h *HotelHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid hotel ID", "INVALID_ID")
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON body", "INVALID_JSON")
		return
	}
	upd, verr := validate.HotelPatch(body)
	if verr != nil {
		fail(c, http.StatusBadRequest, verr.Message, verr.Code)
		return
	}
	hotel, err := h.service.Update(c.Request.Context(), id, *upd)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			fail(c, http.StatusNotFound, "Hotel not found", "HOTEL_NOT_FOUND")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (h *HotelHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid hotel ID", "INVALID_ID")
		return
	}
	hotel, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			fail(c, http.StatusNotFound, "Hotel not found", "HOTEL_NOT_FOUND")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hotel deleted successfully", "hotel": hotel})
}
