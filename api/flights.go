package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Domenick1991/travelbook/internal/repository"
	"github.com/Domenick1991/travelbook/internal/service/flights"
	"github.com/Domenick1991/travelbook/internal/validate"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup, verifier TokenVerifier) {
	router.GET("", h.list)
	router.GET("/:id", h.getByID)

	admin := router.Group("", RequireAdmin(verifier))
	admin.POST("", h.create)
	admin.PUT("", h.update)
	admin.DELETE("", h.delete)
}

func (h *FlightHandler) list(c *gin.Context) {
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid flight ID", "INVALID_ID")
			return
		}
		flight, err := h.service.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrFlightNotFound) {
				fail(c, http.StatusNotFound, "Flight not found", "FLIGHT_NOT_FOUND")
				return
			}
			internalError(c, err)
			return
		}
		c.JSON(http.StatusOK, flight)
		return
	}

	filter := repository.FlightFilter{
		MinPrice: queryInt(c, "minPrice"),
		MaxPrice: queryInt(c, "maxPrice"),
		From:     c.Query("from"),
		To:       c.Query("to"),
		Date:     c.Query("date"),
		Class:    c.Query("class"),
		Stops:    c.Query("stops"),
		SortBy:   c.Query("sortBy"),
	}
	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FlightHandler) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid flight ID", "INVALID_ID")
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			fail(c, http.StatusNotFound, "Flight not found", "FLIGHT_NOT_FOUND")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) create(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON body", "INVALID_JSON")
		return
	}
	flight, verr := validate.FlightCreate(body)
	if verr != nil {
		fail(c, http.StatusBadRequest, verr.Message, verr.Code)
		return
	}
	if err := h.service.Create(c.Request.Context(), flight); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid flight ID", "INVALID_ID")
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON body", "INVALID_JSON")
		return
	}
	upd, verr := validate.FlightPatch(body)
	if verr != nil {
		fail(c, http.StatusBadRequest, verr.Message, verr.Code)
		return
	}
	flight, err := h.service.Update(c.Request.Context(), id, *upd)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			fail(c, http.StatusNotFound, "Flight not found", "FLIGHT_NOT_FOUND")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid flight ID", "INVALID_ID")
		return
	}
	flight, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			fail(c, http.StatusNotFound, "Flight not found", "FLIGHT_NOT_FOUND")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Flight deleted successfully", "flight": flight})
}
