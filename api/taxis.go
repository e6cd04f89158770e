package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Domenick1991/travelbook/internal/repository"
	"github.com/Domenick1991/travelbook/internal/service/taxis"
	"github.com/Domenick1991/travelbook/internal/validate"
	"github.com/gin-gonic/gin"
)

type TaxiHandler struct {
	service taxis.TaxiUseCase
}

func NewTaxiHandler(service taxis.TaxiUseCase) *TaxiHandler {
	return &TaxiHandler{service: service}
}

func (h *TaxiHandler) Register(router *gin.RouterGroup, verifier TokenVerifier) {
	router.GET("", h.list)
	router.GET("/:id", h.getByID)

	admin := router.Group("", RequireAdmin(verifier))
	admin.POST("", h.create)
	admin.PUT("", h.update)
	admin.DELETE("", h.delete)
}

func (h *TaxiHandler) list(c *gin.Context) {
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid taxi ID", "INVALID_ID")
			return
		}
		taxi, err := h.service.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrTaxiNotFound) {
				fail(c, http.StatusNotFound, "Taxi not found", "TAXI_NOT_FOUND")
				return
			}
			internalError(c, err)
			return
		}
		c.JSON(http.StatusOK, taxi)
		return
	}

	filter := repository.TaxiFilter{
		MinPrice:    queryInt(c, "minPrice"),
		MaxPrice:    queryInt(c, "maxPrice"),
		Type:        c.Query("type"),
		MinCapacity: queryInt(c, "minCapacity"),
		Available:   queryBool(c, "available"),
		SortBy:      c.Query("sortBy"),
	}
	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TaxiHandler) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid taxi ID", "INVALID_ID")
		return
	}
	taxi, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTaxiNotFound) {
			fail(c, http.StatusNotFound, "Taxi not found", "TAXI_NOT_FOUND")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, taxi)
}

func (h *TaxiHandler) create(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON body", "INVALID_JSON")
		return
	}
	taxi, verr := validate.TaxiCreate(body)
	if verr != nil {
		fail(c, http.StatusBadRequest, verr.Message, verr.Code)
		return
	}
	if err := h.service.Create(c.Request.Context(), taxi); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, taxi)
}

func (h *TaxiHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid taxi ID", "INVALID_ID")
		return
	}
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON body", "INVALID_JSON")
		return
	}
	upd, verr := validate.TaxiPatch(body)
	if verr != nil {
		fail(c, http.StatusBadRequest, verr.Message, verr.Code)
		return
	}
	taxi, err := h.service.Update(c.Request.Context(), id, *upd)
	if err != nil {
		if errors.Is(err, repository.ErrTaxiNotFound) {
			fail(c, http.StatusNotFound, "Taxi not found", "TAXI_NOT_FOUND")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, taxi)
}

func (h *TaxiHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid taxi ID", "INVALID_ID")
		return
	}
	taxi, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTaxiNotFound) {
			fail(c, http.StatusNotFound, "Taxi not found", "TAXI_NOT_FOUND")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Taxi deleted successfully", "taxi": taxi})
}
