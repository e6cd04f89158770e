package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/travelbook/api"
	"github.com/Domenick1991/travelbook/config"
	"github.com/Domenick1991/travelbook/internal/service/bookings"
	"github.com/Domenick1991/travelbook/internal/service/flights"
	"github.com/Domenick1991/travelbook/internal/service/hotels"
	"github.com/Domenick1991/travelbook/internal/service/taxis"
	"github.com/Domenick1991/travelbook/internal/service/users"
	"github.com/gin-gonic/gin"
)

// Services bundles everything the router needs.
type Services struct {
	Verifier api.TokenVerifier
	Hotels   hotels.HotelUseCase
	Flights  flights.FlightUseCase
	Taxis    taxis.TaxiUseCase
	Bookings bookings.BookingUseCase
	Users    users.UserUseCase
}

// NewRouter builds the gin engine with all resource routes mounted
// under /api and the health probe at the root.
func NewRouter(svc Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := router.Group("/api")
	api.NewHotelHandler(svc.Hotels).Register(root.Group("/hotels"), svc.Verifier)
	api.NewFlightHandler(svc.Flights).Register(root.Group("/flights"), svc.Verifier)
	api.NewTaxiHandler(svc.Taxis).Register(root.Group("/taxis"), svc.Verifier)
	api.NewBookingHandler(svc.Bookings).Register(root.Group("/bookings"), svc.Verifier)
	api.NewUserHandler(svc.Users).Register(root.Group("/users"), svc.Verifier)

	return router
}

// Run serves HTTP and blocks until the context is canceled or the
// server fails. Shutdown drains in-flight requests for up to 5s.
func Run(ctx context.Context, cfg *config.Config, svc Services) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(svc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
