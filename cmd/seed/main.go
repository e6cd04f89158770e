package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Domenick1991/travelbook/config"
	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/Domenick1991/travelbook/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Populates a development database: two users with live sessions, a
// handful of hotels/flights/taxis and a booking against each kind.
// Session tokens are printed so they can be pasted into Authorization
// headers.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	users := repository.NewUserRepository(pool)
	sessions := repository.NewSessionRepository(pool)
	hotels := repository.NewHotelRepository(pool)
	flights := repository.NewFlightRepository(pool)
	taxis := repository.NewTaxiRepository(pool)
	bookings := repository.NewBookingRepository(pool)

	admin := &domain.User{
		ID:            uuid.NewString(),
		Name:          "Admin User",
		Email:         "admin@travelbook.dev",
		EmailVerified: true,
		Role:          domain.RoleAdmin,
	}
	regular := &domain.User{
		ID:            uuid.NewString(),
		Name:          "Jane Traveler",
		Email:         "jane@travelbook.dev",
		EmailVerified: true,
		Role:          domain.RoleUser,
	}
	for _, u := range []*domain.User{admin, regular} {
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("seed user %s: %v", u.Email, err)
		}
	}

	expires := time.Now().Add(30 * 24 * time.Hour)
	for _, u := range []*domain.User{admin, regular} {
		session := &domain.Session{
			ID:        uuid.NewString(),
			Token:     uuid.NewString(),
			UserID:    u.ID,
			ExpiresAt: expires,
		}
		if err := sessions.Create(ctx, session); err != nil {
			log.Fatalf("seed session for %s: %v", u.Email, err)
		}
		fmt.Printf("%s (%s) token: %s\n", u.Email, u.Role, session.Token)
	}

	seedHotels := []*domain.Hotel{
		{
			Name: "Grand Plaza", Location: "Mumbai", Address: "12 Marine Drive",
			Rating: 4.7, Reviews: 1243, Price: 8500,
			Images:    []string{"https://example.com/grand-plaza-1.jpg"},
			Amenities: []string{"WiFi", "Pool", "Spa", "Gym"},
			RoomType:  "Deluxe", Description: "Seafront hotel with rooftop pool.",
		},
		{
			Name: "City Comfort Inn", Location: "Delhi", Address: "4 Connaught Place",
			Rating: 4.1, Reviews: 587, Price: 3200,
			Images:    []string{"https://example.com/city-comfort-1.jpg"},
			Amenities: []string{"WiFi", "Breakfast"},
			RoomType:  "Standard", Description: "Budget stay in the city center.",
		},
	}
	for _, h := range seedHotels {
		if err := hotels.Create(ctx, h); err != nil {
			log.Fatalf("seed hotel %s: %v", h.Name, err)
		}
	}

	seedFlights := []*domain.Flight{
		{
			Airline: "IndiGo", FlightNumber: "6E-204",
			FromLocation: "Mumbai", ToLocation: "Delhi",
			Departure: "06:10", Arrival: "08:20", Duration: "2h 10m",
			Stops: "Non-stop", Price: 4599, Class: "Economy",
			Date: "2026-09-15", AvailableSeats: 112,
		},
		{
			Airline: "Air India", FlightNumber: "AI-860",
			FromLocation: "Delhi", ToLocation: "Bengaluru",
			Departure: "14:30", Arrival: "17:25", Duration: "2h 55m",
			Stops: "Non-stop", Price: 6250, Class: "Business",
			Date: "2026-09-18", AvailableSeats: 24,
		},
	}
	for _, f := range seedFlights {
		if err := flights.Create(ctx, f); err != nil {
			log.Fatalf("seed flight %s: %v", f.FlightNumber, err)
		}
	}

	seedTaxis := []*domain.Taxi{
		{
			Type: "Sedan", Model: "Toyota Camry", Capacity: 4, Luggage: 3,
			PricePerKm: 18, Features: []string{"AC", "Music"},
			Rating: 4.5, TotalTrips: 842, Available: true,
		},
		{
			Type: "SUV", Model: "Mahindra XUV700", Capacity: 6, Luggage: 5,
			PricePerKm: 26, Features: []string{"AC", "WiFi", "Charger"},
			Rating: 4.8, TotalTrips: 311, Available: true,
		},
	}
	for _, t := range seedTaxis {
		if err := taxis.Create(ctx, t); err != nil {
			log.Fatalf("seed taxi %s: %v", t.Model, err)
		}
	}

	checkIn := "2026-09-15"
	checkOut := "2026-09-18"
	guests := 2
	passengers := 1
	pickup := "Airport T2"
	drop := "Marine Drive"
	distance := 24

	seedBookings := []*domain.Booking{
		{
			BookingType: domain.BookingTypeHotel, HotelID: &seedHotels[0].ID,
			UserID: regular.ID, CheckIn: &checkIn, CheckOut: &checkOut, Guests: &guests,
			FullName: regular.Name, Email: regular.Email, Phone: "+91-9000000001",
			Status: domain.BookingStatusConfirmed, Subtotal: 25500, Taxes: 4590, TotalPrice: 30090,
		},
		{
			BookingType: domain.BookingTypeFlight, FlightID: &seedFlights[0].ID,
			UserID: regular.ID, Passengers: &passengers,
			FullName: regular.Name, Email: regular.Email, Phone: "+91-9000000001",
			Status: domain.BookingStatusPending, Subtotal: 4599, Taxes: 828, TotalPrice: 5427,
		},
		{
			BookingType: domain.BookingTypeTaxi, TaxiID: &seedTaxis[0].ID,
			UserID: admin.ID, PickupLocation: &pickup, DropLocation: &drop, Distance: &distance,
			FullName: admin.Name, Email: admin.Email, Phone: "+91-9000000002",
			Status: domain.BookingStatusCompleted, Subtotal: 432, Taxes: 78, TotalPrice: 510,
		},
	}
	for _, b := range seedBookings {
		if err := bookings.Create(ctx, b); err != nil {
			log.Fatalf("seed booking (%s): %v", b.BookingType, err)
		}
	}

	log.Printf("seeded %d users, %d hotels, %d flights, %d taxis, %d bookings",
		2, len(seedHotels), len(seedFlights), len(seedTaxis), len(seedBookings))
}
