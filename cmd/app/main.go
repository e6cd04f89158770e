package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/travelbook/config"
	"github.com/Domenick1991/travelbook/internal/auth"
	"github.com/Domenick1991/travelbook/internal/bootstrap"
	"github.com/Domenick1991/travelbook/internal/cache"
	"github.com/Domenick1991/travelbook/internal/kafka"
	"github.com/Domenick1991/travelbook/internal/repository"
	"github.com/Domenick1991/travelbook/internal/service/bookings"
	"github.com/Domenick1991/travelbook/internal/service/flights"
	"github.com/Domenick1991/travelbook/internal/service/hotels"
	"github.com/Domenick1991/travelbook/internal/service/taxis"
	"github.com/Domenick1991/travelbook/internal/service/users"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	listTTL := time.Duration(cfg.Cache.ListTTLSeconds) * time.Second
	redisCache := cache.NewRedisCache(cfg.Redis, listTTL)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	hotelRepo := repository.NewHotelRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	taxiRepo := repository.NewTaxiRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)

	svc := bootstrap.Services{
		Verifier: auth.NewVerifier(sessionRepo, userRepo),
		Hotels:   hotels.NewHotelService(hotelRepo, redisCache),
		Flights:  flights.NewFlightService(flightRepo, redisCache),
		Taxis:    taxis.NewTaxiService(taxiRepo, redisCache),
		Bookings: bookings.NewBookingService(
			bookingRepo,
			hotelRepo,
			flightRepo,
			taxiRepo,
			producer,
			bookings.Topics{
				Bookings:      cfg.Kafka.BookingTopic,
				Notifications: cfg.Kafka.NotificationsTopic,
			},
		),
		Users: users.NewUserService(userRepo),
	}

	if err := bootstrap.Run(ctx, cfg, svc); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
