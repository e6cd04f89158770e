package bookings

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/Domenick1991/travelbook/internal/auth"
	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/Domenick1991/travelbook/internal/kafka"
	"github.com/Domenick1991/travelbook/internal/repository"
	"github.com/Domenick1991/travelbook/internal/validate"
)

// ErrNotOwner is returned when a non-admin caller touches a booking that
// belongs to another user.
var ErrNotOwner = errors.New("cannot access other users bookings")

// BookingDetail is a booking joined with the resource it was made
// against. Only the field matching the booking type is populated.
type BookingDetail struct {
	domain.Booking
	Hotel  *domain.Hotel  `json:"hotel,omitempty"`
	Flight *domain.Flight `json:"flight,omitempty"`
	Taxi   *domain.Taxi   `json:"taxi,omitempty"`
}

type BookingUseCase interface {
	List(ctx context.Context, identity auth.Identity) ([]domain.Booking, error)
	Get(ctx context.Context, identity auth.Identity, id int64) (*BookingDetail, error)
	Create(ctx context.Context, identity auth.Identity, input *validate.BookingInput) (*domain.Booking, error)
	Update(ctx context.Context, id int64, upd repository.BookingUpdate) (*domain.Booking, error)
	Delete(ctx context.Context, identity auth.Identity, id int64) (*domain.Booking, error)
}

// Publisher is the slice of the event producer this service needs.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

type Topics struct {
	Bookings      string
	Notifications string
}

type BookingService struct {
	repo     repository.BookingRepository
	hotels   repository.HotelRepository
	flights  repository.FlightRepository
	taxis    repository.TaxiRepository
	producer Publisher
	topics   Topics
}

func NewBookingService(
	repo repository.BookingRepository,
	hotels repository.HotelRepository,
	flights repository.FlightRepository,
	taxis repository.TaxiRepository,
	producer Publisher,
	topics Topics,
) *BookingService {
	return &BookingService{
		repo:     repo,
		hotels:   hotels,
		flights:  flights,
		taxis:    taxis,
		producer: producer,
		topics:   topics,
	}
}

// List returns every booking for admins and only the caller's own
// bookings otherwise.
func (s *BookingService) List(ctx context.Context, identity auth.Identity) ([]domain.Booking, error) {
	if identity.IsAdmin() {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByUser(ctx, identity.UserID)
}

func (s *BookingService) Get(ctx context.Context, identity auth.Identity, id int64) (*BookingDetail, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != identity.UserID && !identity.IsAdmin() {
		return nil, ErrNotOwner
	}

	detail := &BookingDetail{Booking: *booking}
	switch booking.BookingType {
	case domain.BookingTypeHotel:
		if booking.HotelID != nil {
			hotel, err := s.hotels.GetByID(ctx, *booking.HotelID)
			if err != nil && !errors.Is(err, repository.ErrHotelNotFound) {
				return nil, err
			}
			detail.Hotel = hotel
		}
	case domain.BookingTypeFlight:
		if booking.FlightID != nil {
			flight, err := s.flights.GetByID(ctx, *booking.FlightID)
			if err != nil && !errors.Is(err, repository.ErrFlightNotFound) {
				return nil, err
			}
			detail.Flight = flight
		}
	case domain.BookingTypeTaxi:
		if booking.TaxiID != nil {
			taxi, err := s.taxis.GetByID(ctx, *booking.TaxiID)
			if err != nil && !errors.Is(err, repository.ErrTaxiNotFound) {
				return nil, err
			}
			detail.Taxi = taxi
		}
	}
	return detail, nil
}

// Create persists a booking for the caller after confirming the
// referenced resource exists. A dangling reference surfaces as a
// validation error, not a 404, because the row was never created.
func (s *BookingService) Create(ctx context.Context, identity auth.Identity, input *validate.BookingInput) (*domain.Booking, error) {
	switch input.BookingType {
	case domain.BookingTypeHotel:
		if _, err := s.hotels.GetByID(ctx, *input.HotelID); err != nil {
			if errors.Is(err, repository.ErrHotelNotFound) {
				return nil, &validate.Error{Code: "INVALID_HOTEL_ID", Message: "Hotel not found with the provided hotel_id"}
			}
			return nil, err
		}
	case domain.BookingTypeFlight:
		if _, err := s.flights.GetByID(ctx, *input.FlightID); err != nil {
			if errors.Is(err, repository.ErrFlightNotFound) {
				return nil, &validate.Error{Code: "INVALID_FLIGHT_ID", Message: "Flight not found with the provided flight_id"}
			}
			return nil, err
		}
	case domain.BookingTypeTaxi:
		if _, err := s.taxis.GetByID(ctx, *input.TaxiID); err != nil {
			if errors.Is(err, repository.ErrTaxiNotFound) {
				return nil, &validate.Error{Code: "INVALID_TAXI_ID", Message: "Taxi not found with the provided taxi_id"}
			}
			return nil, err
		}
	}

	booking := &domain.Booking{
		BookingType:     input.BookingType,
		HotelID:         input.HotelID,
		FlightID:        input.FlightID,
		TaxiID:          input.TaxiID,
		UserID:          identity.UserID,
		CheckIn:         input.CheckIn,
		CheckOut:        input.CheckOut,
		Guests:          input.Guests,
		Passengers:      input.Passengers,
		PickupLocation:  input.PickupLocation,
		DropLocation:    input.DropLocation,
		Distance:        input.Distance,
		FullName:        input.FullName,
		Email:           input.Email,
		Phone:           input.Phone,
		SpecialRequests: input.SpecialRequests,
		Status:          input.Status,
		Subtotal:        input.Subtotal,
		Taxes:           input.Taxes,
		TotalPrice:      input.TotalPrice,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "booking_created", booking)
	return booking, nil
}

func (s *BookingService) Update(ctx context.Context, id int64, upd repository.BookingUpdate) (*domain.Booking, error) {
	booking, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, "booking_updated", booking)
	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, identity auth.Identity, id int64) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != identity.UserID && !identity.IsAdmin() {
		return nil, ErrNotOwner
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, "booking_cancelled", deleted)
	return deleted, nil
}

// publishEvent emits the booking event to both the analytics and the
// notification topics. Delivery failures are logged and do not fail the
// request.
func (s *BookingService) publishEvent(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil {
		return
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		BookingID:   booking.ID,
		BookingType: string(booking.BookingType),
		UserID:      booking.UserID,
		Email:       booking.Email,
		Status:      string(booking.Status),
		TotalPrice:  booking.TotalPrice,
		CreatedAt:   time.Now().UTC(),
	}
	key := strconv.FormatInt(booking.ID, 10)
	for _, topic := range []string{s.topics.Bookings, s.topics.Notifications} {
		if topic == "" {
			continue
		}
		if err := s.producer.Publish(ctx, topic, key, event); err != nil {
			log.Printf("failed to publish %s event for booking %d to %s: %v", eventType, booking.ID, topic, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
