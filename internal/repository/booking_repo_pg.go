package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingUpdate struct {
	CheckIn         *string
	CheckOut        *string
	Guests          *int
	Passengers      *int
	PickupLocation  *string
	DropLocation    *string
	Distance        *int
	FullName        *string
	Email           *string
	Phone           *string
	SpecialRequests *string
	Status          *domain.BookingStatus
	Subtotal        *float64
	Taxes           *float64
	TotalPrice      *float64
}

type BookingRepository interface {
	ListAll(ctx context.Context) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) error
	Update(ctx context.Context, id int64, upd BookingUpdate) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = "id, booking_type, hotel_id, flight_id, taxi_id, user_id, check_in, check_out, guests, passengers, pickup_location, drop_location, distance, full_name, email, phone, special_requests, status, subtotal, taxes, total_price, created_at"

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.BookingType, &b.HotelID, &b.FlightID, &b.TaxiID, &b.UserID, &b.CheckIn, &b.CheckOut, &b.Guests, &b.Passengers, &b.PickupLocation, &b.DropLocation, &b.Distance, &b.FullName, &b.Email, &b.Phone, &b.SpecialRequests, &b.Status, &b.Subtotal, &b.Taxes, &b.TotalPrice, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) list(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return r.list(ctx, "SELECT "+bookingColumns+" FROM bookings ORDER BY created_at DESC")
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return r.list(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE user_id=$1 ORDER BY created_at DESC", userID)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE id=$1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return r.db.QueryRow(ctx, `INSERT INTO bookings (booking_type, hotel_id, flight_id, taxi_id, user_id, check_in, check_out, guests, passengers, pickup_location, drop_location, distance, full_name, email, phone, special_requests, status, subtotal, taxes, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id, created_at`,
		booking.BookingType, booking.HotelID, booking.FlightID, booking.TaxiID, booking.UserID,
		booking.CheckIn, booking.CheckOut, booking.Guests, booking.Passengers,
		booking.PickupLocation, booking.DropLocation, booking.Distance,
		booking.FullName, booking.Email, booking.Phone, booking.SpecialRequests,
		booking.Status, booking.Subtotal, booking.Taxes, booking.TotalPrice).
		Scan(&booking.ID, &booking.CreatedAt)
}

func (r *PGBookingRepository) Update(ctx context.Context, id int64, upd BookingUpdate) (*domain.Booking, error) {
	var (
		sets []string
		args []any
	)
	set := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.CheckIn != nil {
		set("check_in", *upd.CheckIn)
	}
	if upd.CheckOut != nil {
		set("check_out", *upd.CheckOut)
	}
	if upd.Guests != nil {
		set("guests", *upd.Guests)
	}
	if upd.Passengers != nil {
		set("passengers", *upd.Passengers)
	}
	if upd.PickupLocation != nil {
		set("pickup_location", *upd.PickupLocation)
	}
	if upd.DropLocation != nil {
		set("drop_location", *upd.DropLocation)
	}
	if upd.Distance != nil {
		set("distance", *upd.Distance)
	}
	if upd.FullName != nil {
		set("full_name", *upd.FullName)
	}
	if upd.Email != nil {
		set("email", *upd.Email)
	}
	if upd.Phone != nil {
		set("phone", *upd.Phone)
	}
	if upd.SpecialRequests != nil {
		set("special_requests", *upd.SpecialRequests)
	}
	if upd.Status != nil {
		set("status", *upd.Status)
	}
	if upd.Subtotal != nil {
		set("subtotal", *upd.Subtotal)
	}
	if upd.Taxes != nil {
		set("taxes", *upd.Taxes)
	}
	if upd.TotalPrice != nil {
		set("total_price", *upd.TotalPrice)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE bookings SET %s WHERE id = $%d RETURNING %s", strings.Join(sets, ", "), len(args), bookingColumns)
	b, err := scanBooking(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

func (r *PGBookingRepository) Delete(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, "DELETE FROM bookings WHERE id=$1 RETURNING "+bookingColumns, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

var _ BookingRepository = (*PGBookingRepository)(nil)
