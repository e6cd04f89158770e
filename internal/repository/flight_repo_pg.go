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

type FlightFilter struct {
	MinPrice *int
	MaxPrice *int
	From     string
	To       string
	Date     string
	Class    string
	Stops    string
	SortBy   string
}

func (f FlightFilter) IsDefault() bool {
	return f.MinPrice == nil && f.MaxPrice == nil && f.From == "" && f.To == "" &&
		f.Date == "" && f.Class == "" && f.Stops == "" &&
		(f.SortBy == "" || f.SortBy == SortRecommended)
}

type FlightUpdate struct {
	Airline        *string
	FlightNumber   *string
	FromLocation   *string
	ToLocation     *string
	Departure      *string
	Arrival        *string
	Duration       *string
	Stops          *string
	Price          *int
	Class          *string
	Date           *string
	AvailableSeats *int
}

type FlightRepository interface {
	List(ctx context.Context, filter FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, id int64, upd FlightUpdate) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) (*domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = "id, airline, flight_number, from_location, to_location, departure, arrival, duration, stops, price, class, date, available_seats, created_at"

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.Airline, &f.FlightNumber, &f.FromLocation, &f.ToLocation, &f.Departure, &f.Arrival, &f.Duration, &f.Stops, &f.Price, &f.Class, &f.Date, &f.AvailableSeats, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) List(ctx context.Context, filter FlightFilter) ([]domain.Flight, error) {
	var (
		conds []string
		args  []any
	)
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}
	if filter.From != "" {
		args = append(args, "%"+filter.From+"%")
		conds = append(conds, fmt.Sprintf("from_location ILIKE $%d", len(args)))
	}
	if filter.To != "" {
		args = append(args, "%"+filter.To+"%")
		conds = append(conds, fmt.Sprintf("to_location ILIKE $%d", len(args)))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		conds = append(conds, fmt.Sprintf("date = $%d", len(args)))
	}
	if filter.Class != "" {
		args = append(args, filter.Class)
		conds = append(conds, fmt.Sprintf("class = $%d", len(args)))
	}
	if filter.Stops != "" {
		args = append(args, filter.Stops)
		conds = append(conds, fmt.Sprintf("stops = $%d", len(args)))
	}

	query := "SELECT " + flightColumns + " FROM flights"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	switch filter.SortBy {
	case SortPriceLow:
		query += " ORDER BY price ASC"
	case SortPriceHigh:
		query += " ORDER BY price DESC"
	case SortDuration:
		query += " ORDER BY duration ASC"
	default:
		query += " ORDER BY available_seats DESC, price ASC"
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	f, err := scanFlight(r.db.QueryRow(ctx, "SELECT "+flightColumns+" FROM flights WHERE id=$1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFlightNotFound
	}
	return f, err
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	return r.db.QueryRow(ctx, `INSERT INTO flights (airline, flight_number, from_location, to_location, departure, arrival, duration, stops, price, class, date, available_seats)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`,
		flight.Airline, flight.FlightNumber, flight.FromLocation, flight.ToLocation, flight.Departure, flight.Arrival, flight.Duration, flight.Stops, flight.Price, flight.Class, flight.Date, flight.AvailableSeats).
		Scan(&flight.ID, &flight.CreatedAt)
}

func (r *PGFlightRepository) Update(ctx context.Context, id int64, upd FlightUpdate) (*domain.Flight, error) {
	var (
		sets []string
		args []any
	)
	set := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Airline != nil {
		set("airline", *upd.Airline)
	}
	if upd.FlightNumber != nil {
		set("flight_number", *upd.FlightNumber)
	}
	if upd.FromLocation != nil {
		set("from_location", *upd.FromLocation)
	}
	if upd.ToLocation != nil {
		set("to_location", *upd.ToLocation)
	}
	if upd.Departure != nil {
		set("departure", *upd.Departure)
	}
	if upd.Arrival != nil {
		set("arrival", *upd.Arrival)
	}
	if upd.Duration != nil {
		set("duration", *upd.Duration)
	}
	if upd.Stops != nil {
		set("stops", *upd.Stops)
	}
	if upd.Price != nil {
		set("price", *upd.Price)
	}
	if upd.Class != nil {
		set("class", *upd.Class)
	}
	if upd.Date != nil {
		set("date", *upd.Date)
	}
	if upd.AvailableSeats != nil {
		set("available_seats", *upd.AvailableSeats)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE flights SET %s WHERE id = $%d RETURNING %s", strings.Join(sets, ", "), len(args), flightColumns)
	f, err := scanFlight(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFlightNotFound
	}
	return f, err
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) (*domain.Flight, error) {
	f, err := scanFlight(r.db.QueryRow(ctx, "DELETE FROM flights WHERE id=$1 RETURNING "+flightColumns, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFlightNotFound
	}
	return f, err
}

var _ FlightRepository = (*PGFlightRepository)(nil)
