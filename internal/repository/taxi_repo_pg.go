package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaxiFilter struct {
	MinPrice    *int
	MaxPrice    *int
	Type        string
	MinCapacity *int
	Available   *bool
	SortBy      string
}

func (f TaxiFilter) IsDefault() bool {
	return f.MinPrice == nil && f.MaxPrice == nil && f.Type == "" &&
		f.MinCapacity == nil && f.Available == nil &&
		(f.SortBy == "" || f.SortBy == SortRecommended)
}

type TaxiUpdate struct {
	Type       *string
	Model      *string
	Capacity   *int
	Luggage    *int
	PricePerKm *int
	Features   *[]string
	Rating     *float64
	TotalTrips *int
	Available  *bool
}

type TaxiRepository interface {
	List(ctx context.Context, filter TaxiFilter) ([]domain.Taxi, error)
	GetByID(ctx context.Context, id int64) (*domain.Taxi, error)
	Create(ctx context.Context, taxi *domain.Taxi) error
	Update(ctx context.Context, id int64, upd TaxiUpdate) (*domain.Taxi, error)
	Delete(ctx context.Context, id int64) (*domain.Taxi, error)
}

type PGTaxiRepository struct {
	db *pgxpool.Pool
}

func NewTaxiRepository(db *pgxpool.Pool) TaxiRepository {
	return &PGTaxiRepository{db: db}
}

const taxiColumns = "id, type, model, capacity, luggage, price_per_km, features, rating, total_trips, available, created_at"

func scanTaxi(row pgx.Row) (*domain.Taxi, error) {
	var t domain.Taxi
	var features string
	if err := row.Scan(&t.ID, &t.Type, &t.Model, &t.Capacity, &t.Luggage, &t.PricePerKm, &features, &t.Rating, &t.TotalTrips, &t.Available, &t.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(features), &t.Features); err != nil {
		return nil, fmt.Errorf("decode features: %w", err)
	}
	return &t, nil
}

func (r *PGTaxiRepository) List(ctx context.Context, filter TaxiFilter) ([]domain.Taxi, error) {
	var (
		conds []string
		args  []any
	)
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conds = append(conds, fmt.Sprintf("price_per_km >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conds = append(conds, fmt.Sprintf("price_per_km <= $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.MinCapacity != nil {
		args = append(args, *filter.MinCapacity)
		conds = append(conds, fmt.Sprintf("capacity >= $%d", len(args)))
	}
	if filter.Available != nil {
		args = append(args, *filter.Available)
		conds = append(conds, fmt.Sprintf("available = $%d", len(args)))
	}

	query := "SELECT " + taxiColumns + " FROM taxis"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	switch filter.SortBy {
	case SortPriceLow:
		query += " ORDER BY price_per_km ASC"
	case SortPriceHigh:
		query += " ORDER BY price_per_km DESC"
	case SortRating:
		query += " ORDER BY rating DESC"
	default:
		query += " ORDER BY rating DESC, price_per_km ASC"
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	taxis := make([]domain.Taxi, 0)
	for rows.Next() {
		t, err := scanTaxi(rows)
		if err != nil {
			return nil, err
		}
		taxis = append(taxis, *t)
	}
	return taxis, rows.Err()
}

func (r *PGTaxiRepository) GetByID(ctx context.Context, id int64) (*domain.Taxi, error) {
	t, err := scanTaxi(r.db.QueryRow(ctx, "SELECT "+taxiColumns+" FROM taxis WHERE id=$1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTaxiNotFound
	}
	return t, err
}

func (r *PGTaxiRepository) Create(ctx context.Context, taxi *domain.Taxi) error {
	features, err := json.Marshal(taxi.Features)
	if err != nil {
		return err
	}
	return r.db.QueryRow(ctx, `INSERT INTO taxis (type, model, capacity, luggage, price_per_km, features, rating, total_trips, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		taxi.Type, taxi.Model, taxi.Capacity, taxi.Luggage, taxi.PricePerKm, string(features), taxi.Rating, taxi.TotalTrips, taxi.Available).
		Scan(&taxi.ID, &taxi.CreatedAt)
}

func (r *PGTaxiRepository) Update(ctx context.Context, id int64, upd TaxiUpdate) (*domain.Taxi, error) {
	var (
		sets []string
		args []any
	)
	set := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Type != nil {
		set("type", *upd.Type)
	}
	if upd.Model != nil {
		set("model", *upd.Model)
	}
	if upd.Capacity != nil {
		set("capacity", *upd.Capacity)
	}
	if upd.Luggage != nil {
		set("luggage", *upd.Luggage)
	}
	if upd.PricePerKm != nil {
		set("price_per_km", *upd.PricePerKm)
	}
	if upd.Features != nil {
		data, err := json.Marshal(*upd.Features)
		if err != nil {
			return nil, err
		}
		set("features", string(data))
	}
	if upd.Rating != nil {
		set("rating", *upd.Rating)
	}
	if upd.TotalTrips != nil {
		set("total_trips", *upd.TotalTrips)
	}
	if upd.Available != nil {
		set("available", *upd.Available)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE taxis SET %s WHERE id = $%d RETURNING %s", strings.Join(sets, ", "), len(args), taxiColumns)
	t, err := scanTaxi(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTaxiNotFound
	}
	return t, err
}

func (r *PGTaxiRepository) Delete(ctx context.Context, id int64) (*domain.Taxi, error) {
	t, err := scanTaxi(r.db.QueryRow(ctx, "DELETE FROM taxis WHERE id=$1 RETURNING "+taxiColumns, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTaxiNotFound
	}
	return t, err
}

var _ TaxiRepository = (*PGTaxiRepository)(nil)
