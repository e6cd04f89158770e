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

type HotelFilter struct {
	MinPrice  *int
	MaxPrice  *int
	MinRating *float64
	RoomType  string
	SortBy    string
}

// IsDefault reports whether the filter selects the full list in the
// default order, which is the only shape served from cache.
func (f HotelFilter) IsDefault() bool {
	return f.MinPrice == nil && f.MaxPrice == nil && f.MinRating == nil &&
		f.RoomType == "" && (f.SortBy == "" || f.SortBy == SortRecommended)
}

type HotelUpdate struct {
	Name        *string
	Location    *string
	Address     *string
	Rating      *float64
	Reviews     *int
	Price       *int
	Images      *[]string
	Amenities   *[]string
	RoomType    *string
	Description *string
}

type HotelRepository interface {
	List(ctx context.Context, filter HotelFilter) ([]domain.Hotel, error)
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	Create(ctx context.Context, hotel *domain.Hotel) error
	Update(ctx context.Context, id int64, upd HotelUpdate) (*domain.Hotel, error)
	Delete(ctx context.Context, id int64) (*domain.Hotel, error)
}

type PGHotelRepository struct {
	db *pgxpool.Pool
}

func NewHotelRepository(db *pgxpool.Pool) HotelRepository {
	return &PGHotelRepository{db: db}
}

const hotelColumns = "id, name, location, address, rating, reviews, price, images, amenities, room_type, description, created_at"

func scanHotel(row pgx.Row) (*domain.Hotel, error) {
	var h domain.Hotel
	var images, amenities string
	if err := row.Scan(&h.ID, &h.Name, &h.Location, &h.Address, &h.Rating, &h.Reviews, &h.Price, &images, &amenities, &h.RoomType, &h.Description, &h.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(images), &h.Images); err != nil {
		return nil, fmt.Errorf("decode images: %w", err)
	}
	if err := json.Unmarshal([]byte(amenities), &h.Amenities); err != nil {
		return nil, fmt.Errorf("decode amenities: %w", err)
	}
	return &h, nil
}

func (r *PGHotelRepository) List(ctx context.Context, filter HotelFilter) ([]domain.Hotel, error) {
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
	if filter.MinRating != nil {
		args = append(args, *filter.MinRating)
		conds = append(conds, fmt.Sprintf("rating >= $%d", len(args)))
	}
	if filter.RoomType != "" {
		args = append(args, filter.RoomType)
		conds = append(conds, fmt.Sprintf("room_type = $%d", len(args)))
	}

	query := "SELECT " + hotelColumns + " FROM hotels"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	switch filter.SortBy {
	case SortPriceLow:
		query += " ORDER BY price ASC"
	case SortPriceHigh:
		query += " ORDER BY price DESC"
	case SortRating:
		query += " ORDER BY rating DESC"
	default:
		query += " ORDER BY rating DESC, price ASC"
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := make([]domain.Hotel, 0)
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, *h)
	}
	return hotels, rows.Err()
}

func (r *PGHotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	row := r.db.QueryRow(ctx, "SELECT "+hotelColumns+" FROM hotels WHERE id=$1", id)
	h, err := scanHotel(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrHotelNotFound
	}
	return h, err
}

func (r *PGHotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	images, err := json.Marshal(hotel.Images)
	if err != nil {
		return err
	}
	amenities, err := json.Marshal(hotel.Amenities)
	if err != nil {
		return err
	}
	return r.db.QueryRow(ctx, `INSERT INTO hotels (name, location, address, rating, reviews, price, images, amenities, room_type, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		hotel.Name, hotel.Location, hotel.Address, hotel.Rating, hotel.Reviews, hotel.Price, string(images), string(amenities), hotel.RoomType, hotel.Description).
		Scan(&hotel.ID, &hotel.CreatedAt)
}

func (r *PGHotelRepository) Update(ctx context.Context, id int64, upd HotelUpdate) (*domain.Hotel, error) {
	var (
		sets []string
		args []any
	)
	set := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Name != nil {
		set("name", *upd.Name)
	}
	if upd.Location != nil {
		set("location", *upd.Location)
	}
	if upd.Address != nil {
		set("address", *upd.Address)
	}
	if upd.Rating != nil {
		set("rating", *upd.Rating)
	}
	if upd.Reviews != nil {
		set("reviews", *upd.Reviews)
	}
	if upd.Price != nil {
		set("price", *upd.Price)
	}
	if upd.Images != nil {
		data, err := json.Marshal(*upd.Images)
		if err != nil {
			return nil, err
		}
		set("images", string(data))
	}
	if upd.Amenities != nil {
		data, err := json.Marshal(*upd.Amenities)
		if err != nil {
			return nil, err
		}
		set("amenities", string(data))
	}
	if upd.RoomType != nil {
		set("room_type", *upd.RoomType)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE hotels SET %s WHERE id = $%d RETURNING %s", strings.Join(sets, ", "), len(args), hotelColumns)
	h, err := scanHotel(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrHotelNotFound
	}
	return h, err
}

func (r *PGHotelRepository) Delete(ctx context.Context, id int64) (*domain.Hotel, error) {
	h, err := scanHotel(r.db.QueryRow(ctx, "DELETE FROM hotels WHERE id=$1 RETURNING "+hotelColumns, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrHotelNotFound
	}
	return h, err
}

var _ HotelRepository = (*PGHotelRepository)(nil)
