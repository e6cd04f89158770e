package hotels

import (
	"context"
	"strings"

	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/Domenick1991/travelbook/internal/repository"
)

type HotelUseCase interface {
	List(ctx context.Context, opts ListOptions) ([]domain.Hotel, error)
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	Create(ctx context.Context, hotel *domain.Hotel) error
	Update(ctx context.Context, id int64, upd repository.HotelUpdate) (*domain.Hotel, error)
	Delete(ctx context.Context, id int64) (*domain.Hotel, error)
}

type Cache interface {
	GetHotels(ctx context.Context) ([]domain.Hotel, error)
	SetHotels(ctx context.Context, hotels []domain.Hotel) error
	InvalidateHotels(ctx context.Context) error
}

// ListOptions extends the repository filter with the amenity match, which
// is applied in memory because amenities persist as JSON text.
type ListOptions struct {
	repository.HotelFilter
	Amenities []string
}

type HotelService struct {
	repo  repository.HotelRepository
	cache Cache
}

func NewHotelService(repo repository.HotelRepository, cache Cache) *HotelService {
	return &HotelService{repo: repo, cache: cache}
}

func (s *HotelService) List(ctx context.Context, opts ListOptions) ([]domain.Hotel, error) {
	cacheable := opts.IsDefault() && len(opts.Amenities) == 0

	if cacheable && s.cache != nil {
		if cached, err := s.cache.GetHotels(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	hotels, err := s.repo.List(ctx, opts.HotelFilter)
	if err != nil {
		return nil, err
	}

	if len(opts.Amenities) > 0 {
		hotels = filterByAmenities(hotels, opts.Amenities)
	}

	if cacheable && s.cache != nil {
		_ = s.cache.SetHotels(ctx, hotels)
	}
	return hotels, nil
}

// filterByAmenities keeps hotels offering every requested amenity,
// compared case-insensitively.
func filterByAmenities(hotels []domain.Hotel, wanted []string) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if hasAllAmenities(h.Amenities, wanted) {
			out = append(out, h)
		}
	}
	return out
}

func hasAllAmenities(have, wanted []string) bool {
	for _, w := range wanted {
		found := false
		for _, a := range have {
			if strings.EqualFold(a, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (s *HotelService) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *HotelService) Create(ctx context.Context, hotel *domain.Hotel) error {
	if err := s.repo.Create(ctx, hotel); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateHotels(ctx)
	}
	return nil
}

func (s *HotelService) Update(ctx context.Context, id int64, upd repository.HotelUpdate) (*domain.Hotel, error) {
	hotel, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateHotels(ctx)
	}
	return hotel, nil
}

func (s *HotelService) Delete(ctx context.Context, id int64) (*domain.Hotel, error) {
	hotel, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateHotels(ctx)
	}
	return hotel, nil
}

var _ HotelUseCase = (*HotelService)(nil)
