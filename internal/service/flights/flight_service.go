package flights

import (
	"context"

	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/Domenick1991/travelbook/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context, filter repository.FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, id int64, upd repository.FlightUpdate) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) (*domain.Flight, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) List(ctx context.Context, filter repository.FlightFilter) ([]domain.Flight, error) {
	if filter.IsDefault() && s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter.IsDefault() && s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, flight *domain.Flight) error {
	if err := s.repo.Create(ctx, flight); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	return nil
}

func (s *FlightService) Update(ctx context.Context, id int64, upd repository.FlightUpdate) (*domain.Flight, error) {
	flight, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	return flight, nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) (*domain.Flight, error) {
	flight, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	return flight, nil
}

var _ FlightUseCase = (*FlightService)(nil)
