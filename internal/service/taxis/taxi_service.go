package taxis

import (
	"context"

	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/Domenick1991/travelbook/internal/repository"
)

type TaxiUseCase interface {
	List(ctx context.Context, filter repository.TaxiFilter) ([]domain.Taxi, error)
	GetByID(ctx context.Context, id int64) (*domain.Taxi, error)
	Create(ctx context.Context, taxi *domain.Taxi) error
	Update(ctx context.Context, id int64, upd repository.TaxiUpdate) (*domain.Taxi, error)
	Delete(ctx context.Context, id int64) (*domain.Taxi, error)
}

type Cache interface {
	GetTaxis(ctx context.Context) ([]domain.Taxi, error)
	SetTaxis(ctx context.Context, taxis []domain.Taxi) error
	InvalidateTaxis(ctx context.Context) error
}

type TaxiService struct {
	repo  repository.TaxiRepository
	cache Cache
}

func NewTaxiService(repo repository.TaxiRepository, cache Cache) *TaxiService {
	return &TaxiService{repo: repo, cache: cache}
}

func (s *TaxiService) List(ctx context.Context, filter repository.TaxiFilter) ([]domain.Taxi, error) {
	if filter.IsDefault() && s.cache != nil {
		if cached, err := s.cache.GetTaxis(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	taxis, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter.IsDefault() && s.cache != nil {
		_ = s.cache.SetTaxis(ctx, taxis)
	}
	return taxis, nil
}

func (s *TaxiService) GetByID(ctx context.Context, id int64) (*domain.Taxi, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TaxiService) Create(ctx context.Context, taxi *domain.Taxi) error {
	if err := s.repo.Create(ctx, taxi); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateTaxis(ctx)
	}
	return nil
}

func (s *TaxiService) Update(ctx context.Context, id int64, upd repository.TaxiUpdate) (*domain.Taxi, error) {
	taxi, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateTaxis(ctx)
	}
	return taxi, nil
}

func (s *TaxiService) Delete(ctx context.Context, id int64) (*domain.Taxi, error) {
	taxi, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateTaxis(ctx)
	}
	return taxi, nil
}

var _ TaxiUseCase = (*TaxiService)(nil)
