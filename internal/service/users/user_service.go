package users

import (
	"context"

	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/Domenick1991/travelbook/internal/repository"
)

type UserUseCase interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, upd repository.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id string, upd repository.UserUpdate) (*domain.User, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *UserService) Delete(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.Delete(ctx, id)
}

var _ UserUseCase = (*UserService)(nil)
