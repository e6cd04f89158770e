package hotels

import (
	"context"
	"testing"

	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/Domenick1991/travelbook/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) List(ctx context.Context, filter repository.HotelFilter) ([]domain.Hotel, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	args := m.Called(ctx, hotel)
	return args.Error(0)
}

func (m *MockHotelRepository) Update(ctx context.Context, id int64, upd repository.HotelUpdate) (*domain.Hotel, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) Delete(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetHotels(ctx context.Context) ([]domain.Hotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockCache) SetHotels(ctx context.Context, hotels []domain.Hotel) error {
	args := m.Called(ctx, hotels)
	return args.Error(0)
}

func (m *MockCache) InvalidateHotels(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestList_cacheHit(t *testing.T) {
	repo := &MockHotelRepository{}
	cache := &MockCache{}
	svc := NewHotelService(repo, cache)
	ctx := context.Background()

	cached := []domain.Hotel{{ID: 1, Name: "Grand Plaza"}}
	cache.On("GetHotels", ctx).Return(cached, nil)

	result, err := svc.List(ctx, ListOptions{})
	assert.NoError(t, err)
	assert.Equal(t, cached, result)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestList_cacheMissFillsCache(t *testing.T) {
	repo := &MockHotelRepository{}
	cache := &MockCache{}
	svc := NewHotelService(repo, cache)
	ctx := context.Background()

	hotels := []domain.Hotel{{ID: 1}, {ID: 2}}
	cache.On("GetHotels", ctx).Return(nil, nil)
	repo.On("List", ctx, repository.HotelFilter{}).Return(hotels, nil)
	cache.On("SetHotels", ctx, hotels).Return(nil)

	result, err := svc.List(ctx, ListOptions{})
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	cache.AssertExpectations(t)
}

func TestList_filteredQueriesBypassCache(t *testing.T) {
	repo := &MockHotelRepository{}
	cache := &MockCache{}
	svc := NewHotelService(repo, cache)
	ctx := context.Background()

	minPrice := 1000
	filter := repository.HotelFilter{MinPrice: &minPrice}
	repo.On("List", ctx, filter).Return([]domain.Hotel{{ID: 1}}, nil)

	_, err := svc.List(ctx, ListOptions{HotelFilter: filter})
	assert.NoError(t, err)
	cache.AssertNotCalled(t, "GetHotels", mock.Anything)
	cache.AssertNotCalled(t, "SetHotels", mock.Anything, mock.Anything)
}

func TestList_amenityMatchAllCaseInsensitive(t *testing.T) {
	repo := &MockHotelRepository{}
	svc := NewHotelService(repo, nil)
	ctx := context.Background()

	hotels := []domain.Hotel{
		{ID: 1, Amenities: []string{"WiFi", "Pool", "Spa"}},
		{ID: 2, Amenities: []string{"WiFi"}},
		{ID: 3, Amenities: []string{"wifi", "pool"}},
	}
	repo.On("List", ctx, repository.HotelFilter{}).Return(hotels, nil)

	result, err := svc.List(ctx, ListOptions{Amenities: []string{"WIFI", "Pool"}})
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, int64(3), result[1].ID)
}

func TestCreate_invalidatesCache(t *testing.T) {
	repo := &MockHotelRepository{}
	cache := &MockCache{}
	svc := NewHotelService(repo, cache)
	ctx := context.Background()

	hotel := &domain.Hotel{Name: "New Hotel"}
	repo.On("Create", ctx, hotel).Return(nil)
	cache.On("InvalidateHotels", ctx).Return(nil)

	assert.NoError(t, svc.Create(ctx, hotel))
	cache.AssertExpectations(t)
}

func TestUpdate_notFoundSkipsInvalidation(t *testing.T) {
	repo := &MockHotelRepository{}
	cache := &MockCache{}
	svc := NewHotelService(repo, cache)
	ctx := context.Background()

	repo.On("Update", ctx, int64(9), repository.HotelUpdate{}).Return(nil, repository.ErrHotelNotFound)

	_, err := svc.Update(ctx, 9, repository.HotelUpdate{})
	assert.ErrorIs(t, err, repository.ErrHotelNotFound)
	cache.AssertNotCalled(t, "InvalidateHotels", mock.Anything)
}

func TestDelete_invalidatesCache(t *testing.T) {
	repo := &MockHotelRepository{}
	cache := &MockCache{}
	svc := NewHotelService(repo, cache)
	ctx := context.Background()

	repo.On("Delete", ctx, int64(1)).Return(&domain.Hotel{ID: 1}, nil)
	cache.On("InvalidateHotels", ctx).Return(nil)

	hotel, err := svc.Delete(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), hotel.ID)
	cache.AssertExpectations(t)
}
