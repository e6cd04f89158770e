package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/Domenick1991/travelbook/internal/repository"
	"github.com/Domenick1991/travelbook/internal/service/hotels"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockHotelUseCase struct {
	mock.Mock
}

func (m *MockHotelUseCase) List(ctx context.Context, opts hotels.ListOptions) ([]domain.Hotel, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelUseCase) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelUseCase) Create(ctx context.Context, hotel *domain.Hotel) error {
	args := m.Called(ctx, hotel)
	return args.Error(0)
}

func (m *MockHotelUseCase) Update(ctx context.Context, id int64, upd repository.HotelUpdate) (*domain.Hotel, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelUseCase) Delete(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHotelHandler_list(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewHotelHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/hotels", nil)

	result := []domain.Hotel{{ID: 1, Name: "Grand Plaza", Rating: 4.7}}
	mockService.On("List", c.Request.Context(), hotels.ListOptions{}).Return(result, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestHotelHandler_listWithFilters(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewHotelHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/hotels?minPrice=1000&sortBy=price-low&amenities=WiFi,Pool", nil)

	minPrice := 1000
	expected := hotels.ListOptions{
		HotelFilter: repository.HotelFilter{MinPrice: &minPrice, SortBy: "price-low"},
		Amenities:   []string{"WiFi", "Pool"},
	}
	mockService.On("List", c.Request.Context(), expected).Return([]domain.Hotel{}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestHotelHandler_listInvalidID(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewHotelHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/hotels?id=abc", nil)

	handler.list(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", errorBody(t, w)["code"])
	mockService.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestHotelHandler_listByIDNotFound(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewHotelHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/hotels?id=99", nil)

	mockService.On("GetByID", c.Request.Context(), int64(99)).Return(nil, repository.ErrHotelNotFound)

	handler.list(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorBody(t, w)["code"])
}

func TestHotelHandler_getByIDNotFound(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewHotelHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	c.Request = httptest.NewRequest("GET", "/api/hotels/99", nil)

	mockService.On("GetByID", c.Request.Context(), int64(99)).Return(nil, repository.ErrHotelNotFound)

	handler.getByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	// the path route uses the resource-specific code
	assert.Equal(t, "HOTEL_NOT_FOUND", errorBody(t, w)["code"])
}

func TestHotelHandler_createValidationError(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewHotelHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/hotels", strings.NewReader(`{"name":"X"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_REQUIRED_FIELDS", errorBody(t, w)["code"])
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHotelHandler_create(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewHotelHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"name":"Grand Plaza","location":"Mumbai","address":"12 Marine Drive","rating":4.7,"reviews":120,"price":8500,"images":["a.jpg"],"amenities":["WiFi"],"roomType":"Deluxe","description":"Seafront"}`
	c.Request = httptest.NewRequest("POST", "/api/hotels", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Create", c.Request.Context(), mock.AnythingOfType("*domain.Hotel")).Return(nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestHotelHandler_delete(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewHotelHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/api/hotels?id=1", nil)

	mockService.On("Delete", c.Request.Context(), int64(1)).Return(&domain.Hotel{ID: 1, Name: "Grand Plaza"}, nil)

	handler.delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Hotel deleted successfully", body["message"])
	assert.NotNil(t, body["hotel"])
}

func TestHotelHandler_internalError(t *testing.T) {
	mockService := &MockHotelUseCase{}
	handler := NewHotelHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/hotels", nil)

	mockService.On("List", c.Request.Context(), hotels.ListOptions{}).Return([]domain.Hotel{}, assert.AnError)

	handler.list(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, errorBody(t, w)["error"], "Internal server error: ")
}
