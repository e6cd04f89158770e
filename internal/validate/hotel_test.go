package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validHotelBody() map[string]any {
	return map[string]any{
		"name":        "Grand Plaza",
		"location":    "Mumbai",
		"address":     "12 Marine Drive",
		"rating":      4.7,
		"reviews":     float64(120),
		"price":       float64(8500),
		"images":      []any{"a.jpg"},
		"amenities":   []any{"WiFi", "Pool"},
		"roomType":    "Deluxe",
		"description": "Seafront hotel",
	}
}

func TestHotelCreate_ok(t *testing.T) {
	hotel, verr := HotelCreate(validHotelBody())
	assert.Nil(t, verr)
	assert.Equal(t, "Grand Plaza", hotel.Name)
	assert.Equal(t, 8500, hotel.Price)
	assert.Equal(t, 120, hotel.Reviews)
	assert.Equal(t, []string{"WiFi", "Pool"}, hotel.Amenities)
}

func TestHotelCreate_missingFieldsSweep(t *testing.T) {
	body := validHotelBody()
	delete(body, "name")
	delete(body, "price")

	_, verr := HotelCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "MISSING_REQUIRED_FIELDS", verr.Code)
	assert.Contains(t, verr.Message, "name")
	assert.Contains(t, verr.Message, "price")
}

func TestHotelCreate_ratingBounds(t *testing.T) {
	for _, rating := range []float64{-0.1, 5.1} {
		body := validHotelBody()
		body["rating"] = rating
		_, verr := HotelCreate(body)
		assert.NotNil(t, verr)
		assert.Equal(t, "INVALID_RATING", verr.Code)
	}

	// boundaries are inclusive
	for _, rating := range []float64{0, 5} {
		body := validHotelBody()
		body["rating"] = rating
		_, verr := HotelCreate(body)
		assert.Nil(t, verr)
	}
}

func TestHotelCreate_priceMustBePositiveInteger(t *testing.T) {
	for _, price := range []any{float64(0), float64(-10), 10.5, "3000"} {
		body := validHotelBody()
		body["price"] = price
		_, verr := HotelCreate(body)
		assert.NotNil(t, verr)
		assert.Equal(t, "INVALID_PRICE", verr.Code)
	}
}

func TestHotelCreate_ratingCheckedBeforePrice(t *testing.T) {
	body := validHotelBody()
	body["rating"] = 9.0
	body["price"] = float64(-1)

	_, verr := HotelCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_RATING", verr.Code)
}

func TestHotelCreate_emptyArraysAllowed(t *testing.T) {
	body := validHotelBody()
	body["images"] = []any{}
	body["amenities"] = []any{}

	hotel, verr := HotelCreate(body)
	assert.Nil(t, verr)
	assert.Empty(t, hotel.Images)
	assert.Empty(t, hotel.Amenities)
}

func TestHotelCreate_imagesMustBeStringArray(t *testing.T) {
	body := validHotelBody()
	body["images"] = []any{"a.jpg", float64(5)}

	_, verr := HotelCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_IMAGES", verr.Code)
}

func TestHotelCreate_blankStringsRejected(t *testing.T) {
	body := validHotelBody()
	body["description"] = "   "

	_, verr := HotelCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_DESCRIPTION", verr.Code)
}

func TestHotelPatch_onlyProvidedFieldsChecked(t *testing.T) {
	upd, verr := HotelPatch(map[string]any{"price": float64(4200)})
	assert.Nil(t, verr)
	assert.NotNil(t, upd.Price)
	assert.Equal(t, 4200, *upd.Price)
	assert.Nil(t, upd.Name)
	assert.Nil(t, upd.Rating)
}

func TestHotelPatch_invalidProvidedField(t *testing.T) {
	_, verr := HotelPatch(map[string]any{"rating": 7.2})
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_RATING", verr.Code)
}
