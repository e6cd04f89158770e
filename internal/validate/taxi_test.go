package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTaxiBody() map[string]any {
	return map[string]any{
		"type":       "Sedan",
		"model":      "Toyota Camry",
		"capacity":   float64(4),
		"luggage":    float64(3),
		"pricePerKm": float64(18),
		"features":   []any{"AC", "Music"},
		"rating":     4.5,
		"totalTrips": float64(842),
		"available":  true,
	}
}

func TestTaxiCreate_ok(t *testing.T) {
	taxi, verr := TaxiCreate(validTaxiBody())
	assert.Nil(t, verr)
	assert.Equal(t, "Sedan", taxi.Type)
	assert.Equal(t, 18, taxi.PricePerKm)
	assert.Equal(t, 842, taxi.TotalTrips)
	assert.True(t, taxi.Available)
}

func TestTaxiCreate_defaults(t *testing.T) {
	body := validTaxiBody()
	delete(body, "totalTrips")
	delete(body, "available")

	taxi, verr := TaxiCreate(body)
	assert.Nil(t, verr)
	assert.Equal(t, 0, taxi.TotalTrips)
	assert.True(t, taxi.Available)
}

func TestTaxiCreate_checkOrder(t *testing.T) {
	// type is reported before capacity when both are bad
	body := validTaxiBody()
	delete(body, "type")
	body["capacity"] = float64(-1)

	_, verr := TaxiCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_TYPE", verr.Code)
}

func TestTaxiCreate_positiveIntegers(t *testing.T) {
	cases := map[string]string{
		"capacity":   "INVALID_CAPACITY",
		"luggage":    "INVALID_LUGGAGE",
		"pricePerKm": "INVALID_PRICE_PER_KM",
	}
	for field, code := range cases {
		body := validTaxiBody()
		body[field] = float64(0)
		_, verr := TaxiCreate(body)
		assert.NotNil(t, verr)
		assert.Equal(t, code, verr.Code)

		body[field] = 2.5
		_, verr = TaxiCreate(body)
		assert.NotNil(t, verr)
		assert.Equal(t, code, verr.Code)
	}
}

func TestTaxiCreate_availableMustBeBool(t *testing.T) {
	body := validTaxiBody()
	body["available"] = "yes"

	_, verr := TaxiCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_AVAILABLE", verr.Code)
}

func TestTaxiPatch_partial(t *testing.T) {
	upd, verr := TaxiPatch(map[string]any{"available": false, "rating": 3.9})
	assert.Nil(t, verr)
	assert.False(t, *upd.Available)
	assert.Equal(t, 3.9, *upd.Rating)
	assert.Nil(t, upd.Model)
}
