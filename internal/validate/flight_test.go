package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validFlightBody() map[string]any {
	return map[string]any{
		"airline":        "IndiGo",
		"flightNumber":   "6E-204",
		"fromLocation":   "Mumbai",
		"toLocation":     "Delhi",
		"departure":      "06:10",
		"arrival":        "08:20",
		"duration":       "2h 10m",
		"stops":          "Non-stop",
		"class":          "Economy",
		"date":           "2026-09-15",
		"price":          float64(4599),
		"availableSeats": float64(112),
	}
}

func TestFlightCreate_ok(t *testing.T) {
	flight, verr := FlightCreate(validFlightBody())
	assert.Nil(t, verr)
	assert.Equal(t, "6E-204", flight.FlightNumber)
	assert.Equal(t, 4599, flight.Price)
	assert.Equal(t, 112, flight.AvailableSeats)
}

func TestFlightCreate_missingFieldsInOrder(t *testing.T) {
	// airline is checked before flightNumber even when both are absent
	body := validFlightBody()
	delete(body, "airline")
	delete(body, "flightNumber")

	_, verr := FlightCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "MISSING_AIRLINE", verr.Code)

	body = validFlightBody()
	delete(body, "flightNumber")
	_, verr = FlightCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "MISSING_FLIGHT_NUMBER", verr.Code)
}

func TestFlightCreate_blankStringIsMissing(t *testing.T) {
	body := validFlightBody()
	body["stops"] = "  "

	_, verr := FlightCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "MISSING_STOPS", verr.Code)
}

func TestFlightCreate_invalidPrice(t *testing.T) {
	for _, price := range []any{float64(0), float64(-1), "4599"} {
		body := validFlightBody()
		body["price"] = price
		_, verr := FlightCreate(body)
		assert.NotNil(t, verr)
		assert.Equal(t, "INVALID_PRICE", verr.Code)
	}
}

func TestFlightCreate_availableSeatsDefault(t *testing.T) {
	body := validFlightBody()
	delete(body, "availableSeats")

	flight, verr := FlightCreate(body)
	assert.Nil(t, verr)
	assert.Equal(t, 150, flight.AvailableSeats)
}

func TestFlightCreate_negativeSeatsRejected(t *testing.T) {
	body := validFlightBody()
	body["availableSeats"] = float64(-5)

	_, verr := FlightCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_AVAILABLE_SEATS", verr.Code)
}

func TestFlightPatch_partial(t *testing.T) {
	upd, verr := FlightPatch(map[string]any{"class": "Business", "price": float64(7000)})
	assert.Nil(t, verr)
	assert.Equal(t, "Business", *upd.Class)
	assert.Equal(t, 7000, *upd.Price)
	assert.Nil(t, upd.Airline)
}

func TestFlightPatch_emptyStringRejected(t *testing.T) {
	_, verr := FlightPatch(map[string]any{"airline": ""})
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_AIRLINE", verr.Code)
}
