package validate

import (
	"testing"

	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/stretchr/testify/assert"
)

func hotelBookingBody() map[string]any {
	return map[string]any{
		"booking_type": "hotel",
		"hotel_id":     float64(3),
		"check_in":     "2026-09-15",
		"check_out":    "2026-09-18",
		"guests":       float64(2),
		"full_name":    "Jane Traveler",
		"email":        "Jane@Example.com",
		"phone":        "+91-9000000001",
		"subtotal":     float64(25500),
		"taxes":        float64(4590),
		"total_price":  float64(30090),
	}
}

func taxiBookingBody() map[string]any {
	return map[string]any{
		"booking_type":    "taxi",
		"taxi_id":         float64(1),
		"pickup_location": "Airport T2",
		"drop_location":   "Marine Drive",
		"distance":        float64(24),
		"full_name":       "Jane Traveler",
		"email":           "jane@example.com",
		"phone":           "+91-9000000001",
		"subtotal":        float64(432),
		"taxes":           float64(78),
		"total_price":     float64(510),
	}
}

func TestBookingCreate_hotelOK(t *testing.T) {
	input, verr := BookingCreate(hotelBookingBody())
	assert.Nil(t, verr)
	assert.Equal(t, domain.BookingTypeHotel, input.BookingType)
	assert.Equal(t, int64(3), *input.HotelID)
	assert.Equal(t, 2, *input.Guests)
	assert.Equal(t, "jane@example.com", input.Email)
	assert.Equal(t, domain.BookingStatusConfirmed, input.Status)
}

func TestBookingCreate_typeCheckedFirst(t *testing.T) {
	// a bad discriminator wins over everything else being absent
	_, verr := BookingCreate(map[string]any{"booking_type": "cruise"})
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_BOOKING_TYPE", verr.Code)

	_, verr = BookingCreate(map[string]any{})
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_BOOKING_TYPE", verr.Code)
}

func TestBookingCreate_typeSpecificRequiredFields(t *testing.T) {
	body := hotelBookingBody()
	delete(body, "check_in")
	_, verr := BookingCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "MISSING_CHECK_IN", verr.Code)

	body = taxiBookingBody()
	delete(body, "distance")
	_, verr = BookingCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "MISSING_DISTANCE", verr.Code)

	flight := map[string]any{
		"booking_type": "flight",
		"flight_id":    float64(1),
	}
	_, verr = BookingCreate(flight)
	assert.NotNil(t, verr)
	assert.Equal(t, "MISSING_PASSENGERS", verr.Code)
}

func TestBookingCreate_zeroMoneyIsPresent(t *testing.T) {
	// subtotal of 0 is a provided value, not a missing field
	body := hotelBookingBody()
	body["subtotal"] = float64(0)
	body["taxes"] = float64(0)

	input, verr := BookingCreate(body)
	assert.Nil(t, verr)
	assert.Equal(t, 0.0, input.Subtotal)
}

func TestBookingCreate_missingMoney(t *testing.T) {
	body := hotelBookingBody()
	delete(body, "taxes")

	_, verr := BookingCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "MISSING_TAXES", verr.Code)
}

func TestBookingCreate_negativeMoneyRejected(t *testing.T) {
	body := hotelBookingBody()
	body["total_price"] = float64(-1)

	_, verr := BookingCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_TOTAL_PRICE", verr.Code)
}

func TestBookingCreate_invalidEmail(t *testing.T) {
	body := hotelBookingBody()
	body["email"] = "not-an-email"

	_, verr := BookingCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_EMAIL", verr.Code)
}

func TestBookingCreate_dateRange(t *testing.T) {
	body := hotelBookingBody()
	body["check_in"] = "2026-09-18"
	body["check_out"] = "2026-09-15"
	_, verr := BookingCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_DATE_RANGE", verr.Code)

	// equal dates are also rejected
	body["check_out"] = "2026-09-18"
	_, verr = BookingCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_DATE_RANGE", verr.Code)
}

func TestBookingCreate_numericStringsAccepted(t *testing.T) {
	body := hotelBookingBody()
	body["guests"] = "2"
	body["hotel_id"] = "3"
	body["subtotal"] = "25500"

	input, verr := BookingCreate(body)
	assert.Nil(t, verr)
	assert.Equal(t, 2, *input.Guests)
	assert.Equal(t, int64(3), *input.HotelID)
	assert.Equal(t, 25500.0, input.Subtotal)
}

func TestBookingCreate_moneyCheckedBeforeForeignKey(t *testing.T) {
	// a bad amount is reported even when the foreign key is also unparseable
	body := hotelBookingBody()
	body["hotel_id"] = "not-a-number"
	body["subtotal"] = float64(-5)

	_, verr := BookingCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_SUBTOTAL", verr.Code)

	body = taxiBookingBody()
	body["taxi_id"] = "nope"
	body["taxes"] = float64(-1)

	_, verr = BookingCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_TAXES", verr.Code)
}

func TestBookingCreate_invalidForeignKey(t *testing.T) {
	body := hotelBookingBody()
	body["hotel_id"] = "not-a-number"

	_, verr := BookingCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_HOTEL_ID", verr.Code)
}

func TestBookingCreate_invalidStatus(t *testing.T) {
	body := hotelBookingBody()
	body["status"] = "paused"

	_, verr := BookingCreate(body)
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_STATUS", verr.Code)
}

func TestBookingCreate_statusOverride(t *testing.T) {
	body := hotelBookingBody()
	body["status"] = "pending"

	input, verr := BookingCreate(body)
	assert.Nil(t, verr)
	assert.Equal(t, domain.BookingStatusPending, input.Status)
}

func TestBookingPatch_partial(t *testing.T) {
	upd, verr := BookingPatch(map[string]any{
		"status": "completed",
		"guests": float64(4),
	})
	assert.Nil(t, verr)
	assert.Equal(t, domain.BookingStatusCompleted, *upd.Status)
	assert.Equal(t, 4, *upd.Guests)
	assert.Nil(t, upd.Email)
}

func TestBookingPatch_invalidField(t *testing.T) {
	_, verr := BookingPatch(map[string]any{"distance": float64(0)})
	assert.NotNil(t, verr)
	assert.Equal(t, "INVALID_DISTANCE", verr.Code)
}
