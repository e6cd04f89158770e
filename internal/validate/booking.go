package validate

import (
	"strings"

	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/Domenick1991/travelbook/internal/repository"
)

// BookingInput is the normalized tagged union a booking creation payload
// parses into: the discriminator selects which foreign key and detail
// fields are set, everything else is common to the three kinds.
type BookingInput struct {
	BookingType     domain.BookingType
	HotelID         *int64
	FlightID        *int64
	TaxiID          *int64
	CheckIn         *string
	CheckOut        *string
	Guests          *int
	Passengers      *int
	PickupLocation  *string
	DropLocation    *string
	Distance        *int
	FullName        string
	Email           string
	Phone           string
	SpecialRequests *string
	Status          domain.BookingStatus
	Subtotal        float64
	Taxes           float64
	TotalPrice      float64
}

var bookingStatuses = map[domain.BookingStatus]bool{
	domain.BookingStatusConfirmed: true,
	domain.BookingStatusPending:   true,
	domain.BookingStatusCompleted: true,
	domain.BookingStatusCancelled: true,
}

// BookingCreate validates a booking creation payload. The discriminator is
// checked first, then the type-specific required fields, then the common
// required fields, then formats and ranges. Monetary amounts are taken
// from the client as submitted; only non-negativity is enforced here.
func BookingCreate(body map[string]any) (*BookingInput, *Error) {
	rawType, _ := nonEmptyString(body["booking_type"])
	bookingType := domain.BookingType(rawType)
	if bookingType != domain.BookingTypeHotel && bookingType != domain.BookingTypeFlight && bookingType != domain.BookingTypeTaxi {
		return nil, fail("INVALID_BOOKING_TYPE", "booking_type must be one of: hotel, flight, taxi")
	}

	switch bookingType {
	case domain.BookingTypeHotel:
		if !present(body, "hotel_id") {
			return nil, fail("MISSING_HOTEL_ID", "hotel_id is required for hotel bookings")
		}
		if !present(body, "check_in") {
			return nil, fail("MISSING_CHECK_IN", "check_in is required for hotel bookings")
		}
		if !present(body, "check_out") {
			return nil, fail("MISSING_CHECK_OUT", "check_out is required for hotel bookings")
		}
		if !present(body, "guests") {
			return nil, fail("MISSING_GUESTS", "guests is required for hotel bookings")
		}
	case domain.BookingTypeFlight:
		if !present(body, "flight_id") {
			return nil, fail("MISSING_FLIGHT_ID", "flight_id is required for flight bookings")
		}
		if !present(body, "passengers") {
			return nil, fail("MISSING_PASSENGERS", "passengers is required for flight bookings")
		}
	case domain.BookingTypeTaxi:
		if !present(body, "taxi_id") {
			return nil, fail("MISSING_TAXI_ID", "taxi_id is required for taxi bookings")
		}
		if !present(body, "pickup_location") {
			return nil, fail("MISSING_PICKUP_LOCATION", "pickup_location is required for taxi bookings")
		}
		if !present(body, "drop_location") {
			return nil, fail("MISSING_DROP_LOCATION", "drop_location is required for taxi bookings")
		}
		if !present(body, "distance") {
			return nil, fail("MISSING_DISTANCE", "distance is required for taxi bookings")
		}
	}

	if !present(body, "full_name") {
		return nil, fail("MISSING_FULL_NAME", "full_name is required")
	}
	if !present(body, "email") {
		return nil, fail("MISSING_EMAIL", "email is required")
	}
	if !present(body, "phone") {
		return nil, fail("MISSING_PHONE", "phone is required")
	}
	if !defined(body, "subtotal") {
		return nil, fail("MISSING_SUBTOTAL", "subtotal is required")
	}
	if !defined(body, "taxes") {
		return nil, fail("MISSING_TAXES", "taxes is required")
	}
	if !defined(body, "total_price") {
		return nil, fail("MISSING_TOTAL_PRICE", "total_price is required")
	}

	email, _ := nonEmptyString(body["email"])
	if !validEmail(email) {
		return nil, fail("INVALID_EMAIL", "Invalid email format")
	}

	input := &BookingInput{
		BookingType: bookingType,
		Email:       strings.ToLower(email),
		Status:      domain.BookingStatusConfirmed,
	}
	input.FullName, _ = nonEmptyString(body["full_name"])
	input.Phone, _ = nonEmptyString(body["phone"])

	switch bookingType {
	case domain.BookingTypeHotel:
		guests, ok := looseInt(body["guests"])
		if !ok || guests <= 0 {
			return nil, fail("INVALID_GUESTS", "guests must be a positive integer")
		}
		input.Guests = &guests

		checkIn, _ := nonEmptyString(body["check_in"])
		checkInDate, ok := parseDate(checkIn)
		if !ok {
			return nil, fail("INVALID_CHECK_IN", "check_in must be a valid ISO date string")
		}
		checkOut, _ := nonEmptyString(body["check_out"])
		checkOutDate, ok := parseDate(checkOut)
		if !ok {
			return nil, fail("INVALID_CHECK_OUT", "check_out must be a valid ISO date string")
		}
		if !checkOutDate.After(checkInDate) {
			return nil, fail("INVALID_DATE_RANGE", "check_out must be after check_in")
		}
		input.CheckIn = &checkIn
		input.CheckOut = &checkOut

	case domain.BookingTypeFlight:
		passengers, ok := looseInt(body["passengers"])
		if !ok || passengers <= 0 {
			return nil, fail("INVALID_PASSENGERS", "passengers must be a positive integer")
		}
		input.Passengers = &passengers

	case domain.BookingTypeTaxi:
		pickup, _ := nonEmptyString(body["pickup_location"])
		drop, _ := nonEmptyString(body["drop_location"])
		input.PickupLocation = &pickup
		input.DropLocation = &drop

		distance, ok := looseInt(body["distance"])
		if !ok || distance <= 0 {
			return nil, fail("INVALID_DISTANCE", "distance must be a positive integer")
		}
		input.Distance = &distance
	}

	subtotal, ok := looseNumber(body["subtotal"])
	if !ok || subtotal < 0 {
		return nil, fail("INVALID_SUBTOTAL", "subtotal must be a positive number")
	}
	taxes, ok := looseNumber(body["taxes"])
	if !ok || taxes < 0 {
		return nil, fail("INVALID_TAXES", "taxes must be a positive number")
	}
	totalPrice, ok := looseNumber(body["total_price"])
	if !ok || totalPrice < 0 {
		return nil, fail("INVALID_TOTAL_PRICE", "total_price must be a positive number")
	}
	input.Subtotal = subtotal
	input.Taxes = taxes
	input.TotalPrice = totalPrice

	// the foreign key parses last, after every amount check
	switch bookingType {
	case domain.BookingTypeHotel:
		id, ok := looseInt(body["hotel_id"])
		if !ok {
			return nil, fail("INVALID_HOTEL_ID", "hotel_id must be a valid integer")
		}
		hotelID := int64(id)
		input.HotelID = &hotelID
	case domain.BookingTypeFlight:
		id, ok := looseInt(body["flight_id"])
		if !ok {
			return nil, fail("INVALID_FLIGHT_ID", "flight_id must be a valid integer")
		}
		flightID := int64(id)
		input.FlightID = &flightID
	case domain.BookingTypeTaxi:
		id, ok := looseInt(body["taxi_id"])
		if !ok {
			return nil, fail("INVALID_TAXI_ID", "taxi_id must be a valid integer")
		}
		taxiID := int64(id)
		input.TaxiID = &taxiID
	}

	if v, sent := body["status"]; sent {
		if status, ok := nonEmptyString(v); ok {
			bs := domain.BookingStatus(status)
			if !bookingStatuses[bs] {
				return nil, fail("INVALID_STATUS", "status must be one of: confirmed, pending, completed, cancelled")
			}
			input.Status = bs
		}
	}

	if v, sent := body["special_requests"]; sent {
		if requests, ok := nonEmptyString(v); ok {
			input.SpecialRequests = &requests
		}
	}

	return input, nil
}

// BookingPatch validates a partial booking update (admin reconciliation).
// The discriminator and foreign keys are immutable after creation.
func BookingPatch(body map[string]any) (*repository.BookingUpdate, *Error) {
	var upd repository.BookingUpdate

	if v, ok := body["check_in"]; ok {
		checkIn, ok := nonEmptyString(v)
		if !ok {
			return nil, fail("INVALID_CHECK_IN", "check_in must be a valid ISO date string")
		}
		if _, ok := parseDate(checkIn); !ok {
			return nil, fail("INVALID_CHECK_IN", "check_in must be a valid ISO date string")
		}
		upd.CheckIn = &checkIn
	}
	if v, ok := body["check_out"]; ok {
		checkOut, ok := nonEmptyString(v)
		if !ok {
			return nil, fail("INVALID_CHECK_OUT", "check_out must be a valid ISO date string")
		}
		if _, ok := parseDate(checkOut); !ok {
			return nil, fail("INVALID_CHECK_OUT", "check_out must be a valid ISO date string")
		}
		upd.CheckOut = &checkOut
	}
	if v, ok := body["guests"]; ok {
		guests, ok := looseInt(v)
		if !ok || guests <= 0 {
			return nil, fail("INVALID_GUESTS", "guests must be a positive integer")
		}
		upd.Guests = &guests
	}
	if v, ok := body["passengers"]; ok {
		passengers, ok := looseInt(v)
		if !ok || passengers <= 0 {
			return nil, fail("INVALID_PASSENGERS", "passengers must be a positive integer")
		}
		upd.Passengers = &passengers
	}
	if v, ok := body["pickup_location"]; ok {
		pickup, ok := nonEmptyString(v)
		if !ok {
			return nil, fail("INVALID_PICKUP_LOCATION", "pickup_location must be a non-empty string")
		}
		upd.PickupLocation = &pickup
	}
	if v, ok := body["drop_location"]; ok {
		drop, ok := nonEmptyString(v)
		if !ok {
			return nil, fail("INVALID_DROP_LOCATION", "drop_location must be a non-empty string")
		}
		upd.DropLocation = &drop
	}
	if v, ok := body["distance"]; ok {
		distance, ok := looseInt(v)
		if !ok || distance <= 0 {
			return nil, fail("INVALID_DISTANCE", "distance must be a positive integer")
		}
		upd.Distance = &distance
	}
	if v, ok := body["full_name"]; ok {
		fullName, ok := nonEmptyString(v)
		if !ok {
			return nil, fail("INVALID_FULL_NAME", "full_name must be a non-empty string")
		}
		upd.FullName = &fullName
	}
	if v, ok := body["email"]; ok {
		email, ok := nonEmptyString(v)
		if !ok || !validEmail(email) {
			return nil, fail("INVALID_EMAIL", "Invalid email format")
		}
		lowered := strings.ToLower(email)
		upd.Email = &lowered
	}
	if v, ok := body["phone"]; ok {
		phone, ok := nonEmptyString(v)
		if !ok {
			return nil, fail("INVALID_PHONE", "phone must be a non-empty string")
		}
		upd.Phone = &phone
	}
	if v, ok := body["special_requests"]; ok {
		if requests, ok := nonEmptyString(v); ok {
			upd.SpecialRequests = &requests
		}
	}
	if v, ok := body["status"]; ok {
		status, ok := nonEmptyString(v)
		bs := domain.BookingStatus(status)
		if !ok || !bookingStatuses[bs] {
			return nil, fail("INVALID_STATUS", "status must be one of: confirmed, pending, completed, cancelled")
		}
		upd.Status = &bs
	}
	if v, ok := body["subtotal"]; ok {
		subtotal, ok := looseNumber(v)
		if !ok || subtotal < 0 {
			return nil, fail("INVALID_SUBTOTAL", "subtotal must be a positive number")
		}
		upd.Subtotal = &subtotal
	}
	if v, ok := body["taxes"]; ok {
		taxes, ok := looseNumber(v)
		if !ok || taxes < 0 {
			return nil, fail("INVALID_TAXES", "taxes must be a positive number")
		}
		upd.Taxes = &taxes
	}
	if v, ok := body["total_price"]; ok {
		totalPrice, ok := looseNumber(v)
		if !ok || totalPrice < 0 {
			return nil, fail("INVALID_TOTAL_PRICE", "total_price must be a positive number")
		}
		upd.TotalPrice = &totalPrice
	}

	return &upd, nil
}
