package validate

import (
	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/Domenick1991/travelbook/internal/repository"
)

const defaultAvailableSeats = 150

// FlightCreate validates a flight creation payload. Each required text
// field has its own MISSING_* code, checked in schema order before the
// numeric checks.
func FlightCreate(body map[string]any) (*domain.Flight, *Error) {
	airline, ok := nonEmptyString(body["airline"])
	if !ok {
		return nil, fail("MISSING_AIRLINE", "Airline is required")
	}
	flightNumber, ok := nonEmptyString(body["flightNumber"])
	if !ok {
		return nil, fail("MISSING_FLIGHT_NUMBER", "Flight number is required")
	}
	fromLocation, ok := nonEmptyString(body["fromLocation"])
	if !ok {
		return nil, fail("MISSING_FROM_LOCATION", "From location is required")
	}
	toLocation, ok := nonEmptyString(body["toLocation"])
	if !ok {
		return nil, fail("MISSING_TO_LOCATION", "To location is required")
	}
	departure, ok := nonEmptyString(body["departure"])
	if !ok {
		return nil, fail("MISSING_DEPARTURE", "Departure time is required")
	}
	arrival, ok := nonEmptyString(body["arrival"])
	if !ok {
		return nil, fail("MISSING_ARRIVAL", "Arrival time is required")
	}
	duration, ok := nonEmptyString(body["duration"])
	if !ok {
		return nil, fail("MISSING_DURATION", "Duration is required")
	}
	stops, ok := nonEmptyString(body["stops"])
	if !ok {
		return nil, fail("MISSING_STOPS", "Stops information is required")
	}
	class, ok := nonEmptyString(body["class"])
	if !ok {
		return nil, fail("MISSING_CLASS", "Class is required")
	}
	date, ok := nonEmptyString(body["date"])
	if !ok {
		return nil, fail("MISSING_DATE", "Date is required")
	}

	price, ok := number(body["price"])
	if !ok || price <= 0 {
		return nil, fail("INVALID_PRICE", "Price must be a positive integer")
	}

	seats := float64(defaultAvailableSeats)
	if v, sent := body["availableSeats"]; sent {
		seats, ok = number(v)
		if !ok || seats < 0 {
			return nil, fail("INVALID_AVAILABLE_SEATS", "Available seats must be a non-negative integer")
		}
	}

	return &domain.Flight{
		Airline:        airline,
		FlightNumber:   flightNumber,
		FromLocation:   fromLocation,
		ToLocation:     toLocation,
		Departure:      departure,
		Arrival:        arrival,
		Duration:       duration,
		Stops:          stops,
		Price:          int(price),
		Class:          class,
		Date:           date,
		AvailableSeats: int(seats),
	}, nil
}

// FlightPatch validates a partial flight update.
func FlightPatch(body map[string]any) (*repository.FlightUpdate, *Error) {
	var upd repository.FlightUpdate

	setString := func(key, code, label string, dst **string) *Error {
		v, ok := body[key]
		if !ok {
			return nil
		}
		s, ok := nonEmptyString(v)
		if !ok {
			return fail(code, label+" must be a non-empty string")
		}
		*dst = &s
		return nil
	}

	if err := setString("airline", "INVALID_AIRLINE", "Airline", &upd.Airline); err != nil {
		return nil, err
	}
	if err := setString("flightNumber", "INVALID_FLIGHT_NUMBER", "Flight number", &upd.FlightNumber); err != nil {
		return nil, err
	}
	if err := setString("fromLocation", "INVALID_FROM_LOCATION", "From location", &upd.FromLocation); err != nil {
		return nil, err
	}
	if err := setString("toLocation", "INVALID_TO_LOCATION", "To location", &upd.ToLocation); err != nil {
		return nil, err
	}
	if err := setString("departure", "INVALID_DEPARTURE", "Departure time", &upd.Departure); err != nil {
		return nil, err
	}
	if err := setString("arrival", "INVALID_ARRIVAL", "Arrival time", &upd.Arrival); err != nil {
		return nil, err
	}
	if err := setString("duration", "INVALID_DURATION", "Duration", &upd.Duration); err != nil {
		return nil, err
	}
	if err := setString("stops", "INVALID_STOPS", "Stops information", &upd.Stops); err != nil {
		return nil, err
	}
	if err := setString("class", "INVALID_CLASS", "Class", &upd.Class); err != nil {
		return nil, err
	}
	if err := setString("date", "INVALID_DATE", "Date", &upd.Date); err != nil {
		return nil, err
	}

	if v, ok := body["price"]; ok {
		price, ok := number(v)
		if !ok || price <= 0 {
			return nil, fail("INVALID_PRICE", "Price must be a positive integer")
		}
		p := int(price)
		upd.Price = &p
	}
	if v, ok := body["availableSeats"]; ok {
		seats, ok := number(v)
		if !ok || seats < 0 {
			return nil, fail("INVALID_AVAILABLE_SEATS", "Available seats must be a non-negative integer")
		}
		s := int(seats)
		upd.AvailableSeats = &s
	}

	return &upd, nil
}
