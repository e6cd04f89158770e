package validate

import (
	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/Domenick1991/travelbook/internal/repository"
)

// TaxiCreate validates a taxi creation payload. totalTrips and available
// are optional and default to 0 and true.
func TaxiCreate(body map[string]any) (*domain.Taxi, *Error) {
	taxiType, ok := nonEmptyString(body["type"])
	if !ok {
		return nil, fail("INVALID_TYPE", "Type is required and must be a non-empty string")
	}
	model, ok := nonEmptyString(body["model"])
	if !ok {
		return nil, fail("INVALID_MODEL", "Model is required and must be a non-empty string")
	}

	capacity, ok := number(body["capacity"])
	if !ok || capacity <= 0 || !isIntegral(capacity) {
		return nil, fail("INVALID_CAPACITY", "Capacity is required and must be a positive integer")
	}
	luggage, ok := number(body["luggage"])
	if !ok || luggage <= 0 || !isIntegral(luggage) {
		return nil, fail("INVALID_LUGGAGE", "Luggage is required and must be a positive integer")
	}
	pricePerKm, ok := number(body["pricePerKm"])
	if !ok || pricePerKm <= 0 || !isIntegral(pricePerKm) {
		return nil, fail("INVALID_PRICE_PER_KM", "Price per km is required and must be a positive integer")
	}

	features, ok := stringList(body["features"])
	if !ok {
		return nil, fail("INVALID_FEATURES", "Features is required and must be an array")
	}

	rating, ok := number(body["rating"])
	if !ok || rating < 0 || rating > 5 {
		return nil, fail("INVALID_RATING", "Rating is required and must be a number between 0 and 5")
	}

	totalTrips := 0.0
	if v, sent := body["totalTrips"]; sent {
		totalTrips, ok = number(v)
		if !ok || totalTrips < 0 || !isIntegral(totalTrips) {
			return nil, fail("INVALID_TOTAL_TRIPS", "Total trips must be a non-negative integer")
		}
	}

	available := true
	if v, sent := body["available"]; sent {
		available, ok = v.(bool)
		if !ok {
			return nil, fail("INVALID_AVAILABLE", "Available must be a boolean")
		}
	}

	return &domain.Taxi{
		Type:       taxiType,
		Model:      model,
		Capacity:   int(capacity),
		Luggage:    int(luggage),
		PricePerKm: int(pricePerKm),
		Features:   features,
		Rating:     rating,
		TotalTrips: int(totalTrips),
		Available:  available,
	}, nil
}

// TaxiPatch validates a partial taxi update.
func TaxiPatch(body map[string]any) (*repository.TaxiUpdate, *Error) {
	var upd repository.TaxiUpdate

	if v, ok := body["type"]; ok {
		taxiType, ok := nonEmptyString(v)
		if !ok {
			return nil, fail("INVALID_TYPE", "Type must be a non-empty string")
		}
		upd.Type = &taxiType
	}
	if v, ok := body["model"]; ok {
		model, ok := nonEmptyString(v)
		if !ok {
			return nil, fail("INVALID_MODEL", "Model must be a non-empty string")
		}
		upd.Model = &model
	}
	if v, ok := body["capacity"]; ok {
		capacity, ok := number(v)
		if !ok || capacity <= 0 || !isIntegral(capacity) {
			return nil, fail("INVALID_CAPACITY", "Capacity must be a positive integer")
		}
		c := int(capacity)
		upd.Capacity = &c
	}
	if v, ok := body["luggage"]; ok {
		luggage, ok := number(v)
		if !ok || luggage <= 0 || !isIntegral(luggage) {
			return nil, fail("INVALID_LUGGAGE", "Luggage must be a positive integer")
		}
		l := int(luggage)
		upd.Luggage = &l
	}
	if v, ok := body["pricePerKm"]; ok {
		pricePerKm, ok := number(v)
		if !ok || pricePerKm <= 0 || !isIntegral(pricePerKm) {
			return nil, fail("INVALID_PRICE_PER_KM", "Price per km must be a positive integer")
		}
		p := int(pricePerKm)
		upd.PricePerKm = &p
	}
	if v, ok := body["features"]; ok {
		features, ok := stringList(v)
		if !ok {
			return nil, fail("INVALID_FEATURES", "Features must be an array")
		}
		upd.Features = &features
	}
	if v, ok := body["rating"]; ok {
		rating, ok := number(v)
		if !ok || rating < 0 || rating > 5 {
			return nil, fail("INVALID_RATING", "Rating must be a number between 0 and 5")
		}
		upd.Rating = &rating
	}
	if v, ok := body["totalTrips"]; ok {
		totalTrips, ok := number(v)
		if !ok || totalTrips < 0 || !isIntegral(totalTrips) {
			return nil, fail("INVALID_TOTAL_TRIPS", "Total trips must be a non-negative integer")
		}
		t := int(totalTrips)
		upd.TotalTrips = &t
	}
	if v, ok := body["available"]; ok {
		available, ok := v.(bool)
		if !ok {
			return nil, fail("INVALID_AVAILABLE", "Available must be a boolean")
		}
		upd.Available = &available
	}

	return &upd, nil
}
