package validate

import (
	"strings"

	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/Domenick1991/travelbook/internal/repository"
)

var hotelRequiredFields = []string{"name", "location", "address", "rating", "reviews", "price", "images", "amenities", "roomType", "description"}

// HotelCreate validates a hotel creation payload. Order: presence sweep,
// rating, price, reviews, images, amenities, then the text fields.
func HotelCreate(body map[string]any) (*domain.Hotel, *Error) {
	var missing []string
	for _, field := range hotelRequiredFields {
		if _, ok := body[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, fail("MISSING_REQUIRED_FIELDS", "Missing required fields: "+strings.Join(missing, ", "))
	}

	rating, ok := number(body["rating"])
	if !ok || rating < 0 || rating > 5 {
		return nil, fail("INVALID_RATING", "Rating must be a number between 0 and 5")
	}

	price, ok := number(body["price"])
	if !ok || price <= 0 || !isIntegral(price) {
		return nil, fail("INVALID_PRICE", "Price must be a positive integer")
	}

	reviews, ok := number(body["reviews"])
	if !ok || reviews < 0 || !isIntegral(reviews) {
		return nil, fail("INVALID_REVIEWS", "Reviews must be a non-negative integer")
	}

	images, ok := stringList(body["images"])
	if !ok {
		return nil, fail("INVALID_IMAGES", "Images must be a valid JSON array")
	}

	amenities, ok := stringList(body["amenities"])
	if !ok {
		return nil, fail("INVALID_AMENITIES", "Amenities must be a valid JSON array")
	}

	name, ok := nonEmptyString(body["name"])
	if !ok {
		return nil, fail("INVALID_NAME", "Name must be a non-empty string")
	}
	location, ok := nonEmptyString(body["location"])
	if !ok {
		return nil, fail("INVALID_LOCATION", "Location must be a non-empty string")
	}
	address, ok := nonEmptyString(body["address"])
	if !ok {
		return nil, fail("INVALID_ADDRESS", "Address must be a non-empty string")
	}
	roomType, ok := nonEmptyString(body["roomType"])
	if !ok {
		return nil, fail("INVALID_ROOM_TYPE", "Room type must be a non-empty string")
	}
	description, ok := nonEmptyString(body["description"])
	if !ok {
		return nil, fail("INVALID_DESCRIPTION", "Description must be a non-empty string")
	}

	return &domain.Hotel{
		Name:        name,
		Location:    location,
		Address:     address,
		Rating:      rating,
		Reviews:     int(reviews),
		Price:       int(price),
		Images:      images,
		Amenities:   amenities,
		RoomType:    roomType,
		Description: description,
	}, nil
}

// HotelPatch validates a partial hotel update; only fields that were sent
// are checked, with the same codes as creation.
func HotelPatch(body map[string]any) (*repository.HotelUpdate, *Error) {
	var upd repository.HotelUpdate

	if v, ok := body["rating"]; ok {
		rating, ok := number(v)
		if !ok || rating < 0 || rating > 5 {
			return nil, fail("INVALID_RATING", "Rating must be a number between 0 and 5")
		}
		upd.Rating = &rating
	}
	if v, ok := body["price"]; ok {
		price, ok := number(v)
		if !ok || price <= 0 || !isIntegral(price) {
			return nil, fail("INVALID_PRICE", "Price must be a positive integer")
		}
		p := int(price)
		upd.Price = &p
	}
	if v, ok := body["reviews"]; ok {
		reviews, ok := number(v)
		if !ok || reviews < 0 || !isIntegral(reviews) {
			return nil, fail("INVALID_REVIEWS", "Reviews must be a non-negative integer")
		}
		rv := int(reviews)
		upd.Reviews = &rv
	}
	if v, ok := body["images"]; ok {
		images, ok := stringList(v)
		if !ok {
			return nil, fail("INVALID_IMAGES", "Images must be a valid JSON array")
		}
		upd.Images = &images
	}
	if v, ok := body["amenities"]; ok {
		amenities, ok := stringList(v)
		if !ok {
			return nil, fail("INVALID_AMENITIES", "Amenities must be a valid JSON array")
		}
		upd.Amenities = &amenities
	}
	if v, ok := body["name"]; ok {
		name, ok := nonEmptyString(v)
		if !ok {
			return nil, fail("INVALID_NAME", "Name must be a non-empty string")
		}
		upd.Name = &name
	}
	if v, ok := body["location"]; ok {
		location, ok := nonEmptyString(v)
		if !ok {
			return nil, fail("INVALID_LOCATION", "Location must be a non-empty string")
		}
		upd.Location = &location
	}
	if v, ok := body["address"]; ok {
		address, ok := nonEmptyString(v)
		if !ok {
			return nil, fail("INVALID_ADDRESS", "Address must be a non-empty string")
		}
		upd.Address = &address
	}
	if v, ok := body["roomType"]; ok {
		roomType, ok := nonEmptyString(v)
		if !ok {
			return nil, fail("INVALID_ROOM_TYPE", "Room type must be a non-empty string")
		}
		upd.RoomType = &roomType
	}
	if v, ok := body["description"]; ok {
		description, ok := nonEmptyString(v)
		if !ok {
			return nil, fail("INVALID_DESCRIPTION", "Description must be a non-empty string")
		}
		upd.Description = &description
	}

	return &upd, nil
}
