package repository

// Sort keys accepted by the list endpoints. "recommended" resolves to a
// resource-specific default ordering.
const (
	SortRecommended = "recommended"
	SortPriceLow    = "price-low"
	SortPriceHigh   = "price-high"
	SortRating      = "rating"
	SortDuration    = "duration"
)
