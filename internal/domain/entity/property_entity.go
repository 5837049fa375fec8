package entity

import "math"

// Property is a listing owned by a user.
// CostPerNight is stored in cents.
type Property struct {
	ID                int64
	OwnerID           int64
	Title             string
	Description       string
	ThumbnailPhotoURL string
	CoverPhotoURL     string
	CostPerNight      int64
	ParkingSpaces     int
	NumberOfBathrooms int
	NumberOfBedrooms  int
	Country           string
	Street            string
	City              string
	Province          string
	PostCode          string
	Active            bool
}

// PropertyListing is a property together with its aggregated review rating.
// AverageRating is nil when the property has no reviews.
type PropertyListing struct {
	Property
	AverageRating *float64
}

// PropertySearchOptions are the optional filters for a property search.
// Nil means the filter is absent. Prices are in dollars.
type PropertySearchOptions struct {
	City                 *string
	OwnerID              *int64
	MinimumPricePerNight *float64
	MaximumPricePerNight *float64
	MinimumRating        *float64
}

// MaxDollars is the largest major-unit amount accepted from callers.
// Anything above it would not round-trip through int64 cents.
const MaxDollars = 1e12

// CentsFromDollars converts a major-unit amount to the stored minor unit.
func CentsFromDollars(d float64) int64 {
	return int64(math.Round(d * 100))
}
