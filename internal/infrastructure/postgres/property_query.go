package postgres

import (
	"fmt"
	"math"
	"strings"

	"github.com/oksasatya/lightbnb-api/internal/domain/apperr"
	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
)

const propertyColumns = `properties.id, properties.owner_id, properties.title, properties.description,
	properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
	properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms,
	properties.country, properties.street, properties.city, properties.province,
	properties.post_code, properties.active`

const propertySearchBase = `SELECT ` + propertyColumns + `,
	avg(property_reviews.rating)::float8 AS average_rating
FROM properties
LEFT JOIN reservations ON reservations.property_id = properties.id
LEFT JOIN property_reviews ON property_reviews.reservation_id = reservations.id`

const maxRating = 5

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// BuildPropertySearch assembles the property search statement for opts.
// Each present option contributes one predicate; minimum rating filters the
// aggregate and therefore lands in HAVING. Prices are bound in cents.
func BuildPropertySearch(opts entity.PropertySearchOptions, limit int) (Statement, error) {
	if err := validateSearch(opts); err != nil {
		return Statement{}, err
	}

	b := newSelect(propertySearchBase)
	if opts.City != nil {
		if city := strings.TrimSpace(*opts.City); city != "" {
			b.Where("properties.city", "LIKE", "%"+likeEscaper.Replace(city)+"%")
		}
	}
	if opts.OwnerID != nil {
		b.Where("properties.owner_id", "=", *opts.OwnerID)
	}
	if opts.MinimumPricePerNight != nil {
		b.Where("properties.cost_per_night", ">=", entity.CentsFromDollars(*opts.MinimumPricePerNight))
	}
	if opts.MaximumPricePerNight != nil {
		b.Where("properties.cost_per_night", "<=", entity.CentsFromDollars(*opts.MaximumPricePerNight))
	}
	b.GroupBy("properties.id")
	if opts.MinimumRating != nil {
		b.Having("avg(property_reviews.rating)", ">=", *opts.MinimumRating)
	}
	b.OrderBy("properties.cost_per_night ASC, properties.id ASC")
	b.Limit(normalizeLimit(limit))

	return b.Build(), nil
}

func validateSearch(opts entity.PropertySearchOptions) error {
	if opts.OwnerID != nil && *opts.OwnerID <= 0 {
		return fmt.Errorf("%w: owner_id must be positive", apperr.ErrValidation)
	}
	if err := validPrice("minimum_price_per_night", opts.MinimumPricePerNight); err != nil {
		return err
	}
	if err := validPrice("maximum_price_per_night", opts.MaximumPricePerNight); err != nil {
		return err
	}
	if opts.MinimumPricePerNight != nil && opts.MaximumPricePerNight != nil &&
		*opts.MinimumPricePerNight > *opts.MaximumPricePerNight {
		return fmt.Errorf("%w: minimum_price_per_night exceeds maximum_price_per_night", apperr.ErrValidation)
	}
	if r := opts.MinimumRating; r != nil {
		if math.IsNaN(*r) || *r < 0 || *r > maxRating {
			return fmt.Errorf("%w: minimum_rating must be between 0 and %d", apperr.ErrValidation, maxRating)
		}
	}
	return nil
}

func validPrice(name string, v *float64) error {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return fmt.Errorf("%w: %s must be a finite number", apperr.ErrValidation, name)
	}
	if *v < 0 {
		return fmt.Errorf("%w: %s must not be negative", apperr.ErrValidation, name)
	}
	if *v > entity.MaxDollars {
		return fmt.Errorf("%w: %s is too large", apperr.ErrValidation, name)
	}
	return nil
}
