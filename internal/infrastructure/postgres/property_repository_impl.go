package postgres

import (
	"context"
	"time"

	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
	"github.com/oksasatya/lightbnb-api/internal/domain/repository"
)

type PropertyRepository struct {
	db      Querier
	timeout time.Duration
}

func NewPropertyRepository(db Querier, timeout time.Duration) *PropertyRepository {
	return &PropertyRepository{db: db, timeout: timeout}
}

// Search runs the statement produced by BuildPropertySearch.
func (r *PropertyRepository) Search(ctx context.Context, opts entity.PropertySearchOptions, limit int) ([]entity.PropertyListing, error) {
	st, err := BuildPropertySearch(opts, limit)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, st.SQL, st.Args...)
	if err != nil {
		return nil, classify("search properties", err)
	}
	defer rows.Close()

	out := make([]entity.PropertyListing, 0)
	for rows.Next() {
		var l entity.PropertyListing
		if err := rows.Scan(append(propertyDest(&l.Property), &l.AverageRating)...); err != nil {
			return nil, classify("scan property", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("search properties", err)
	}
	return out, nil
}

func (r *PropertyRepository) Create(ctx context.Context, p *entity.Property) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		INSERT INTO properties (
			title, description, owner_id, cover_photo_url, thumbnail_photo_url, cost_per_night,
			parking_spaces, number_of_bathrooms, number_of_bedrooms, province, city, country, street, post_code
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+returningColumns,
		p.Title, p.Description, p.OwnerID, p.CoverPhotoURL, p.ThumbnailPhotoURL, p.CostPerNight,
		p.ParkingSpaces, p.NumberOfBathrooms, p.NumberOfBedrooms, p.Province, p.City, p.Country, p.Street, p.PostCode,
	)
	return classify("create property", row.Scan(propertyDest(p)...))
}

const returningColumns = `id, owner_id, title, description, thumbnail_photo_url, cover_photo_url, cost_per_night,
	parking_spaces, number_of_bathrooms, number_of_bedrooms, country, street, city, province, post_code, active`

// propertyDest lists scan targets in propertyColumns order.
func propertyDest(p *entity.Property) []any {
	return []any{
		&p.ID, &p.OwnerID, &p.Title, &p.Description,
		&p.ThumbnailPhotoURL, &p.CoverPhotoURL, &p.CostPerNight,
		&p.ParkingSpaces, &p.NumberOfBathrooms, &p.NumberOfBedrooms,
		&p.Country, &p.Street, &p.City, &p.Province,
		&p.PostCode, &p.Active,
	}
}

var _ repository.PropertyRepository = (*PropertyRepository)(nil)
