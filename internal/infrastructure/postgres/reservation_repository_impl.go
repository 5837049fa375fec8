package postgres

import (
	"context"
	"time"

	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
	"github.com/oksasatya/lightbnb-api/internal/domain/repository"
)

type ReservationRepository struct {
	db      Querier
	timeout time.Duration
}

func NewReservationRepository(db Querier, timeout time.Duration) *ReservationRepository {
	return &ReservationRepository{db: db, timeout: timeout}
}

// Properties without reviews get a NULL average_rating.
const listGuestReservationsSQL = `
	SELECT reservations.id, reservations.guest_id, reservations.property_id,
		reservations.start_date, reservations.end_date,
		properties.title, properties.thumbnail_photo_url, properties.cost_per_night,
		properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms,
		ratings.average_rating
	FROM reservations
	JOIN properties ON properties.id = reservations.property_id
	LEFT JOIN (
		SELECT r.property_id, avg(pr.rating)::float8 AS average_rating
		FROM reservations r
		JOIN property_reviews pr ON pr.reservation_id = r.id
		GROUP BY r.property_id
	) ratings ON ratings.property_id = properties.id
	WHERE reservations.guest_id = $1
	ORDER BY reservations.start_date ASC, reservations.id ASC
	LIMIT $2`

func (r *ReservationRepository) ListForGuest(ctx context.Context, guestID int64, limit int) ([]entity.GuestReservation, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, listGuestReservationsSQL, guestID, normalizeLimit(limit))
	if err != nil {
		return nil, classify("list reservations", err)
	}
	defer rows.Close()

	out := make([]entity.GuestReservation, 0)
	for rows.Next() {
		var g entity.GuestReservation
		if err := rows.Scan(
			&g.ID, &g.GuestID, &g.PropertyID,
			&g.StartDate, &g.EndDate,
			&g.Title, &g.ThumbnailPhotoURL, &g.CostPerNight,
			&g.ParkingSpaces, &g.NumberOfBathrooms, &g.NumberOfBedrooms,
			&g.AverageRating,
		); err != nil {
			return nil, classify("scan reservation", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list reservations", err)
	}
	return out, nil
}

var _ repository.ReservationRepository = (*ReservationRepository)(nil)
