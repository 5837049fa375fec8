package repository

import (
	"context"

	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
)

// ReservationRepository reads a guest's reservation history.
type ReservationRepository interface {
	ListForGuest(ctx context.Context, guestID int64, limit int) ([]entity.GuestReservation, error)
}
