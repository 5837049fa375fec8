package application

import (
	"context"

	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
	repo "github.com/oksasatya/lightbnb-api/internal/domain/repository"
)

type ReservationService struct {
	Repo repo.ReservationRepository
}

func NewReservationService(r repo.ReservationRepository) *ReservationService {
	return &ReservationService{Repo: r}
}

// List returns the guest's reservations, earliest first.
func (s *ReservationService) List(ctx context.Context, guestID int64, limit int) ([]entity.GuestReservation, error) {
	return s.Repo.ListForGuest(ctx, guestID, limit)
}
