package repository

import (
	"context"

	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Lookups return apperr.ErrNotFound when no row matches.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
