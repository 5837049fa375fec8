package repository

import (
	"context"

	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
)

// PropertyRepository searches and creates listings.
type PropertyRepository interface {
	Search(ctx context.Context, opts entity.PropertySearchOptions, limit int) ([]entity.PropertyListing, error)
	Create(ctx context.Context, p *entity.Property) error
}
