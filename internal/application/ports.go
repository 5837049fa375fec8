package application

import (
	"context"
	"io"

	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
	"github.com/oksasatya/lightbnb-api/pkg/mailer"
)

// EmailPublisher enqueues outbound email for the worker.
type EmailPublisher interface {
	PublishEmail(ctx context.Context, job mailer.EmailJob) error
}

// PropertyIndex mirrors listings into a full-text index.
type PropertyIndex interface {
	Index(ctx context.Context, p entity.Property) error
	Search(ctx context.Context, q string, size int) ([]entity.Property, error)
}

// PhotoStore stores uploaded property photos and returns their URL.
type PhotoStore interface {
	Upload(ctx context.Context, ownerID int64, r io.Reader, filename, contentType string) (string, error)
}
