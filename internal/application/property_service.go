package application

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/lightbnb-api/internal/domain/apperr"
	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
	repo "github.com/oksasatya/lightbnb-api/internal/domain/repository"
)

type PropertyService struct {
	Repo   repo.PropertyRepository
	Index  PropertyIndex // nil disables text search
	Photos PhotoStore    // nil disables photo upload
	Logger *logrus.Logger
}

func NewPropertyService(r repo.PropertyRepository, index PropertyIndex, photos PhotoStore, logger *logrus.Logger) *PropertyService {
	return &PropertyService{Repo: r, Index: index, Photos: photos, Logger: logger}
}

// CreatePropertyInput is a new listing as submitted. CostPerNight is in dollars.
type CreatePropertyInput struct {
	Title             string
	Description       string
	ThumbnailPhotoURL string
	CoverPhotoURL     string
	CostPerNight      float64
	ParkingSpaces     int
	NumberOfBathrooms int
	NumberOfBedrooms  int
	Country           string
	Street            string
	City              string
	Province          string
	PostCode          string
}

func (s *PropertyService) Search(ctx context.Context, opts entity.PropertySearchOptions, limit int) ([]entity.PropertyListing, error) {
	return s.Repo.Search(ctx, opts, limit)
}

// Create stores a listing owned by ownerID and mirrors it into the text index.
func (s *PropertyService) Create(ctx context.Context, ownerID int64, in CreatePropertyInput) (*entity.Property, error) {
	if math.IsNaN(in.CostPerNight) || math.IsInf(in.CostPerNight, 0) || in.CostPerNight < 0 || in.CostPerNight > entity.MaxDollars {
		return nil, fmt.Errorf("%w: cost_per_night must be a non-negative number", apperr.ErrValidation)
	}
	if in.ParkingSpaces < 0 || in.NumberOfBathrooms < 0 || in.NumberOfBedrooms < 0 {
		return nil, fmt.Errorf("%w: room counts must not be negative", apperr.ErrValidation)
	}
	p := &entity.Property{
		OwnerID:           ownerID,
		Title:             strings.TrimSpace(in.Title),
		Description:       in.Description,
		ThumbnailPhotoURL: in.ThumbnailPhotoURL,
		CoverPhotoURL:     in.CoverPhotoURL,
		CostPerNight:      entity.CentsFromDollars(in.CostPerNight),
		ParkingSpaces:     in.ParkingSpaces,
		NumberOfBathrooms: in.NumberOfBathrooms,
		NumberOfBedrooms:  in.NumberOfBedrooms,
		Country:           in.Country,
		Street:            in.Street,
		City:              in.City,
		Province:          in.Province,
		PostCode:          in.PostCode,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if s.Index != nil {
		if err := s.Index.Index(ctx, *p); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("property_id", p.ID).Warn("index property failed")
		}
	}
	return p, nil
}

// TextSearch queries the full-text index. Without an index it returns no results.
func (s *PropertyService) TextSearch(ctx context.Context, q string, size int) ([]entity.Property, error) {
	q = strings.TrimSpace(q)
	if s.Index == nil || q == "" {
		return []entity.Property{}, nil
	}
	return s.Index.Search(ctx, q, size)
}

func (s *PropertyService) UploadPhoto(ctx context.Context, ownerID int64, r io.Reader, filename, contentType string) (string, error) {
	if s.Photos == nil {
		return "", fmt.Errorf("photo storage: %w", apperr.ErrUnavailable)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: file must be an image", apperr.ErrValidation)
	}
	return s.Photos.Upload(ctx, ownerID, r, filename, contentType)
}
