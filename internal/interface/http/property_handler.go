package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/lightbnb-api/internal/application"
	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
	"github.com/oksasatya/lightbnb-api/internal/interface/middleware"
	"github.com/oksasatya/lightbnb-api/pkg/response"
)

const maxPhotoBytes = 10 << 20

type PropertyService interface {
	Search(ctx context.Context, opts entity.PropertySearchOptions, limit int) ([]entity.PropertyListing, error)
	Create(ctx context.Context, ownerID int64, in application.CreatePropertyInput) (*entity.Property, error)
	TextSearch(ctx context.Context, q string, size int) ([]entity.Property, error)
	UploadPhoto(ctx context.Context, ownerID int64, r io.Reader, filename, contentType string) (string, error)
}

type PropertyHandler struct {
	Svc    PropertyService
	Logger *logrus.Logger
}

func NewPropertyHandler(svc PropertyService, logger *logrus.Logger) *PropertyHandler {
	return &PropertyHandler{Svc: svc, Logger: logger}
}

// searchQuery mirrors the optional listing filters. Prices are in dollars.
type searchQuery struct {
	City                 *string  `form:"city"`
	OwnerID              *int64   `form:"owner_id"`
	MinimumPricePerNight *float64 `form:"minimum_price_per_night"`
	MaximumPricePerNight *float64 `form:"maximum_price_per_night"`
	MinimumRating        *float64 `form:"minimum_rating"`
	Limit                int      `form:"limit" binding:"omitempty,min=0"`
}

type createPropertyRequest struct {
	Title             string  `json:"title" binding:"required,max=255"`
	Description       string  `json:"description"`
	ThumbnailPhotoURL string  `json:"thumbnail_photo_url" binding:"omitempty,url"`
	CoverPhotoURL     string  `json:"cover_photo_url" binding:"omitempty,url"`
	CostPerNight      float64 `json:"cost_per_night" binding:"gte=0"`
	ParkingSpaces     int     `json:"parking_spaces" binding:"gte=0"`
	NumberOfBathrooms int     `json:"number_of_bathrooms" binding:"gte=0"`
	NumberOfBedrooms  int     `json:"number_of_bedrooms" binding:"gte=0"`
	Country           string  `json:"country" binding:"required"`
	Street            string  `json:"street" binding:"required"`
	City              string  `json:"city" binding:"required"`
	Province          string  `json:"province" binding:"required"`
	PostCode          string  `json:"post_code" binding:"required"`
}

type textSearchQuery struct {
	Q    string `form:"q"`
	Size int    `form:"size"`
}

func (h *PropertyHandler) List(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	opts := entity.PropertySearchOptions{
		City:                 q.City,
		OwnerID:              q.OwnerID,
		MinimumPricePerNight: q.MinimumPricePerNight,
		MaximumPricePerNight: q.MaximumPricePerNight,
		MinimumRating:        q.MinimumRating,
	}

	listings, err := h.Svc.Search(c.Request.Context(), opts, q.Limit)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]listingJSON, 0, len(listings))
	for _, l := range listings {
		out = append(out, toListingJSON(l))
	}
	response.Success(c, http.StatusOK, gin.H{"properties": out})
}

func (h *PropertyHandler) Create(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c.Request.Context())
	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), sess.UserID, application.CreatePropertyInput{
		Title:             req.Title,
		Description:       req.Description,
		ThumbnailPhotoURL: req.ThumbnailPhotoURL,
		CoverPhotoURL:     req.CoverPhotoURL,
		CostPerNight:      req.CostPerNight,
		ParkingSpaces:     req.ParkingSpaces,
		NumberOfBathrooms: req.NumberOfBathrooms,
		NumberOfBedrooms:  req.NumberOfBedrooms,
		Country:           req.Country,
		Street:            req.Street,
		City:              req.City,
		Province:          req.Province,
		PostCode:          req.PostCode,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"property": toPropertyJSON(*p)})
}

func (h *PropertyHandler) TextSearch(c *gin.Context) {
	var q textSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	props, err := h.Svc.TextSearch(c.Request.Context(), q.Q, q.Size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]propertyJSON, 0, len(props))
	for _, p := range props {
		out = append(out, toPropertyJSON(p))
	}
	response.Success(c, http.StatusOK, gin.H{"properties": out})
}

func (h *PropertyHandler) UploadPhoto(c *gin.Context) {
	sess, _ := middleware.SessionFrom(c.Request.Context())
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", map[string]string{"file": "is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadPhoto(c.Request.Context(), sess.UserID, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"url": url})
}
