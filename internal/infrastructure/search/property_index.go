package search

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/oksasatya/lightbnb-api/internal/domain/apperr"
	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
)

const (
	requestTimeout = 3 * time.Second
	defaultSize    = 10
	maxSize        = 50
)

// NewESClient creates an Elasticsearch client with sane defaults and optional basic auth.
func NewESClient(addrs []string, username, password string) (*elasticsearch.Client, error) {
	cfg := elasticsearch.Config{
		Addresses: addrs,
		Username:  username,
		Password:  password,
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   10,
			ResponseHeaderTimeout: 5 * time.Second,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			DialContext:           (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		},
	}
	return elasticsearch.NewClient(cfg)
}

// PropertyIndex mirrors listings into Elasticsearch for free-text search.
// Calls go through a circuit breaker so a dead cluster fails fast.
type PropertyIndex struct {
	es     *elasticsearch.Client
	index  string
	cb     *gobreaker.CircuitBreaker
	logger *logrus.Logger
}

func NewPropertyIndex(es *elasticsearch.Client, index string, logger *logrus.Logger) *PropertyIndex {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "elasticsearch",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.WithFields(logrus.Fields{"breaker": name, "from": from.String(), "to": to.String()}).Warn("circuit breaker state changed")
			}
		},
	})
	return &PropertyIndex{es: es, index: index, cb: cb, logger: logger}
}

type propertyDoc struct {
	ID                int64  `json:"id"`
	OwnerID           int64  `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night"`
	ParkingSpaces     int    `json:"parking_spaces"`
	NumberOfBathrooms int    `json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms"`
	Country           string `json:"country"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
	Active            bool   `json:"active"`
}

func toDoc(p entity.Property) propertyDoc {
	return propertyDoc{
		ID: p.ID, OwnerID: p.OwnerID, Title: p.Title, Description: p.Description,
		ThumbnailPhotoURL: p.ThumbnailPhotoURL, CoverPhotoURL: p.CoverPhotoURL, CostPerNight: p.CostPerNight,
		ParkingSpaces: p.ParkingSpaces, NumberOfBathrooms: p.NumberOfBathrooms, NumberOfBedrooms: p.NumberOfBedrooms,
		Country: p.Country, Street: p.Street, City: p.City, Province: p.Province, PostCode: p.PostCode, Active: p.Active,
	}
}

func (d propertyDoc) entity() entity.Property {
	return entity.Property{
		ID: d.ID, OwnerID: d.OwnerID, Title: d.Title, Description: d.Description,
		ThumbnailPhotoURL: d.ThumbnailPhotoURL, CoverPhotoURL: d.CoverPhotoURL, CostPerNight: d.CostPerNight,
		ParkingSpaces: d.ParkingSpaces, NumberOfBathrooms: d.NumberOfBathrooms, NumberOfBedrooms: d.NumberOfBedrooms,
		Country: d.Country, Street: d.Street, City: d.City, Province: d.Province, PostCode: d.PostCode, Active: d.Active,
	}
}

// Index upserts p under its id.
func (i *PropertyIndex) Index(ctx context.Context, p entity.Property) error {
	b, err := json.Marshal(toDoc(p))
	if err != nil {
		return err
	}
	_, err = i.cb.Execute(func() (interface{}, error) {
		c, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		req := esapi.IndexRequest{
			Index:      i.index,
			DocumentID: strconv.FormatInt(p.ID, 10),
			Body:       strings.NewReader(string(b)),
			Refresh:    "false",
		}
		res, err := req.Do(c, i.es)
		if err != nil {
			return nil, err
		}
		defer func() { _ = res.Body.Close() }()
		if res.IsError() {
			return nil, fmt.Errorf("index property %d: %s", p.ID, res.Status())
		}
		return nil, nil
	})
	return wrap("index property", err)
}

// Search runs a multi_match query over the text fields of indexed listings.
func (i *PropertyIndex) Search(ctx context.Context, q string, size int) ([]entity.Property, error) {
	switch {
	case size <= 0:
		size = defaultSize
	case size > maxSize:
		size = maxSize
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description", "city", "province", "country"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	out, err := i.cb.Execute(func() (interface{}, error) {
		c, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		res, err := i.es.Search(
			i.es.Search.WithContext(c),
			i.es.Search.WithIndex(i.index),
			i.es.Search.WithBody(strings.NewReader(string(b))),
		)
		if err != nil {
			return nil, err
		}
		defer func() { _ = res.Body.Close() }()
		if res.IsError() {
			return nil, fmt.Errorf("search properties: %s", res.Status())
		}

		var parsed struct {
			Hits struct {
				Hits []struct {
					Source propertyDoc `json:"_source"`
				} `json:"hits"`
			} `json:"hits"`
		}
		if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
			return nil, err
		}
		props := make([]entity.Property, 0, len(parsed.Hits.Hits))
		for _, h := range parsed.Hits.Hits {
			props = append(props, h.Source.entity())
		}
		return props, nil
	})
	if err != nil {
		return nil, wrap("search properties", err)
	}
	return out.([]entity.Property), nil
}

func wrap(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%s: %w: %w", op, apperr.ErrUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, apperr.ErrTimeout)
	default:
		return fmt.Errorf("%s: %w: %w", op, apperr.ErrDataAccess, err)
	}
}
