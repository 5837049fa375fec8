package handlers

import (
	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

type userJSON struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserJSON(u *entity.User) userJSON {
	return userJSON{ID: u.ID, Name: u.Name, Email: u.Email}
}

// propertyJSON is a listing as served. cost_per_night is in cents.
type propertyJSON struct {
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

func toPropertyJSON(p entity.Property) propertyJSON {
	return propertyJSON{
		ID: p.ID, OwnerID: p.OwnerID, Title: p.Title, Description: p.Description,
		ThumbnailPhotoURL: p.ThumbnailPhotoURL, CoverPhotoURL: p.CoverPhotoURL, CostPerNight: p.CostPerNight,
		ParkingSpaces: p.ParkingSpaces, NumberOfBathrooms: p.NumberOfBathrooms, NumberOfBedrooms: p.NumberOfBedrooms,
		Country: p.Country, Street: p.Street, City: p.City, Province: p.Province, PostCode: p.PostCode, Active: p.Active,
	}
}

// listingJSON always carries average_rating, null for unreviewed properties.
type listingJSON struct {
	propertyJSON
	AverageRating *float64 `json:"average_rating"`
}

func toListingJSON(l entity.PropertyListing) listingJSON {
	return listingJSON{propertyJSON: toPropertyJSON(l.Property), AverageRating: l.AverageRating}
}

type reservationJSON struct {
	ID                int64    `json:"id"`
	GuestID           int64    `json:"guest_id"`
	PropertyID        int64    `json:"property_id"`
	StartDate         string   `json:"start_date"`
	EndDate           string   `json:"end_date"`
	Title             string   `json:"title"`
	ThumbnailPhotoURL string   `json:"thumbnail_photo_url"`
	CostPerNight      int64    `json:"cost_per_night"`
	ParkingSpaces     int      `json:"parking_spaces"`
	NumberOfBathrooms int      `json:"number_of_bathrooms"`
	NumberOfBedrooms  int      `json:"number_of_bedrooms"`
	AverageRating     *float64 `json:"average_rating"`
}

func toReservationJSON(r entity.GuestReservation) reservationJSON {
	return reservationJSON{
		ID: r.ID, GuestID: r.GuestID, PropertyID: r.PropertyID,
		StartDate: r.StartDate.Format(dateLayout), EndDate: r.EndDate.Format(dateLayout),
		Title: r.Title, ThumbnailPhotoURL: r.ThumbnailPhotoURL, CostPerNight: r.CostPerNight,
		ParkingSpaces: r.ParkingSpaces, NumberOfBathrooms: r.NumberOfBathrooms, NumberOfBedrooms: r.NumberOfBedrooms,
		AverageRating: r.AverageRating,
	}
}
