package entity

import "time"

type Reservation struct {
	ID         int64
	GuestID    int64
	PropertyID int64
	StartDate  time.Time
	EndDate    time.Time
}

// GuestReservation is one row of a guest's reservation history:
// the reservation, the booked property and its average rating.
type GuestReservation struct {
	Reservation
	Title             string
	ThumbnailPhotoURL string
	CostPerNight      int64
	ParkingSpaces     int
	NumberOfBathrooms int
	NumberOfBedrooms  int
	AverageRating     *float64
}
