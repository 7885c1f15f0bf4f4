package domain

import "time"

// GeoPoint is an explicit map location (replaces a free-form payload)
type GeoPoint struct {
	Lat float64
	Lng float64
}

// Salon represents a service provider publishing a bookable schedule.
// The record itself is managed outside the scheduling core; the core
// reads it for the owner, activity flags and the schedule config.
type Salon struct {
	ID      int64
	OwnerID int64

	Name    string
	Address string
	City    string
	State   string
	Zip     string

	MinServicePrice float64
	MaxServicePrice float64
	OfferStatus     string
	IsActive        bool
	Location        *GeoPoint

	Schedule ScheduleConfig

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AcceptsBookings returns true if the salon is visible and bookable
func (s *Salon) AcceptsBookings() bool {
	return s.IsActive && s.OfferStatus == OfferStatusActive
}
