package shows

import (
	"time"

	"booking-app/internal/domain/artists"
	"booking-app/internal/domain/venues"
)

// Fixed display layouts. These are literal patterns, never locale-aware, so a
// given start_time renders identically on every host.
const (
	DetailTimeLayout  = "01/02/2006, 15:04"
	ListingTimeLayout = "2006-01-02 15:04:05"
)

// Show is one booking: one artist at one venue at one start time. Both
// references are mandatory and cascade when their owner is deleted, so no
// orphan shows survive.
type Show struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VenueID uint         `gorm:"not null;index" json:"venue_id"`
	Venue   venues.Venue `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ArtistID uint           `gorm:"not null;index" json:"artist_id"`
	Artist   artists.Artist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
}

func (Show) TableName() string { return "show" }

// Upcoming reports whether the show has not yet started at the given instant.
// A show starting exactly at now counts as upcoming, not past.
func (s Show) Upcoming(now time.Time) bool {
	return !s.StartTime.Before(now)
}
