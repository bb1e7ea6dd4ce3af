package artists

import (
	"booking-app/internal/domain/genres"
)

// Artist is a bookable performer. It carries both seeking flags the source
// schema has: seeking_venue is the one the artist forms read and write
// (an artist looks for venues); seeking_talent is kept so existing rows
// round-trip.
type Artist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"not null" json:"name"`
	City  string `gorm:"size:120;not null" json:"city"`
	State string `gorm:"size:120;not null" json:"state"`
	Phone string `gorm:"size:120;not null" json:"phone"`

	ImageLink    string `gorm:"size:500;not null" json:"image_link"`
	FacebookLink string `gorm:"size:120;not null" json:"facebook_link"`
	WebsiteLink  string `gorm:"size:500;not null" json:"website_link"`

	Genres genres.List `gorm:"type:text;not null" json:"genres"`

	SeekingTalent      bool   `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingVenue       bool   `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string `gorm:"size:120;not null" json:"seeking_description"`
}

func (Artist) TableName() string { return "artist" }
