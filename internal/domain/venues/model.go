package venues

import (
	"booking-app/internal/domain/genres"
)

// Venue is a bookable physical location. Every descriptive column is NOT NULL:
// the source schema requires a value even for semantically optional text
// (seeking_description uses "" as "none").
type Venue struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"not null" json:"name"`
	City    string `gorm:"size:120;not null;index:idx_venue_city_state,priority:1" json:"city"`
	State   string `gorm:"size:120;not null;index:idx_venue_city_state,priority:2" json:"state"`
	Address string `gorm:"size:120;not null" json:"address"`
	Phone   string `gorm:"size:120;not null" json:"phone"`

	ImageLink    string `gorm:"size:500;not null" json:"image_link"`
	FacebookLink string `gorm:"size:120;not null" json:"facebook_link"`
	WebsiteLink  string `gorm:"size:500;not null" json:"website_link"`

	Genres genres.List `gorm:"type:text;not null" json:"genres"`

	SeekingTalent      bool   `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string `gorm:"size:120;not null" json:"seeking_description"`
}

func (Venue) TableName() string { return "venue" }
