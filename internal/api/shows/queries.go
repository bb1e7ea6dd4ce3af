package showsapi

import (
	"booking-app/internal/domain/shows"

	"gorm.io/gorm"
)

// allShows loads every booking with its artist and venue for display, soonest
// start time first.
func allShows(db *gorm.DB) ([]shows.Show, error) {
	var ss []shows.Show
	err := db.Preload("Artist").
		Preload("Venue").
		Order("start_time ASC").
		Find(&ss).Error
	return ss, err
}
