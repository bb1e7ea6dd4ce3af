package venuesapi

import (
	"time"

	"booking-app/internal/domain/shows"
	"booking-app/internal/domain/venues"

	"gorm.io/gorm"
)

type venueLocation struct {
	City  string
	State string
}

// distinctVenueLocations returns the deduplicated (city, state) pairs ordered
// by city descending. City-descending is the contract for the venues listing,
// not a natural ordering.
func distinctVenueLocations(db *gorm.DB) ([]venueLocation, error) {
	var locs []venueLocation
	err := db.Model(&venues.Venue{}).
		Distinct("city", "state").
		Order("city DESC").
		Find(&locs).Error
	return locs, err
}

// venuesAt matches city and state exactly, case included.
func venuesAt(db *gorm.DB, city, state string) ([]venues.Venue, error) {
	var vs []venues.Venue
	err := db.Where("city = ? AND state = ?", city, state).
		Order("id ASC").
		Find(&vs).Error
	return vs, err
}

// searchVenuesByName does a case-insensitive substring match on name. An
// empty term matches every venue. Ordered by id so repeated calls iterate the
// same way.
func searchVenuesByName(db *gorm.DB, term string) ([]venues.Venue, error) {
	var vs []venues.Venue
	err := db.Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%").
		Order("id ASC").
		Find(&vs).Error
	return vs, err
}

func venueByID(db *gorm.DB, id uint) (*venues.Venue, error) {
	var v venues.Venue
	if err := db.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// showsForVenue splits the venue's shows around now. Show.Upcoming owns the
// boundary: strictly earlier start times are past, everything else (a show
// starting exactly now included) is upcoming. Artists come preloaded for
// display.
func showsForVenue(db *gorm.DB, venueID uint, now time.Time) (past, upcoming []shows.Show, err error) {
	var all []shows.Show
	err = db.Preload("Artist").
		Where("venue_id = ?", venueID).
		Order("start_time ASC").
		Find(&all).Error
	if err != nil {
		return nil, nil, err
	}
	for _, s := range all {
		if s.Upcoming(now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming, nil
}
