package artistsapi

import (
	"time"

	"booking-app/internal/domain/artists"
	"booking-app/internal/domain/shows"

	"gorm.io/gorm"
)

func allArtists(db *gorm.DB) ([]artists.Artist, error) {
	var as []artists.Artist
	err := db.Order("id ASC").Find(&as).Error
	return as, err
}

// searchArtistsByName does a case-insensitive substring match on name. An
// empty term matches every artist. Ordered by id so repeated calls iterate
// the same way.
func searchArtistsByName(db *gorm.DB, term string) ([]artists.Artist, error) {
	var as []artists.Artist
	err := db.Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%").
		Order("id ASC").
		Find(&as).Error
	return as, err
}

func artistByID(db *gorm.DB, id uint) (*artists.Artist, error) {
	var a artists.Artist
	if err := db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// showsForArtist splits the artist's shows around now with the same boundary
// as the venue page, owned by Show.Upcoming: strictly earlier is past,
// exactly-now is upcoming. Venues come preloaded for display.
func showsForArtist(db *gorm.DB, artistID uint, now time.Time) (past, upcoming []shows.Show, err error) {
	var all []shows.Show
	err = db.Preload("Venue").
		Where("artist_id = ?", artistID).
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
