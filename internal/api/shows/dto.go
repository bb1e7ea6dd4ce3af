package showsapi

import "time"

// ShowInput is the validated booking form. Both references must resolve to
// existing rows before anything is written.
type ShowInput struct {
	ArtistID  uint      `form:"artist_id" json:"artist_id" binding:"required"`
	VenueID   uint      `form:"venue_id" json:"venue_id" binding:"required"`
	StartTime time.Time `form:"start_time" json:"start_time" time_format:"2006-01-02 15:04:05" time_utc:"1" binding:"required"`
}

// ShowListingDTO is one row of the shows page.
type ShowListingDTO struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

type ListShowsResponse struct {
	Shows []ShowListingDTO `json:"shows"`
}
