package artistsapi

import (
	"booking-app/internal/domain/artists"

	// registers the nonblank binding rule
	_ "booking-app/internal/app/http/validation"
)

// ArtistInput is the validated create/edit form. The seeking_venue checkbox
// is presence-based on the wire, so the handler fills it in after binding;
// absent means false. Artists seek venues, so the form carries seeking_venue
// and never touches the stored seeking_talent column.
type ArtistInput struct {
	Name               string   `form:"name" json:"name" binding:"required,nonblank"`
	City               string   `form:"city" json:"city" binding:"required"`
	State              string   `form:"state" json:"state" binding:"required"`
	Phone              string   `form:"phone" json:"phone" binding:"required"`
	ImageLink          string   `form:"image_link" json:"image_link" binding:"required"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" binding:"required"`
	WebsiteLink        string   `form:"website_link" json:"website_link" binding:"required"`
	Genres             []string `form:"genres" json:"genres" binding:"required,min=1"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
	SeekingVenue       bool     `form:"-" json:"seeking_venue"`
}

type ArtistRefDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ListArtistsResponse struct {
	Artists []ArtistRefDTO `json:"artists"`
}

type SearchArtistsResponse struct {
	Count int            `json:"count"`
	Data  []ArtistRefDTO `json:"data"`
}

// ArtistShowDTO is one show on an artist page, seen from the artist's side.
type ArtistShowDTO struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ArtistDetailDTO is the full artist record merged with its show history.
type ArtistDetailDTO struct {
	artists.Artist
	PastShows        []ArtistShowDTO `json:"past_shows"`
	UpcomingShows    []ArtistShowDTO `json:"upcoming_shows"`
	PastShowsNum     int             `json:"past_shows_num"`
	UpcomingShowsNum int             `json:"upcoming_shows_num"`
}
