package venuesapi

import (
	"booking-app/internal/domain/venues"

	// registers the nonblank binding rule
	_ "booking-app/internal/app/http/validation"
)

// VenueInput is the validated create/edit form. The seeking_talent checkbox is
// presence-based on the wire (the key is simply absent when unchecked), so it
// is filled in by the handler after binding; absent means false.
type VenueInput struct {
	Name               string   `form:"name" json:"name" binding:"required,nonblank"`
	City               string   `form:"city" json:"city" binding:"required"`
	State              string   `form:"state" json:"state" binding:"required"`
	Address            string   `form:"address" json:"address" binding:"required"`
	Phone              string   `form:"phone" json:"phone" binding:"required"`
	ImageLink          string   `form:"image_link" json:"image_link" binding:"required"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" binding:"required"`
	WebsiteLink        string   `form:"website_link" json:"website_link" binding:"required"`
	Genres             []string `form:"genres" json:"genres" binding:"required,min=1"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
	SeekingTalent      bool     `form:"-" json:"seeking_talent"`
}

type VenueRefDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AreaDTO struct {
	City   string        `json:"city"`
	State  string        `json:"state"`
	Venues []VenueRefDTO `json:"venues"`
}

type ListVenuesResponse struct {
	Areas []AreaDTO `json:"areas"`
}

type SearchVenuesResponse struct {
	Count int           `json:"count"`
	Data  []VenueRefDTO `json:"data"`
}

// VenueShowDTO is one show on a venue page, seen from the venue's side.
type VenueShowDTO struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueDetailDTO is the full venue record merged with its show history.
type VenueDetailDTO struct {
	venues.Venue
	PastShows        []VenueShowDTO `json:"past_shows"`
	UpcomingShows    []VenueShowDTO `json:"upcoming_shows"`
	PastShowsNum     int            `json:"past_shows_num"`
	UpcomingShowsNum int            `json:"upcoming_shows_num"`
}
