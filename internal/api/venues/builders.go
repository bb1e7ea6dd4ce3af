package venuesapi

import (
	"booking-app/internal/domain/shows"
	"booking-app/internal/domain/venues"
)

func buildVenueRefs(vs []venues.Venue) []VenueRefDTO {
	out := make([]VenueRefDTO, 0, len(vs))
	for _, v := range vs {
		out = append(out, VenueRefDTO{ID: v.ID, Name: v.Name})
	}
	return out
}

func buildSearchResponse(vs []venues.Venue) SearchVenuesResponse {
	return SearchVenuesResponse{Count: len(vs), Data: buildVenueRefs(vs)}
}

func buildVenueShows(ss []shows.Show) []VenueShowDTO {
	out := make([]VenueShowDTO, 0, len(ss))
	for _, s := range ss {
		out = append(out, VenueShowDTO{
			ArtistID:        s.ArtistID,
			ArtistName:      s.Artist.Name,
			ArtistImageLink: s.Artist.ImageLink,
			StartTime:       s.StartTime.Format(shows.DetailTimeLayout),
		})
	}
	return out
}

func buildVenueDetail(v venues.Venue, past, upcoming []shows.Show) VenueDetailDTO {
	p := buildVenueShows(past)
	u := buildVenueShows(upcoming)
	return VenueDetailDTO{
		Venue:            v,
		PastShows:        p,
		UpcomingShows:    u,
		PastShowsNum:     len(p),
		UpcomingShowsNum: len(u),
	}
}
