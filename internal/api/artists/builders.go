package artistsapi

import (
	"booking-app/internal/domain/artists"
	"booking-app/internal/domain/shows"
)

func buildArtistRefs(as []artists.Artist) []ArtistRefDTO {
	out := make([]ArtistRefDTO, 0, len(as))
	for _, a := range as {
		out = append(out, ArtistRefDTO{ID: a.ID, Name: a.Name})
	}
	return out
}

func buildSearchResponse(as []artists.Artist) SearchArtistsResponse {
	return SearchArtistsResponse{Count: len(as), Data: buildArtistRefs(as)}
}

func buildArtistShows(ss []shows.Show) []ArtistShowDTO {
	out := make([]ArtistShowDTO, 0, len(ss))
	for _, s := range ss {
		out = append(out, ArtistShowDTO{
			VenueID:        s.VenueID,
			VenueName:      s.Venue.Name,
			VenueImageLink: s.Venue.ImageLink,
			StartTime:      s.StartTime.Format(shows.DetailTimeLayout),
		})
	}
	return out
}

func buildArtistDetail(a artists.Artist, past, upcoming []shows.Show) ArtistDetailDTO {
	p := buildArtistShows(past)
	u := buildArtistShows(upcoming)
	return ArtistDetailDTO{
		Artist:           a,
		PastShows:        p,
		UpcomingShows:    u,
		PastShowsNum:     len(p),
		UpcomingShowsNum: len(u),
	}
}
