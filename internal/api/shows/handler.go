package showsapi

import (
	"errors"
	"net/http"

	"booking-app/database"
	"booking-app/internal/domain/artists"
	"booking-app/internal/domain/shows"
	"booking-app/internal/domain/venues"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /shows
func ListShows(c *gin.Context) {
	ss, err := allShows(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shows"})
		return
	}

	out := ListShowsResponse{Shows: make([]ShowListingDTO, 0, len(ss))}
	for _, s := range ss {
		out.Shows = append(out.Shows, ShowListingDTO{
			VenueID:         s.VenueID,
			VenueName:       s.Venue.Name,
			ArtistID:        s.ArtistID,
			ArtistName:      s.Artist.Name,
			ArtistImageLink: s.Artist.ImageLink,
			StartTime:       s.StartTime.Format(shows.ListingTimeLayout),
		})
	}

	c.JSON(http.StatusOK, out)
}

// GET /shows/create
func NewShowForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"form": ShowInput{}})
}

// POST /shows/create
func CreateShow(c *gin.Context) {
	var in ShowInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	show := shows.Show{
		ArtistID:  in.ArtistID,
		VenueID:   in.VenueID,
		StartTime: in.StartTime,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// both references must exist before the booking is written
		if err := tx.First(&artists.Artist{}, in.ArtistID).Error; err != nil {
			return err
		}
		if err := tx.First(&venues.Venue{}, in.VenueID).Error; err != nil {
			return err
		}
		return tx.Create(&show).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Artist or venue does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred. Show could not be listed."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Show was successfully listed!",
		"show":    show,
	})
}
