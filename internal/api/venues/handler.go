package venuesapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"booking-app/database"
	"booking-app/internal/domain/shows"
	"booking-app/internal/domain/venues"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustVenueID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return 0, false
	}
	return uint(id), true
}

// GET /venues
func ListVenues(c *gin.Context) {
	locs, err := distinctVenueLocations(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load venues"})
		return
	}

	out := ListVenuesResponse{Areas: make([]AreaDTO, 0, len(locs))}
	for _, loc := range locs {
		vs, err := venuesAt(database.DB, loc.City, loc.State)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load venues"})
			return
		}
		out.Areas = append(out.Areas, AreaDTO{
			City:   loc.City,
			State:  loc.State,
			Venues: buildVenueRefs(vs),
		})
	}

	c.JSON(http.StatusOK, out)
}

// POST /venues/search
func SearchVenues(c *gin.Context) {
	term := c.PostForm("search_term")

	vs, err := searchVenuesByName(database.DB, term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, buildSearchResponse(vs))
}

// GET /venues/:id
func ShowVenue(c *gin.Context) {
	id, ok := mustVenueID(c)
	if !ok {
		return
	}

	venue, err := venueByID(database.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load venue"})
		return
	}

	past, upcoming, err := showsForVenue(database.DB, id, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load venue shows"})
		return
	}

	c.JSON(http.StatusOK, buildVenueDetail(*venue, past, upcoming))
}

// GET /venues/create
func NewVenueForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"form": VenueInput{Genres: []string{}}})
}

// POST /venues/create
func CreateVenue(c *gin.Context) {
	var in VenueInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// checkbox: key present means checked, absent means false
	_, in.SeekingTalent = c.GetPostForm("seeking_talent")

	venue := venues.Venue{
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Address:            in.Address,
		Phone:              in.Phone,
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		WebsiteLink:        in.WebsiteLink,
		Genres:             in.Genres,
		SeekingTalent:      in.SeekingTalent,
		SeekingDescription: in.SeekingDescription,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&venue).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("An error occurred. Venue %s could not be listed.", in.Name),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Venue %s was successfully listed!", venue.Name),
		"venue":   venue,
	})
}

// DELETE /venues/:id
func DeleteVenue(c *gin.Context) {
	id, ok := mustVenueID(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var venue venues.Venue
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}
		// the venue's shows go with it
		if err := tx.Where("venue_id = ?", id).Delete(&shows.Show{}).Error; err != nil {
			return err
		}
		return tx.Delete(&venue).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed attempt to delete venue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Venue was deleted successfully"})
}

// GET /venues/:id/edit
func EditVenueForm(c *gin.Context) {
	id, ok := mustVenueID(c)
	if !ok {
		return
	}

	venue, err := venueByID(database.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load venue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"venue": venue})
}

// POST /venues/:id/edit
// Full overwrite: every mutable attribute is replaced in one transaction.
func EditVenue(c *gin.Context) {
	id, ok := mustVenueID(c)
	if !ok {
		return
	}

	var in VenueInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, in.SeekingTalent = c.GetPostForm("seeking_talent")

	var venue venues.Venue
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}
		venue.Name = in.Name
		venue.City = in.City
		venue.State = in.State
		venue.Address = in.Address
		venue.Phone = in.Phone
		venue.ImageLink = in.ImageLink
		venue.FacebookLink = in.FacebookLink
		venue.WebsiteLink = in.WebsiteLink
		venue.Genres = in.Genres
		venue.SeekingTalent = in.SeekingTalent
		venue.SeekingDescription = in.SeekingDescription
		return tx.Save(&venue).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sorry, Venue failed to be edited."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Venue %s was successfully edited", venue.Name),
		"venue":   venue,
	})
}
