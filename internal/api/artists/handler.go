package artistsapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"booking-app/database"
	"booking-app/internal/domain/artists"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustArtistID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return 0, false
	}
	return uint(id), true
}

// GET /artists
func ListArtists(c *gin.Context) {
	as, err := allArtists(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}

	c.JSON(http.StatusOK, ListArtistsResponse{Artists: buildArtistRefs(as)})
}

// POST /artists/search
func SearchArtists(c *gin.Context) {
	term := c.PostForm("search_term")

	as, err := searchArtistsByName(database.DB, term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, buildSearchResponse(as))
}

// GET /artists/:id
func ShowArtist(c *gin.Context) {
	id, ok := mustArtistID(c)
	if !ok {
		return
	}

	artist, err := artistByID(database.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist"})
		return
	}

	past, upcoming, err := showsForArtist(database.DB, id, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist shows"})
		return
	}

	c.JSON(http.StatusOK, buildArtistDetail(*artist, past, upcoming))
}

// GET /artists/create
func NewArtistForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"form": ArtistInput{Genres: []string{}}})
}

// POST /artists/create
func CreateArtist(c *gin.Context) {
	var in ArtistInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// checkbox: key present means checked, absent means false
	_, in.SeekingVenue = c.GetPostForm("seeking_venue")

	artist := artists.Artist{
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Phone:              in.Phone,
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		WebsiteLink:        in.WebsiteLink,
		Genres:             in.Genres,
		SeekingVenue:       in.SeekingVenue,
		SeekingDescription: in.SeekingDescription,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&artist).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("An error occurred. Artist %s could not be listed.", in.Name),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Artist %s was successfully listed!", artist.Name),
		"artist":  artist,
	})
}

// GET /artists/:id/edit
func EditArtistForm(c *gin.Context) {
	id, ok := mustArtistID(c)
	if !ok {
		return
	}

	artist, err := artistByID(database.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"artist": artist})
}

// POST /artists/:id/edit
// Full overwrite: every mutable attribute is replaced in one transaction.
func EditArtist(c *gin.Context) {
	id, ok := mustArtistID(c)
	if !ok {
		return
	}

	var in ArtistInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	_, in.SeekingVenue = c.GetPostForm("seeking_venue")

	var artist artists.Artist
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artist, id).Error; err != nil {
			return err
		}
		artist.Name = in.Name
		artist.City = in.City
		artist.State = in.State
		artist.Phone = in.Phone
		artist.ImageLink = in.ImageLink
		artist.FacebookLink = in.FacebookLink
		artist.WebsiteLink = in.WebsiteLink
		artist.Genres = in.Genres
		artist.SeekingVenue = in.SeekingVenue
		artist.SeekingDescription = in.SeekingDescription
		return tx.Save(&artist).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("Sorry, %s failed to be edited.", in.Name),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Artist %s was successfully edited!", artist.Name),
		"artist":  artist,
	})
}
