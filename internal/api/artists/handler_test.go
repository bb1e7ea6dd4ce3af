package artistsapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"booking-app/database"
	"booking-app/internal/app/http/middleware"
	"booking-app/internal/domain/artists"
	"booking-app/internal/domain/genres"
	"booking-app/internal/domain/shows"
	"booking-app/internal/domain/venues"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db
	return db
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SanitizeFormInputMiddleware())
	r.GET("/artists", ListArtists)
	r.POST("/artists/search", SearchArtists)
	r.GET("/artists/create", NewArtistForm)
	r.POST("/artists/create", CreateArtist)
	r.GET("/artists/:id", ShowArtist)
	r.GET("/artists/:id/edit", EditArtistForm)
	r.POST("/artists/:id/edit", EditArtist)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedArtist(t *testing.T, db *gorm.DB, name string) artists.Artist {
	t.Helper()
	a := artists.Artist{
		Name:         name,
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-123-5000",
		ImageLink:    "https://example.com/artist.jpg",
		FacebookLink: "https://facebook.com/artist",
		WebsiteLink:  "https://example.com/artist",
		Genres:       genres.List{"Rock n Roll"},
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func seedVenue(t *testing.T, db *gorm.DB, name string) venues.Venue {
	t.Helper()
	v := venues.Venue{
		Name:               name,
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		ImageLink:          "https://example.com/venue.jpg",
		FacebookLink:       "https://facebook.com/venue",
		WebsiteLink:        "https://example.com",
		Genres:             genres.List{"Jazz"},
		SeekingDescription: "",
	}
	require.NoError(t, db.Create(&v).Error)
	return v
}

func validArtistForm() url.Values {
	return url.Values{
		"name":          {"Guns N Petals"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"phone":         {"326-123-5000"},
		"image_link":    {"https://example.com/gnp.jpg"},
		"facebook_link": {"https://facebook.com/GunsNPetals"},
		"website_link":  {"https://gunsnpetalsband.com"},
		"genres":        {"Rock n Roll"},
	}
}

func TestListArtists(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter()

	a1 := seedArtist(t, db, "Guns N Petals")
	a2 := seedArtist(t, db, "Matt Quevado")

	w := get(r, "/artists")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListArtistsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []ArtistRefDTO{
		{ID: a1.ID, Name: "Guns N Petals"},
		{ID: a2.ID, Name: "Matt Quevado"},
	}, resp.Artists)
}

func TestSearchArtists(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter()

	seedArtist(t, db, "Guns N Petals")
	seedArtist(t, db, "Matt Quevado")
	band := seedArtist(t, db, "The Wild Sax Band")

	w := postForm(r, "/artists/search", url.Values{"search_term": {"A"}})
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchArtistsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Count)

	w = postForm(r, "/artists/search", url.Values{"search_term": {"band"}})
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, []ArtistRefDTO{{ID: band.ID, Name: band.Name}}, resp.Data)
}

func TestShowsForArtistBoundary(t *testing.T) {
	db := setupTestDB(t)

	a := seedArtist(t, db, "Guns N Petals")
	v := seedVenue(t, db, "The Musical Hop")

	now := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)
	before := shows.Show{VenueID: v.ID, ArtistID: a.ID, StartTime: now.Add(-time.Minute)}
	atNow := shows.Show{VenueID: v.ID, ArtistID: a.ID, StartTime: now}
	require.NoError(t, db.Create(&before).Error)
	require.NoError(t, db.Create(&atNow).Error)

	past, upcoming, err := showsForArtist(db, a.ID, now)
	require.NoError(t, err)

	require.Len(t, past, 1)
	require.Len(t, upcoming, 1)
	assert.Equal(t, before.ID, past[0].ID)
	assert.Equal(t, atNow.ID, upcoming[0].ID)
}

func TestShowArtistDetail(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter()

	a := seedArtist(t, db, "Guns N Petals")
	v := seedVenue(t, db, "The Musical Hop")

	past := shows.Show{VenueID: v.ID, ArtistID: a.ID, StartTime: time.Now().Add(-48 * time.Hour)}
	require.NoError(t, db.Create(&past).Error)

	w := get(r, "/artists/"+strconv.Itoa(int(a.ID)))
	require.Equal(t, http.StatusOK, w.Code)

	var detail ArtistDetailDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))

	assert.Equal(t, a.Name, detail.Name)
	assert.Equal(t, 1, detail.PastShowsNum)
	assert.Equal(t, 0, detail.UpcomingShowsNum)
	require.Len(t, detail.PastShows, 1)
	assert.Equal(t, v.ID, detail.PastShows[0].VenueID)
	assert.Equal(t, v.Name, detail.PastShows[0].VenueName)
	assert.Equal(t, v.ImageLink, detail.PastShows[0].VenueImageLink)
	assert.Equal(t, past.StartTime.Format(shows.DetailTimeLayout), detail.PastShows[0].StartTime)
}

func TestShowArtistNotFound(t *testing.T) {
	setupTestDB(t)
	r := newRouter()

	w := get(r, "/artists/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateArtistRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter()

	form := validArtistForm()
	form.Set("seeking_description", "Looking for shows to perform")
	form.Set("seeking_venue", "y")

	w := postForm(r, "/artists/create", form)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Artist Guns N Petals was successfully listed!")

	var created struct {
		Artist artists.Artist `json:"artist"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.Artist.ID)

	var fetched artists.Artist
	require.NoError(t, db.First(&fetched, created.Artist.ID).Error)
	assert.Equal(t, "Guns N Petals", fetched.Name)
	assert.Equal(t, "San Francisco", fetched.City)
	// state comes from the state field, never from city
	assert.Equal(t, "CA", fetched.State)
	assert.Equal(t, "326-123-5000", fetched.Phone)
	assert.Equal(t, genres.List{"Rock n Roll"}, fetched.Genres)
	assert.True(t, fetched.SeekingVenue)
	assert.False(t, fetched.SeekingTalent)
	assert.Equal(t, "Looking for shows to perform", fetched.SeekingDescription)
}

func TestCreateArtistMissingFieldPersistsNothing(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter()

	form := validArtistForm()
	form.Del("name")

	w := postForm(r, "/artists/create", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&artists.Artist{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEditArtistFullOverwrite(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter()

	a := seedArtist(t, db, "Old Name")

	form := url.Values{
		"name":                {"Matt Quevado"},
		"city":                {"New York"},
		"state":               {"NY"},
		"phone":               {"300-400-5000"},
		"image_link":          {"https://example.com/matt.jpg"},
		"facebook_link":       {"https://facebook.com/mattquevado"},
		"website_link":        {"https://mattquevado.com"},
		"genres":              {"Jazz", "Classical"},
		"seeking_description": {""},
	}

	w := postForm(r, "/artists/"+strconv.Itoa(int(a.ID))+"/edit", form)
	require.Equal(t, http.StatusOK, w.Code)

	var updated artists.Artist
	require.NoError(t, db.First(&updated, a.ID).Error)
	assert.Equal(t, "Matt Quevado", updated.Name)
	assert.Equal(t, "New York", updated.City)
	assert.Equal(t, "NY", updated.State)
	assert.Equal(t, genres.List{"Jazz", "Classical"}, updated.Genres)
	assert.False(t, updated.SeekingVenue)
}

func TestEditArtistNotFound(t *testing.T) {
	setupTestDB(t)
	r := newRouter()

	w := postForm(r, "/artists/999/edit", validArtistForm())
	assert.Equal(t, http.StatusNotFound, w.Code)
}
