package routes

import (
	artistsapi "booking-app/internal/api/artists"
	showsapi "booking-app/internal/api/shows"
	venuesapi "booking-app/internal/api/venues"
	"booking-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "app": "booking directory"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeFormInputMiddleware())

	// Venues
	public.GET("/venues", venuesapi.ListVenues)
	public.POST("/venues/search", venuesapi.SearchVenues)
	public.GET("/venues/create", venuesapi.NewVenueForm)
	public.POST("/venues/create", venuesapi.CreateVenue)
	public.GET("/venues/:id", venuesapi.ShowVenue)
	public.DELETE("/venues/:id", venuesapi.DeleteVenue)
	public.GET("/venues/:id/edit", venuesapi.EditVenueForm)
	public.POST("/venues/:id/edit", venuesapi.EditVenue)

	// Artists (no delete route: artists are only removed out of band)
	public.GET("/artists", artistsapi.ListArtists)
	public.POST("/artists/search", artistsapi.SearchArtists)
	public.GET("/artists/create", artistsapi.NewArtistForm)
	public.POST("/artists/create", artistsapi.CreateArtist)
	public.GET("/artists/:id", artistsapi.ShowArtist)
	public.GET("/artists/:id/edit", artistsapi.EditArtistForm)
	public.POST("/artists/:id/edit", artistsapi.EditArtist)

	// Shows
	public.GET("/shows", showsapi.ListShows)
	public.GET("/shows/create", showsapi.NewShowForm)
	public.POST("/shows/create", showsapi.CreateShow)
}
