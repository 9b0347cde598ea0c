package catalog

import (
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes registers the public read-only catalog endpoints
func SetupCatalogRoutes(api *gin.RouterGroup, controller *Controller) {
	api.GET("/showtimes/:id", controller.GetShowTime)

	films := api.Group("/films")
	{
		films.GET("/:id", controller.GetFilm)
		films.GET("/:id/showtimes", controller.GetFilmShowTimes)
	}
}
