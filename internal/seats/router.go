package seats

import (
	"github.com/gin-gonic/gin"
)

// SetupSeatRoutes configures the seat availability routes
func SetupSeatRoutes(rg *gin.RouterGroup, controller *Controller) {
	showtimes := rg.Group("/showtimes")
	{
		// Derived per-showtime seat availability, public for browsing
		showtimes.GET("/:id/seats", controller.GetAvailability) // GET /api/v1/showtimes/:id/seats
	}
}
