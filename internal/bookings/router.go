package bookings

import (
	"cinebook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes registers booking endpoints. All require auth.
func SetupBookingRoutes(api *gin.RouterGroup, controller *Controller) {
	bookingRoutes := api.Group("/bookings")
	bookingRoutes.Use(middleware.JWTAuth())
	{
		bookingRoutes.POST("", controller.CreateBooking)
		bookingRoutes.GET("", controller.GetUserBookings)
		bookingRoutes.GET("/:id", controller.GetBooking)
	}
}
