package holds

import (
	"cinebook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupHoldRoutes registers seat hold endpoints. All require auth.
func SetupHoldRoutes(api *gin.RouterGroup, controller *Controller) {
	seatHolds := api.Group("/seat-holds")
	seatHolds.Use(middleware.JWTAuth())
	{
		seatHolds.POST("", controller.CreateHolds)
		seatHolds.GET("", controller.GetUserHolds)
		seatHolds.DELETE("", controller.ReleaseHolds)
	}

	// Operational escape hatch; the sweeper handles this on its own
	api.POST("/admin/seat-holds/purge-expired",
		middleware.JWTAuth(), middleware.RequireAdmin(), controller.PurgeExpired)
}
