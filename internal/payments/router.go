package payments

import (
	"cinebook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupPaymentRoutes registers payment endpoints. The gateway callback is
// unauthenticated; the signature check is its auth.
func SetupPaymentRoutes(api *gin.RouterGroup, controller *Controller) {
	paymentRoutes := api.Group("/payments")
	{
		paymentRoutes.GET("/vnpay-callback", controller.VNPayCallback)
		paymentRoutes.GET("/:id", middleware.JWTAuth(), controller.GetPayment)
	}

	api.GET("/bookings/:id/payments", middleware.JWTAuth(), controller.GetBookingPayments)
}
