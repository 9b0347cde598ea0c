package payments

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// VNPayCallback handles GET /api/v1/payments/vnpay-callback. The gateway
// redirects the customer here after the payment attempt.
func (c *Controller) VNPayCallback(ctx *gin.Context) {
	params := make(map[string]string)
	for key, values := range ctx.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	result, err := c.service.HandleGatewayCallback(ctx.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSignature):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		case errors.Is(err, ErrPaymentNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to process payment callback",
				"details": err.Error(),
			})
		}
		return
	}

	if !result.Success {
		ctx.JSON(http.StatusOK, gin.H{
			"message": "Payment failed, booking released",
			"data":    result,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Payment completed successfully",
		"data":    result,
	})
}

// GetPayment handles GET /api/v1/payments/:id
func (c *Controller) GetPayment(ctx *gin.Context) {
	paymentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	payment, err := c.service.GetPaymentByID(ctx.Request.Context(), paymentID)
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get payment",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Payment retrieved successfully",
		"data":    payment,
	})
}

// GetBookingPayments handles GET /api/v1/bookings/:id/payments
func (c *Controller) GetBookingPayments(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	results, err := c.service.GetPaymentsByBookingID(ctx.Request.Context(), bookingID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get payments",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Payments retrieved successfully",
		"data":    results,
	})
}
