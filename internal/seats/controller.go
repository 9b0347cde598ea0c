package seats

import (
	"errors"
	"net/http"

	"cinebook/internal/catalog"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetAvailability handles GET /api/v1/showtimes/:id/seats
func (c *Controller) GetAvailability(ctx *gin.Context) {
	showtimeID := ctx.Param("id")

	availability, err := c.service.GetAvailability(ctx.Request.Context(), showtimeID)
	if err != nil {
		if errors.Is(err, catalog.ErrShowtimeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Showtime not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get seat availability",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Seat availability retrieved successfully",
		"data":    availability,
	})
}
