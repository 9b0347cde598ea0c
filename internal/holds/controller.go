package holds

import (
	"errors"
	"net/http"

	"cinebook/internal/catalog"
	"cinebook/internal/seats"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateHolds handles POST /api/v1/seat-holds
func (c *Controller) CreateHolds(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return
	}

	var req CreateHoldsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	created, err := c.service.CreateHolds(ctx.Request.Context(), userID, req)
	if err != nil {
		respondHoldError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Seats held successfully",
		"data":    toHoldResponses(created),
	})
}

// ReleaseHolds handles DELETE /api/v1/seat-holds
func (c *Controller) ReleaseHolds(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return
	}

	released, err := c.service.ReleaseHolds(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to release seat holds",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Seat holds released",
		"data":    gin.H{"released": released},
	})
}

// GetUserHolds handles GET /api/v1/seat-holds
func (c *Controller) GetUserHolds(ctx *gin.Context) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return
	}

	userHolds, err := c.service.GetUserHolds(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get seat holds",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Seat holds retrieved successfully",
		"data":    toHoldResponses(userHolds),
	})
}

// PurgeExpired handles POST /api/v1/admin/seat-holds/purge-expired
func (c *Controller) PurgeExpired(ctx *gin.Context) {
	purged, err := c.service.PurgeExpired(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to purge expired holds",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Expired holds purged",
		"data":    gin.H{"purged": purged},
	})
}

func respondHoldError(ctx *gin.Context, err error) {
	var conflict *ConflictError
	switch {
	case errors.As(err, &conflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": conflict.Error()})
	case errors.Is(err, catalog.ErrShowtimeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Showtime not found"})
	case errors.Is(err, seats.ErrSeatsNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Some seats not found"})
	case errors.Is(err, seats.ErrUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Seats are contended, please retry"})
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to hold seats",
			"details": err.Error(),
		})
	}
}

// userIDFromContext reads the user id the JWT middleware put in context.
// Writes the error response itself when missing or malformed.
func userIDFromContext(ctx *gin.Context) (uuid.UUID, bool) {
	userIDInterface, exists := ctx.Get("user_id")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, false
	}

	userIDStr, ok := userIDInterface.(string)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return uuid.Nil, false
	}

	return userID, true
}
