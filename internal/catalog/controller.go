package catalog

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

// GetShowTime handles GET /api/v1/showtimes/:id
func (c *Controller) GetShowTime(ctx *gin.Context) {
	showtimeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid showtime ID"})
		return
	}

	showtime, err := c.service.GetShowTime(ctx.Request.Context(), showtimeID)
	if err != nil {
		if errors.Is(err, ErrShowtimeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Showtime not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get showtime",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Showtime retrieved successfully",
		"data":    showtime,
	})
}

// GetFilm handles GET /api/v1/films/:id
func (c *Controller) GetFilm(ctx *gin.Context) {
	filmID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film ID"})
		return
	}

	film, err := c.service.GetFilm(ctx.Request.Context(), filmID)
	if err != nil {
		if errors.Is(err, ErrFilmNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Film not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get film",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Film retrieved successfully",
		"data":    film,
	})
}

// GetFilmShowTimes handles GET /api/v1/films/:id/showtimes
func (c *Controller) GetFilmShowTimes(ctx *gin.Context) {
	filmID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film ID"})
		return
	}

	showtimes, err := c.service.GetShowTimesByFilm(ctx.Request.Context(), filmID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get showtimes",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Showtimes retrieved successfully",
		"data":    showtimes,
	})
}
