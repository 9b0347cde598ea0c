// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"cinebook/internal/bookings"
	"cinebook/internal/catalog"
	"cinebook/internal/holds"
	"cinebook/internal/notifications"
	"cinebook/internal/payments"
	"cinebook/internal/seats"
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/database"
	"cinebook/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer
}

// NewRouter creates a new router instance. producer may be nil when the
// broker is disabled.
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupDomainRoutes(api)
	}
}

// setupDomainRoutes wires the repositories and services bottom-up:
// catalog, seats, holds, bookings, payments.
func (r *Router) setupDomainRoutes(api *gin.RouterGroup) {
	pg := r.db.GetPostgreSQL()
	cacheService := cache.NewService(r.db.GetRedisClient())

	// Catalog (read-only lookups)
	catalogRepo := catalog.NewRepository(pg)
	catalogService := catalog.NewService(catalogRepo, cacheService)
	catalog.SetupCatalogRoutes(api, catalog.NewController(catalogService))

	// Seats: row locks + derived availability
	lockStore := seats.NewLockStore(pg, r.config.Booking.LockRetryAttempts)
	seatRepo := seats.NewRepository(pg)
	seatService := seats.NewService(seatRepo, catalogRepo, cacheService, r.config.Redis.AvailabilityCacheTTL)
	seats.SetupSeatRoutes(api, seats.NewController(seatService))

	// Seat holds
	holdRepo := holds.NewRepository(lockStore)
	holdService := holds.NewService(holdRepo, catalogRepo, seatService, r.config.Booking.HoldTTL)
	holds.SetupHoldRoutes(api, holds.NewController(holdService))

	// Bookings + payments wire to each other through interfaces
	bookingRepo := bookings.NewRepository(lockStore)
	paymentRepo := payments.NewRepository(pg)
	vnpayClient := payments.NewVNPayClient(r.config.VNPay)

	var bookingPublisher bookings.EventPublisher
	var paymentPublisher payments.EventPublisher
	if r.producer != nil {
		bookingPublisher = notifications.NewBookingPublisherAdapter(r.producer)
		paymentPublisher = notifications.NewPaymentPublisherAdapter(r.producer)
	}

	paymentService := payments.NewService(paymentRepo, bookingRepo, seatService, vnpayClient, paymentPublisher)
	bookingService := bookings.NewService(bookingRepo, seatService, paymentService, bookingPublisher)

	bookings.SetupBookingRoutes(api, bookings.NewController(bookingService))
	payments.SetupPaymentRoutes(api, payments.NewController(paymentService))
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cinebook",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cinebook",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}
