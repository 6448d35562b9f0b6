package routes

import (
	"net/http"
	"time"

	"agrirent/handlers"
	"agrirent/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers identity endpoints.
func RegisterUserRoutes(r *gin.Engine) {
	api := r.Group("/api/users")
	{
		api.POST("/register", handlers.Register)
		api.POST("/login", handlers.Login)
	}
}

// RegisterEquipmentRoutes registers marketplace listing endpoints.
// Browsing is public; listing and editing require authentication.
func RegisterEquipmentRoutes(r *gin.Engine) {
	api := r.Group("/api/equipment")
	{
		api.GET("", handlers.ListEquipment)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", handlers.CreateEquipment)
		protected.GET("/mine", handlers.ListMyEquipment)
		protected.PUT("/:id", handlers.UpdateEquipment)

		api.GET("/:id", handlers.GetEquipment)
	}
}

// RegisterSearchRoutes registers the natural language search endpoint.
func RegisterSearchRoutes(r *gin.Engine) {
	api := r.Group("/api/search")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/interpret", handlers.InterpretSearch)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints. All
// of them require authentication since every operation revalidates the
// caller against the booking's participants.
func RegisterBookingRoutes(r *gin.Engine) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/quote", handlers.QuoteBooking)
		api.POST("", handlers.CreateBooking)
		api.GET("/mine", handlers.ListMyBookings)
		api.GET("/owner", handlers.ListOwnerBookings)
		api.GET("/:id", handlers.GetBooking)
		api.POST("/:id/respond", handlers.RespondToBooking)
		api.POST("/:id/cancel", handlers.CancelBooking)
		api.POST("/:id/begin", handlers.BeginBooking)
		api.POST("/:id/complete", handlers.CompleteBooking)
		api.POST("/:id/rate", handlers.RateBooking)
		api.POST("/:id/payment-intent", handlers.CreateBookingPaymentIntent)
		api.POST("/:id/payment", handlers.RecordBookingPayment)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterUserRoutes(r)
	RegisterEquipmentRoutes(r)
	RegisterSearchRoutes(r)
	RegisterBookingRoutes(r)
	RegisterHealthRoute(r)
}
