package routes

import (
	"net/http"
	"time"

	"tourhub/handlers"
	"tourhub/middleware"
	"tourhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers traveller registration and login.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
	}
}

// RegisterTourRoutes registers the public tour catalog.
func RegisterTourRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tours")
	{
		api.GET("", hb.Tour.ListToursHandler)
		api.GET("/categories", hb.Tour.GetCategoriesHandler)
		api.GET("/cities", hb.Tour.GetCitiesHandler)
		api.GET("/:id", hb.Tour.GetTourByIDHandler)

		// Protected routes (Require Authentication)
		api.POST("", middleware.JWTAuthUserMiddleware(hb.UserRepo), hb.Tour.CreateTourHandler)
		api.POST("/:id/reviews", middleware.JWTAuthUserMiddleware(hb.UserRepo), hb.Tour.AddReviewHandler)
	}
}

// RegisterBookingRoutes registers the traveller side of the booking workflow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("", hb.Booking.ListMyBookingsHandler)
		api.GET("/my", hb.Booking.ListMyBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.PATCH("/:id/cancel", hb.Booking.CancelBookingHandler)
	}
}

// RegisterBusinessAuthRoutes registers business registration, login and profile.
func RegisterBusinessAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/business/auth")
	{
		api.POST("/register", hb.BusinessAuth.RegisterHandler)
		api.POST("/login", hb.BusinessAuth.LoginHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthBusinessMiddleware(hb.BusinessRepo))
		protected.GET("/profile", hb.BusinessAuth.GetProfileHandler)
		protected.PUT("/profile", hb.BusinessAuth.UpdateProfileHandler)
	}
}

// RegisterBusinessTourRoutes registers business-scoped tour management.
func RegisterBusinessTourRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/business/tours")
	{
		api.Use(middleware.JWTAuthBusinessMiddleware(hb.BusinessRepo))
		api.GET("", hb.BusinessTour.ListToursHandler)
		api.POST("", hb.BusinessTour.CreateTourHandler)
		api.GET("/:id", hb.BusinessTour.GetTourHandler)
		api.PUT("/:id", hb.BusinessTour.UpdateTourHandler)
		api.DELETE("/:id", hb.BusinessTour.DeleteTourHandler)
		api.PATCH("/:id/toggle", hb.BusinessTour.ToggleTourHandler)
	}
}

// RegisterBusinessBookingRoutes registers the business side of the booking workflow.
func RegisterBusinessBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/business/bookings")
	{
		api.Use(middleware.JWTAuthBusinessMiddleware(hb.BusinessRepo))
		api.GET("/stats", hb.BusinessBooking.GetStatsHandler)
		api.GET("", hb.BusinessBooking.ListBookingsHandler)
		api.GET("/:id", hb.BusinessBooking.GetBookingHandler)
		api.PATCH("/:id/confirm", hb.BusinessBooking.ConfirmBookingHandler)
		api.PATCH("/:id/reject", hb.BusinessBooking.RejectBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterTourRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterBusinessAuthRoutes(r, hb)
	RegisterBusinessTourRoutes(r, hb)
	RegisterBusinessBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
