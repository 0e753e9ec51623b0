package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"marketplace/handlers"
	"marketplace/middleware"
	"marketplace/utils"
)

// RegisterAuthRoutes registers signup/login/logout endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/auth")
	{
		api.POST("/signup", hb.SignupHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/logout", auth, hb.LogoutHandler)
	}
}

// RegisterUserRoutes registers the identity endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/me")
	{
		api.Use(auth)
		api.GET("", hb.MeHandler)
		api.POST("/provider-mode", hb.ProviderModeHandler)
	}
}

// RegisterServiceRoutes registers the listing endpoints. Reads are public;
// mutations require authentication.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/services")
	{
		api.GET("", hb.ListServicesHandler)
		api.GET("/:id", hb.GetServiceHandler)

		api.POST("", auth, hb.CreateServiceHandler)
		api.PUT("/:id", auth, hb.UpdateServiceHandler)
		api.DELETE("/:id", auth, hb.DeleteServiceHandler)
	}
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/bookings")
	{
		api.Use(auth)
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
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

	auth := middleware.AuthRequired(hb.UserService)

	RegisterAuthRoutes(r, hb, auth)
	RegisterUserRoutes(r, hb, auth)
	RegisterServiceRoutes(r, hb, auth)
	RegisterBookingRoutes(r, hb, auth)
	RegisterHealthRoute(r)
}
