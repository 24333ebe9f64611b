package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"divinespark/handlers"
	"divinespark/middleware"
)

// RegisterContentRoutes registers the public marketing pages.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/content")
	{
		api.GET("/landing", hb.Content.LandingHandler)
		api.GET("/about", hb.Content.AboutHandler)
		api.GET("/contact", hb.Content.ContactHandler)
		api.GET("/reviews", hb.Content.ReviewsHandler)
	}
}

// RegisterAuthRoutes registers login/registration/OTP endpoints and the
// profile lookup.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/request-otp", hb.Auth.RequestOTPHandler)
		api.POST("/verify-otp", hb.Auth.VerifyOTPHandler)
		api.POST("/logout", hb.Auth.LogoutHandler)
	}

	users := r.Group("/api/users")
	users.Use(middleware.ViewerSessionMiddleware(hb.AuthService, false))
	users.GET("/me", hb.Auth.MeHandler)
}

// RegisterSessionRoutes registers session discovery and the admin CRUD.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.GET("", hb.Sessions.ListSessionsHandler)
		api.GET("/:id", hb.Sessions.GetSessionHandler)
	}

	adminAPI := r.Group("/api/sessions/admin")
	adminAPI.Use(middleware.ViewerSessionMiddleware(hb.AuthService, false))
	adminAPI.Use(middleware.AdminMiddleware())
	{
		adminAPI.GET("", hb.Sessions.ListSessionsAdminHandler)
		adminAPI.POST("/create", hb.Sessions.CreateSessionHandler)
		adminAPI.PUT("/:id", hb.Sessions.UpdateSessionHandler)
		adminAPI.DELETE("/:id", hb.Sessions.DeleteSessionHandler)
	}
}

// RegisterBookingRoutes sets up the booking confirmation flow and the
// checkout widget callbacks.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/book")
	api.Use(middleware.ViewerSessionMiddleware(hb.AuthService, false))
	{
		api.GET("/prepare/:sessionID", hb.Booking.PrepareBookingHandler)
		api.POST("/confirm/:sessionID", hb.Booking.ConfirmBookingHandler)
		api.POST("/checkout/:attemptID/success", hb.Booking.CheckoutSuccessHandler)
		api.POST("/checkout/:attemptID/dismiss", hb.Booking.CheckoutDismissHandler)
		api.GET("/attempts/:attemptID/result", hb.Booking.BookingResultHandler)
	}

	// The widget script itself is public; pages include it before login.
	r.GET("/checkout.js", hb.Checkout.ScriptHandler)
}

// RegisterDonationRoutes registers the donation flow. Donations are open to
// anonymous visitors.
func RegisterDonationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/donations")
	api.Use(middleware.ViewerSessionMiddleware(hb.AuthService, true))
	{
		api.POST("/create-order", hb.Donations.StartDonationHandler)
		api.POST("/verify-payment", hb.Donations.VerifyDonationHandler)
		api.POST("/dismiss", hb.Donations.DismissDonationHandler)
	}
}

// RegisterAdminRoutes sets up the dashboard endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.ViewerSessionMiddleware(hb.AuthService, false))
	api.Use(middleware.AdminMiddleware())
	{
		api.GET("/overview", hb.Admin.OverviewHandler)
		api.GET("/sessions/:sessionID/registrants", hb.Admin.RegistrantsHandler)
		api.GET("/payments", hb.Admin.PaymentsHandler)
		api.GET("/payments/:paymentID", hb.Admin.PaymentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm DivineSpark"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Session-Id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterContentRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDonationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
