package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"divinespark/config"
	"divinespark/handlers"
	"divinespark/middleware"
	"divinespark/routes"
	adminSvc "divinespark/services/admin"
	authSvc "divinespark/services/auth"
	bookingSvc "divinespark/services/booking"
	"divinespark/services/checkout"
	donationSvc "divinespark/services/donation"
	sessionSvc "divinespark/services/session"
	"divinespark/upstream"
	"divinespark/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Backend client and checkout gateway.
	backend := upstream.NewFromConfig(logger)
	gateway := checkout.NewHostedGateway(logger)

	// services.
	sessionService := &sessionSvc.DefaultSessionService{
		Backend: backend,
		Logger:  logger,
	}

	authService := &authSvc.DefaultAuthService{
		Backend: backend,
		Store:   authSvc.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Logger:  logger,
	}

	bookingService := &bookingSvc.DefaultBookingService{
		Backend:   backend,
		Sessions:  sessionService,
		Widget:    gateway,
		Callbacks: gateway,
		Attempts:  bookingSvc.NewAttemptRegistry(),
		Logger:    logger,
	}

	donationService := &donationSvc.DefaultDonationService{
		Backend: backend,
		Widget:  gateway,
		Logger:  logger,
	}

	adminService := &adminSvc.DefaultAdminService{
		Backend:  backend,
		Sessions: sessionService,
		Logger:   logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthService: authService,
		Auth:        handlers.NewAuthHandler(authService, backend),
		Sessions:    handlers.NewSessionHandler(sessionService, authService),
		Booking:     handlers.NewBookingHandler(bookingService, authService),
		Checkout:    handlers.NewCheckoutHandler(gateway),
		Admin:       handlers.NewAdminHandler(adminService, authService),
		Donations:   handlers.NewDonationHandler(donationService, authService, logger),
		Content:     handlers.NewContentHandler(),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
