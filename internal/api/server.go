package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/martijn/wigest/internal/api/handler"
	"github.com/martijn/wigest/internal/api/middleware"
	"github.com/martijn/wigest/internal/core/service"
	"github.com/martijn/wigest/pkg/config"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer creates a new API server
func NewServer(
	cfg *config.Config,
	clientService *service.ClientService,
	offerService *service.OfferService,
	subscriptionService *service.SubscriptionService,
	paymentService *service.PaymentService,
	logService *service.LogService,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandlerMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// Initialize handlers
	clientHandler := handler.NewClientHandler(clientService)
	offerHandler := handler.NewOfferHandler(offerService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	logHandler := handler.NewLogHandler(logService)
	statsHandler := handler.NewStatsHandler(subscriptionService, paymentService)

	// Clients
	clients := router.Group("/clients")
	{
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.POST("", clientHandler.CreateClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	// Offers
	offers := router.Group("/offres")
	{
		offers.GET("", offerHandler.ListOffers)
		offers.GET("/:id", offerHandler.GetOffer)
		offers.POST("", offerHandler.CreateOffer)
		offers.PUT("/:id", offerHandler.UpdateOffer)
		offers.DELETE("/:id", offerHandler.DeleteOffer)
	}

	// Subscriptions
	subscriptions := router.Group("/abonnements")
	{
		subscriptions.GET("", subscriptionHandler.ListSubscriptions)
		subscriptions.GET("/:id", subscriptionHandler.GetSubscription)
		subscriptions.POST("", subscriptionHandler.CreateSubscription)
		subscriptions.PUT("/:id", subscriptionHandler.UpdateSubscription)
		subscriptions.DELETE("/:id", subscriptionHandler.DeleteSubscription)
	}

	// Payments
	payments := router.Group("/paiements")
	{
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.POST("", paymentHandler.CreatePayment)
		payments.PUT("/:id", paymentHandler.UpdatePayment)
		payments.DELETE("/:id", paymentHandler.DeletePayment)
	}

	// Audit trail (read-only)
	logs := router.Group("/logs")
	{
		logs.GET("", logHandler.ListLogs)
		logs.GET("/:id", logHandler.GetLog)
	}

	// Dashboard statistics
	stats := router.Group("/stats")
	{
		stats.GET("/paiements", statsHandler.PaymentStats)
		stats.GET("/abonnements", statsHandler.SubscriptionStats)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// API documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server := &Server{
		router: router,
		config: cfg,
	}

	return server
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.APIHost, s.config.APIPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	fmt.Printf("Starting HTTP server on %s\n", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
