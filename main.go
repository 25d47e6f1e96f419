package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bvetra/config"
	"bvetra/handlers"
	"bvetra/middleware"
	"bvetra/routes"
	"bvetra/services/booking"
	ai "bvetra/services/intelligence"
	"bvetra/services/notify"
	"bvetra/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitMiddleware())

	// Notification channels, in fan-out order.
	mailer := notify.NewMailer(notify.MailerConfig{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.FromEmail,
	})
	bitrix := notify.NewBitrixClient(cfg.BitrixWebhookURL)
	dispatcher := notify.NewDispatcher(logger,
		&notify.OwnerEmailChannel{Mailer: mailer, OwnerTo: cfg.SiteOwnerEmail, SiteURL: cfg.SiteURL},
		&notify.CustomerEmailChannel{Mailer: mailer},
		&notify.TelegramChannel{Token: cfg.TelegramBotToken, ChatID: cfg.TelegramChatID},
		&notify.BitrixChannel{Client: bitrix},
	)

	bookingService := booking.NewIntakeService(dispatcher, logger)

	// Chat assistant is optional: it needs a model key and a redis-backed
	// history store.
	var aiSvc ai.Service
	var redisClients []*redis.Client
	if cfg.GeminiAPIKey != "" {
		gen, err := ai.NewGeminiClient(cfg.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize assistant client: %v", err)
		}
		chatCache := utils.GetChatCacheClient()
		redisClients = append(redisClients, chatCache)
		store := ai.NewRedisHistoryStore(chatCache, time.Duration(cfg.ChatHistoryTTLMin)*time.Minute)
		aiSvc = ai.NewDefaultAIService(gen, store)
	}

	utils.StartHealthMonitor(redisClients)

	contactTo := cfg.ContactEmail
	if contactTo == "" {
		contactTo = cfg.FromEmail
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Contact: handlers.NewContactHandler(mailer, contactTo, logger),
		Lead:    handlers.NewLeadHandler(bitrix, logger),
		Chat:    handlers.NewChatHandler(aiSvc, logger),
		Catalog: handlers.NewCatalogHandler(),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
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
