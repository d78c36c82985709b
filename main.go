package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"agendate/calendar"
	"agendate/config"
	"agendate/handlers"
	"agendate/middleware"
	"agendate/routes"
	"agendate/services/agenda"
	"agendate/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.GetLogger().Sugar().Fatalf("main: failed to load config: %v", err)
	}

	utils.InitializeLogger(cfg.Env)
	logger := utils.GetLogger()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Calendar store. Without credentials (local development) fall back to
	// the in-memory store so the endpoints still work end to end.
	var store calendar.EventStore
	if cfg.GoogleServiceAccountEmail != "" && cfg.GooglePrivateKey != "" {
		googleStore, err := calendar.NewGoogleCalendarStore(context.Background(), cfg)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize calendar store: %v", err)
		}
		store = googleStore
	} else {
		logger.Warn("main: no Google credentials configured, using in-memory calendar store")
		store = calendar.NewMemoryStore()
	}

	agendaService, err := agenda.NewAgendaService(store, cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize agenda service: %v", err)
	}
	agendaHandler := handlers.NewAgendaHandler(agendaService)

	utils.StartHealthMonitor(store)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, agendaHandler, cfg.CORSOrigins)

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
