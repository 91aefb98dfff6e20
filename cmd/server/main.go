package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hotel-floor-dashboard/internal/config"
	"hotel-floor-dashboard/internal/database"
	"hotel-floor-dashboard/internal/handler"
	"hotel-floor-dashboard/internal/logger"
	"hotel-floor-dashboard/internal/middleware"
	"hotel-floor-dashboard/internal/repository"
	"hotel-floor-dashboard/internal/service"
	"hotel-floor-dashboard/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize logger
	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// 3. Open the local snapshot database
	db := database.Connect(cfg)

	// 4. Initialize repositories
	snapshotRepo := repository.NewSnapshotRepo(db)

	// 5. Initialize stores (each restores its own snapshot slot)
	observationService := service.NewObservationService(snapshotRepo, zapLogger)
	configService := service.NewRoomConfigService(snapshotRepo, zapLogger)

	// 6. Start persistence retry worker in goroutine
	worker := service.NewPersistenceWorker(cfg.Storage.RetryInterval, zapLogger, observationService, configService)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Start(ctx)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware for the local dashboard UI
	r.Use(middleware.CORS(cfg))

	// 9. Register handlers
	floorHandler := handler.NewFloorHandler()
	issueHandler := handler.NewIssueHandler()
	observationHandler := handler.NewObservationHandler(observationService)
	configHandler := handler.NewRoomConfigHandler(configService)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hotel-floor-dashboard",
		})
	})

	// Reference data (read-only)
	r.GET("/floors/:floor/rooms", floorHandler.GetRooms)
	r.GET("/issues", issueHandler.GetAll)
	r.GET("/issues/suggestions", issueHandler.GetSuggestions)

	// Per-room state
	rooms := r.Group("/rooms/:roomId")
	{
		rooms.GET("/observations", observationHandler.List)
		rooms.POST("/observations", observationHandler.Add)
		rooms.DELETE("/observations/:observationId", observationHandler.Delete)
		rooms.GET("/config", configHandler.Get)
		rooms.PUT("/config/bed-position", configHandler.SetBedPosition)
	}

	// 11. Setup graceful shutdown
	go func() {
		zapLogger.Info("Server starting", zap.String("port", cfg.Server.Port))
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	// Stop the retry worker and flush anything still pending
	cancel()
	observationService.FlushPending()
	configService.FlushPending()
	zapLogger.Info("Server exited")
}
