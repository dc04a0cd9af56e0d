package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "backend/api/swagger" // swagger docs
	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/logger"
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           School Management API
// @version         1.0
// @description     HTTP API proxying the student/instructor request lifecycle onto document-store collections.
// @host            localhost:5000
// @BasePath        /
func main() {
	cfg := config.Load()

	log := logger.New(cfg.Environment)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.StoreURI())
	if err != nil {
		log.Fatal("Document store connection failed", zap.Error(err))
	}
	log.Info("Connected to MongoDB successfully", zap.String("database", cfg.DBName))

	db := client.Database(cfg.DBName)

	// Set up dependencies (Repository -> Service -> Handler)
	requestRepo := repository.NewRequestRepository(db)
	decisionRepo := repository.NewDecisionRepository(db)
	studentRepo := repository.NewCurrentStudentRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	lifecycleService := service.NewLifecycleService(requestRepo, decisionRepo)
	queryService := service.NewQueryService(subjectRepo, requestRepo, decisionRepo)
	studentService := service.NewCurrentStudentService(studentRepo)
	statsService := service.NewStatsService(statsRepo)

	requestHandler := handler.NewRequestHandler(lifecycleService)
	queryHandler := handler.NewQueryHandler(queryService)
	studentHandler := handler.NewStudentHandler(studentService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Set up Gin Router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Liveness
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "School Management Server is running")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// Register API Routes
	requestHandler.RegisterRoutes(router.Group(""))
	queryHandler.RegisterRoutes(router.Group(""))
	studentHandler.RegisterRoutes(router.Group(""))
	statsHandler.RegisterRoutes(router.Group(""))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("Server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error("Document store disconnect failed", zap.Error(err))
	}
}
