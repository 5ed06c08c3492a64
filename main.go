// File: tourai/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tourai/config"
	"tourai/cron"
	"tourai/database"
	activityRepoPkg "tourai/database/repository/activity"
	evaluationRepoPkg "tourai/database/repository/evaluation"
	inviteRepoPkg "tourai/database/repository/invite"
	itineraryRepoPkg "tourai/database/repository/itinerary"
	notificationRepoPkg "tourai/database/repository/notification"
	postRepoPkg "tourai/database/repository/post"
	roadmapRepoPkg "tourai/database/repository/roadmap"
	userRepoPkg "tourai/database/repository/user"
	"tourai/handlers"
	"tourai/middleware"
	"tourai/routes"
	"tourai/services/activity"
	"tourai/services/evaluation"
	"tourai/services/intelligence"
	"tourai/services/invite"
	"tourai/services/itinerary"
	"tourai/services/notification"
	"tourai/services/post"
	"tourai/services/roadmap"
	"tourai/services/user"
	"tourai/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	activityRepo := activityRepoPkg.NewMongoActivityRepo()
	roadmapRepo := roadmapRepoPkg.NewMongoRoadmapRepo()
	itineraryRepo := itineraryRepoPkg.NewMongoItineraryRepo()
	postRepo := postRepoPkg.NewMongoPostRepo()
	evaluationRepo := evaluationRepoPkg.NewMongoEvaluationRepo()
	inviteRepo := inviteRepoPkg.NewMongoInviteRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// Notification dispatch queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyDB,
	})
	defer asynqClient.Close()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Repo:   notificationRepo,
		Users:  userRepo,
		Client: asynqClient,
	}
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Notifier: notificationService,
	}
	activityService := &activity.DefaultActivityService{
		Repo:        activityRepo,
		Evaluations: evaluationRepo,
	}
	roadmapService := &roadmap.DefaultRoadmapService{
		Repo:       roadmapRepo,
		Activities: activityRepo,
	}
	itineraryService := &itinerary.DefaultItineraryService{
		Repo:       itineraryRepo,
		Roadmaps:   roadmapRepo,
		Activities: activityRepo,
	}
	postService := &post.DefaultPostService{
		Repo:     postRepo,
		Users:    userRepo,
		Notifier: notificationService,
	}
	evaluationService := &evaluation.DefaultEvaluationService{
		Repo:        evaluationRepo,
		Itineraries: itineraryRepo,
	}
	inviteService := &invite.DefaultInviteService{
		Repo:        inviteRepo,
		Itineraries: itineraryRepo,
		Notifier:    notificationService,
	}
	intelligenceService := &intelligence.DefaultIntelligenceService{
		Generator: intelligence.NewGeminiClient(config.AppConfig.GeminiAPIKey),
	}

	// Start the background notification dispatcher.
	cron.InitNotificationWorker(notificationService)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		userService,
		itineraryService,
		roadmapService,
		activityService,
		postService,
		evaluationService,
		inviteService,
		notificationService,
		intelligenceService,
	)
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
