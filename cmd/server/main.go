package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillsynclab/backend/internal/api"
	"skillsynclab/backend/internal/config"
	"skillsynclab/backend/internal/mail"
	"skillsynclab/backend/internal/repository/mongo"
	"skillsynclab/backend/internal/service"
	"skillsynclab/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer zapLogger.Sync()
	log := zapLogger.Sugar()

	log.Info("Starting SkillSync backend...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalw("could not load config", "err", err)
	}

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalw("could not connect to MongoDB", "uri", cfg.Database.URI, "err", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Errorw("failed to disconnect MongoDB", "err", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Infow("database connection established", "db", cfg.Database.Name)

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureAdminUserIndexes(ctx, appDB.Collection("admin_users"))
		mongo.EnsureRecipeIndexes(ctx, appDB.Collection("recipes"))
		mongo.EnsureLearningPlanIndexes(ctx, appDB.Collection("learning_plans"))
		mongo.EnsureDiscussionIndexes(ctx, appDB.Collection("discussions"))
		mongo.EnsureCascadeIndexes(ctx, appDB)
		log.Info("index creation process completed")
	}()

	// --- Initialize Collaborators ---
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalw("failed to initialize S3 storage", "err", err)
	}
	mailer := mail.NewSMTPSender(cfg.Mail)

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoAdminUserRepository(appDB)
	categoryRepo := mongo.NewMongoCategoryRepository(appDB)
	recipeRepo := mongo.NewMongoRecipeRepository(appDB)
	planRepo := mongo.NewMongoLearningPlanRepository(appDB)
	discussionRepo := mongo.NewMongoDiscussionRepository(appDB)
	postRepo := mongo.NewMongoPostRepository(appDB)
	achievementRepo := mongo.NewMongoAchievementRepository(appDB)
	notificationRepo := mongo.NewMongoNotificationRepository(appDB)

	// --- Initialize Services ---
	purger := service.NewCascadePurger(achievementRepo, planRepo, postRepo, notificationRepo, log)
	userService := service.NewAdminUserService(userRepo, planRepo, purger, mailer, fileStorage, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	recipeService := service.NewRecipeService(recipeRepo, log)
	planService := service.NewLearningPlanService(planRepo, log)
	discussionService := service.NewDiscussionService(discussionRepo, log)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	api.SetupRoutes(router, cfg.CORS, userService, categoryService, recipeService, planService, discussionService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("listen and serve error", "err", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}

	log.Info("server exiting")
}
