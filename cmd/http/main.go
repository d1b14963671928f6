package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"rinova-service/internal/app/config"
	"rinova-service/internal/app/delivery/http/middlewares"
	"rinova-service/internal/app/delivery/http/routers"
	"rinova-service/internal/app/drivers/database"
	"rinova-service/internal/app/drivers/logger"
	"rinova-service/internal/app/services/core/health"
	"rinova-service/internal/app/services/core/notes"
	"rinova-service/internal/app/services/shared/openai"
	"rinova-service/internal/app/services/shared/redis"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()
	log.Info("Server started", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	err = mongoClient.Disconnect(shutdownCtx)
	if err != nil {
		log.Error("Failed to disconnect from mongo database", zap.Error(err))
	}
	err = redisClient.Close()
	if err != nil {
		log.Error("Failed to close redis client", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	extractionClient := openai.NewOpenAIClient(bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Notes
	noteMongoRepository := notes.NewNoteMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	noteUsecase := notes.NewNoteUsecase(
		noteMongoRepository,
		extractionClient,
		redisRepository,
		bootstrap.Logger,
		bootstrap.InternalConfig,
	)
	noteController := notes.NewNoteController(bootstrap.Logger, noteUsecase)

	// Health
	healthController := health.NewHealthController(
		bootstrap.Logger,
		bootstrap.MongoClient,
		extractionClient,
		bootstrap.InternalConfig,
	)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, noteController, healthController)
}
