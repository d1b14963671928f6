package health

import (
	"context"
	"net/http"
	"rinova-service/internal/app/config"
	"rinova-service/internal/app/contracts"
	"rinova-service/internal/pkg/constvars"
	"rinova-service/internal/pkg/dto/responses"
	"rinova-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type HealthController struct {
	Log              *zap.Logger
	MongoClient      *mongo.Client
	ExtractionClient contracts.ExtractionClient
	InternalConfig   *config.InternalConfig
}

func NewHealthController(
	logger *zap.Logger,
	mongoClient *mongo.Client,
	extractionClient contracts.ExtractionClient,
	internalConfig *config.InternalConfig,
) *HealthController {
	return &HealthController{
		Log:              logger,
		MongoClient:      mongoClient,
		ExtractionClient: extractionClient,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *HealthController) Root(w http.ResponseWriter, r *http.Request) {
	utils.BuildRawResponse(w, constvars.StatusOK, responses.RootInfo{
		Status:    "success",
		Message:   constvars.RootWelcomeMessage,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   ctrl.InternalConfig.App.Version,
	})
}

// HealthCheck reports per-dependency health: a best-effort mongo ping and
// an extraction client configuration check.
func (ctrl *HealthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	services := map[string]string{
		constvars.HealthServiceMongoDBName: constvars.HealthStatusHealthy,
		constvars.HealthServiceOpenAIName:  constvars.HealthStatusHealthy,
	}

	err := ctrl.MongoClient.Ping(ctx, nil)
	if err != nil {
		ctrl.Log.Error("health check mongo ping failed", zap.Error(err))
		services[constvars.HealthServiceMongoDBName] = constvars.HealthStatusUnhealthy + ": " + err.Error()
	}

	err = ctrl.ExtractionClient.HealthCheck(ctx)
	if err != nil {
		ctrl.Log.Error("health check openai failed", zap.Error(err))
		services[constvars.HealthServiceOpenAIName] = constvars.HealthStatusUnhealthy + ": " + err.Error()
	}

	utils.BuildRawResponse(w, constvars.StatusOK, responses.Health{
		Status:     constvars.HealthOverallStatusOnline,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		APIVersion: ctrl.InternalConfig.App.Version,
		Services:   services,
	})
}
