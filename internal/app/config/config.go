package config

import (
	"rinova-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "rinova"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8000"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		OpenAI: OpenAI{
			APIKey:                     utils.GetEnvString("OPENAI_API_KEY", ""),
			BaseUrl:                    utils.GetEnvString("OPENAI_BASE_URL", "https://api.openai.com/v1/chat/completions"),
			Model:                      utils.GetEnvString("OPENAI_MODEL_NAME", "gpt-4-turbo-preview"),
			ModelVersion:               utils.GetEnvString("OPENAI_MODEL_VERSION", "1.0"),
			ExtractionTimeoutInSeconds: utils.GetEnvInt("OPENAI_EXTRACTION_TIMEOUT_IN_SECONDS", 30),
		},
		Cache: Cache{
			ExtractionTTLInMinutes: utils.GetEnvInt("CACHE_EXTRACTION_TTL_IN_MINUTES", 60),
		},
	}
}
