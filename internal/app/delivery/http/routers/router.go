package routers

import (
	"fmt"
	"rinova-service/internal/app/config"
	"rinova-service/internal/app/delivery/http/middlewares"
	"rinova-service/internal/app/services/core/health"
	"rinova-service/internal/app/services/core/notes"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	noteController *notes.NoteController,
	healthController *health.HealthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173", "http://127.0.0.1:3000", "http://127.0.0.1:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           3600,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Get("/", healthController.Root)
	router.Get("/health", healthController.HealthCheck)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			attachNoteRoutes(r, noteController)
		})
	})
}
