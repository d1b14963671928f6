package contracts

import (
	"context"
	"rinova-service/internal/app/models"
)

// ExtractionClient turns free-text medical notes into validated code lists
// by calling an external completion API.
type ExtractionClient interface {
	ExtractMedicalCodes(ctx context.Context, medicalText string) (*models.ExtractionResult, error)
	HealthCheck(ctx context.Context) error
}
