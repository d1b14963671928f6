package contracts

import (
	"context"
	"rinova-service/internal/app/models"
	"rinova-service/internal/pkg/dto/requests"
	"rinova-service/internal/pkg/dto/responses"
	"time"
)

type NoteRepository interface {
	CreateNote(ctx context.Context, note *models.MedicalNote) (noteID string, err error)
	UpdateExtraction(ctx context.Context, noteID string, extraction *models.ExtractionData) (bool, error)
	UpdateStatus(ctx context.Context, noteID, status string) error
	FindByID(ctx context.Context, noteID string) (*models.MedicalNote, error)
	FindRecent(ctx context.Context, limit int) ([]models.MedicalNote, error)
	Search(ctx context.Context, request *requests.SearchNotes) ([]models.MedicalNote, int64, error)
	ExtractionStats(ctx context.Context, since time.Time) (*responses.ExtractionStats, error)
	CommonCodes(ctx context.Context, since time.Time, limit int) ([]responses.CommonCode, error)
}

type NoteUsecase interface {
	ExtractCodes(ctx context.Context, request *requests.ExtractCodes) *responses.Extraction
	GetRecentNotes(ctx context.Context, limit int) ([]models.MedicalNote, error)
	GetNoteByID(ctx context.Context, noteID string) (*models.MedicalNote, error)
	SearchNotes(ctx context.Context, request *requests.SearchNotes) (*responses.SearchNotes, error)
	GetExtractionStats(ctx context.Context, days int) (*responses.ExtractionStats, error)
	GetCommonCodes(ctx context.Context, days, limit int) ([]responses.CommonCode, error)
}
