package responses

import "rinova-service/internal/app/models"

// Extraction is the envelope returned by POST /extract. Extraction and
// storage failures surface here as success=false rather than an HTTP error
// status.
type Extraction struct {
	Success bool                   `json:"success"`
	Data    *models.ExtractionData `json:"data"`
	Error   *string                `json:"error"`
}

type SearchNotes struct {
	Total int64                `json:"total"`
	Notes []models.MedicalNote `json:"notes"`
}

type ExtractionStats struct {
	TotalExtractions    int64   `json:"total_extractions"`
	SuccessRate         float64 `json:"success_rate"`
	AvgProcessingTimeMs float64 `json:"avg_processing_time_ms"`
	PeriodDays          int     `json:"period_days"`
}

type CommonCode struct {
	Code        string `json:"code" bson:"_id"`
	Description string `json:"description" bson:"description"`
	Count       int64  `json:"count" bson:"count"`
}

type RootInfo struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

type Health struct {
	Status     string            `json:"status"`
	Timestamp  string            `json:"timestamp"`
	APIVersion string            `json:"api_version"`
	Services   map[string]string `json:"services"`
}
