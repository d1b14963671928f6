package notes

import (
	"context"
	"errors"
	"rinova-service/internal/app/config"
	"rinova-service/internal/app/contracts"
	"rinova-service/internal/app/models"
	"rinova-service/internal/pkg/constvars"
	"rinova-service/internal/pkg/dto/requests"
	"rinova-service/internal/pkg/dto/responses"
	"rinova-service/internal/pkg/exceptions"
	"rinova-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type noteUsecase struct {
	NoteRepository   contracts.NoteRepository
	ExtractionClient contracts.ExtractionClient
	RedisRepository  contracts.RedisRepository
	Log              *zap.Logger
	ModelVersion     string
	CacheTTL         time.Duration
}

func NewNoteUsecase(
	noteRepository contracts.NoteRepository,
	extractionClient contracts.ExtractionClient,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.NoteUsecase {
	return &noteUsecase{
		NoteRepository:   noteRepository,
		ExtractionClient: extractionClient,
		RedisRepository:  redisRepository,
		Log:              logger,
		ModelVersion:     internalConfig.OpenAI.ModelVersion,
		CacheTTL:         time.Duration(internalConfig.Cache.ExtractionTTLInMinutes) * time.Minute,
	}
}

// ExtractCodes runs the full extract flow: store the note, obtain validated
// code lists, persist the result, and report the outcome as a business
// envelope. Failures after the note exists mark it FAILED instead of leaving
// it stuck at PROCESSING.
func (uc *noteUsecase) ExtractCodes(ctx context.Context, request *requests.ExtractCodes) *responses.Extraction {
	start := time.Now()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("noteUsecase.ExtractCodes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingNoteLengthKey, len(request.MedicalText)),
	)

	note := &models.MedicalNote{
		Text:      request.MedicalText,
		Source:    constvars.NoteSourceAPI,
		PatientID: request.PatientID,
		Length:    len(request.MedicalText),
		Status:    constvars.NoteStatusProcessing,
		CreatedAt: time.Now().UTC(),
	}

	noteID, err := uc.NoteRepository.CreateNote(ctx, note)
	if err != nil {
		uc.Log.Error("noteUsecase.ExtractCodes failed to create note",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return extractionFailure(err)
	}

	cacheKey := utils.GenerateExtractionCacheKey(constvars.RedisKeyExtractionPrefix, request.MedicalText)
	result, cacheHit := uc.lookupCachedExtraction(ctx, cacheKey, requestID)
	if !cacheHit {
		result, err = uc.ExtractionClient.ExtractMedicalCodes(ctx, request.MedicalText)
		if err != nil {
			uc.Log.Error("noteUsecase.ExtractCodes extraction failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingNoteIDKey, noteID),
				zap.Error(err),
			)
			uc.markNoteFailed(ctx, noteID, requestID)
			return extractionFailure(err)
		}
	}

	extraction := &models.ExtractionData{
		ICD10Codes: result.ICD10Codes,
		CPTCodes:   result.CPTCodes,
		Metadata: models.ExtractionMetadata{
			ModelVersion:     uc.ModelVersion,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
			Timestamp:        time.Now().UTC().Format(time.RFC3339),
			NoteLength:       len(request.MedicalText),
		},
	}

	updated, err := uc.NoteRepository.UpdateExtraction(ctx, noteID, extraction)
	if err != nil {
		uc.Log.Error("noteUsecase.ExtractCodes failed to persist extraction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNoteIDKey, noteID),
			zap.Error(err),
		)
		uc.markNoteFailed(ctx, noteID, requestID)
		return extractionFailure(err)
	}
	if !updated {
		uc.Log.Warn("noteUsecase.ExtractCodes update matched no document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNoteIDKey, noteID),
		)
	}

	if !cacheHit {
		err = uc.RedisRepository.Set(ctx, cacheKey, result, uc.CacheTTL)
		if err != nil {
			uc.Log.Warn("noteUsecase.ExtractCodes failed to cache extraction",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("noteUsecase.ExtractCodes completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNoteIDKey, noteID),
		zap.Bool(constvars.LoggingCacheHitKey, cacheHit),
		zap.Int64(constvars.LoggingElapsedMsKey, extraction.Metadata.ProcessingTimeMs),
	)

	return &responses.Extraction{
		Success: true,
		Data:    extraction,
	}
}

func (uc *noteUsecase) GetRecentNotes(ctx context.Context, limit int) ([]models.MedicalNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("noteUsecase.GetRecentNotes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLimitKey, limit),
	)

	if limit <= 0 {
		limit = constvars.DefaultRecentNotesLimit
	}
	if limit > constvars.MaxRecentNotesLimit {
		limit = constvars.MaxRecentNotesLimit
	}

	notes, err := uc.NoteRepository.FindRecent(ctx, limit)
	if err != nil {
		uc.Log.Error("noteUsecase.GetRecentNotes failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return notes, nil
}

func (uc *noteUsecase) GetNoteByID(ctx context.Context, noteID string) (*models.MedicalNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("noteUsecase.GetNoteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNoteIDKey, noteID),
	)

	note, err := uc.NoteRepository.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, exceptions.ErrNoteNotFound(nil)
	}
	return note, nil
}

func (uc *noteUsecase) SearchNotes(ctx context.Context, request *requests.SearchNotes) (*responses.SearchNotes, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("noteUsecase.SearchNotes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, request.Status),
	)

	notes, total, err := uc.NoteRepository.Search(ctx, request)
	if err != nil {
		uc.Log.Error("noteUsecase.SearchNotes failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return &responses.SearchNotes{
		Total: total,
		Notes: notes,
	}, nil
}

func (uc *noteUsecase) GetExtractionStats(ctx context.Context, days int) (*responses.ExtractionStats, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("noteUsecase.GetExtractionStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if days <= 0 {
		days = constvars.DefaultAnalyticsDays
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	stats, err := uc.NoteRepository.ExtractionStats(ctx, since)
	if err != nil {
		return nil, err
	}
	stats.PeriodDays = days
	return stats, nil
}

func (uc *noteUsecase) GetCommonCodes(ctx context.Context, days, limit int) ([]responses.CommonCode, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("noteUsecase.GetCommonCodes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if days <= 0 {
		days = constvars.DefaultAnalyticsDays
	}
	if limit <= 0 {
		limit = constvars.DefaultRecentNotesLimit
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	return uc.NoteRepository.CommonCodes(ctx, since, limit)
}

func (uc *noteUsecase) lookupCachedExtraction(ctx context.Context, cacheKey, requestID string) (*models.ExtractionResult, bool) {
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("noteUsecase.lookupCachedExtraction cache read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, false
	}
	if cached == "" {
		return nil, false
	}

	result := new(models.ExtractionResult)
	err = json.Unmarshal([]byte(cached), result)
	if err != nil {
		uc.Log.Warn("noteUsecase.lookupCachedExtraction cached payload is corrupt",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, false
	}
	return result, true
}

// markNoteFailed is best effort: the business failure is already being
// reported to the caller, a second failure here only gets logged.
func (uc *noteUsecase) markNoteFailed(ctx context.Context, noteID, requestID string) {
	err := uc.NoteRepository.UpdateStatus(ctx, noteID, constvars.NoteStatusFailed)
	if err != nil {
		uc.Log.Error("noteUsecase.markNoteFailed failed to update status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNoteIDKey, noteID),
			zap.Error(err),
		)
	}
}

func extractionFailure(err error) *responses.Extraction {
	message := err.Error()
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		message = customErr.ClientMessage
	}
	return &responses.Extraction{
		Success: false,
		Error:   &message,
	}
}
