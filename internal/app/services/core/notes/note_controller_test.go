package notes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"rinova-service/internal/app/models"
	"rinova-service/internal/pkg/dto/requests"
	"rinova-service/internal/pkg/dto/responses"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeNoteUsecase struct {
	extractCalls    int
	extractResponse *responses.Extraction
	recentLimit     int
	searchRequest   *requests.SearchNotes
	statsDays       int
	commonDays      int
	commonLimit     int
}

func (f *fakeNoteUsecase) ExtractCodes(ctx context.Context, request *requests.ExtractCodes) *responses.Extraction {
	f.extractCalls++
	return f.extractResponse
}

func (f *fakeNoteUsecase) GetRecentNotes(ctx context.Context, limit int) ([]models.MedicalNote, error) {
	f.recentLimit = limit
	return []models.MedicalNote{}, nil
}

func (f *fakeNoteUsecase) GetNoteByID(ctx context.Context, noteID string) (*models.MedicalNote, error) {
	return &models.MedicalNote{Text: "stored note"}, nil
}

func (f *fakeNoteUsecase) SearchNotes(ctx context.Context, request *requests.SearchNotes) (*responses.SearchNotes, error) {
	f.searchRequest = request
	return &responses.SearchNotes{Total: 0, Notes: []models.MedicalNote{}}, nil
}

func (f *fakeNoteUsecase) GetExtractionStats(ctx context.Context, days int) (*responses.ExtractionStats, error) {
	f.statsDays = days
	return &responses.ExtractionStats{PeriodDays: days}, nil
}

func (f *fakeNoteUsecase) GetCommonCodes(ctx context.Context, days, limit int) ([]responses.CommonCode, error) {
	f.commonDays = days
	f.commonLimit = limit
	return []responses.CommonCode{}, nil
}

func TestExtractCodesHandler(t *testing.T) {
	t.Run("Valid Request", func(t *testing.T) {
		usecase := &fakeNoteUsecase{
			extractResponse: &responses.Extraction{
				Success: true,
				Data:    &models.ExtractionData{ICD10Codes: []models.ICD10Code{}, CPTCodes: []models.CPTCode{}},
			},
		}
		controller := NewNoteController(zap.NewNop(), usecase)

		req := httptest.NewRequest("POST", "/api/v1/extract", strings.NewReader(`{"medical_text": "Patient with type 2 diabetes"}`))
		rr := httptest.NewRecorder()
		controller.ExtractCodes(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, usecase.extractCalls)

		var body responses.Extraction
		err := json.Unmarshal(rr.Body.Bytes(), &body)
		assert.NoError(t, err)
		assert.True(t, body.Success)
	})

	t.Run("Empty Medical Text Rejected Before Any Work", func(t *testing.T) {
		usecase := &fakeNoteUsecase{}
		controller := NewNoteController(zap.NewNop(), usecase)

		req := httptest.NewRequest("POST", "/api/v1/extract", strings.NewReader(`{"medical_text": ""}`))
		rr := httptest.NewRecorder()
		controller.ExtractCodes(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Zero(t, usecase.extractCalls, "validation failure must not reach the usecase")
	})

	t.Run("Missing Medical Text Rejected", func(t *testing.T) {
		usecase := &fakeNoteUsecase{}
		controller := NewNoteController(zap.NewNop(), usecase)

		req := httptest.NewRequest("POST", "/api/v1/extract", strings.NewReader(`{"patient_id": "p-1"}`))
		rr := httptest.NewRecorder()
		controller.ExtractCodes(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Zero(t, usecase.extractCalls)
	})

	t.Run("Malformed JSON Rejected", func(t *testing.T) {
		usecase := &fakeNoteUsecase{}
		controller := NewNoteController(zap.NewNop(), usecase)

		req := httptest.NewRequest("POST", "/api/v1/extract", strings.NewReader(`{"medical_text": `))
		rr := httptest.NewRecorder()
		controller.ExtractCodes(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Zero(t, usecase.extractCalls)
	})

	t.Run("Business Failure Still Returns 200", func(t *testing.T) {
		message := "failed to extract medical codes from the provided text"
		usecase := &fakeNoteUsecase{
			extractResponse: &responses.Extraction{Success: false, Error: &message},
		}
		controller := NewNoteController(zap.NewNop(), usecase)

		req := httptest.NewRequest("POST", "/api/v1/extract", strings.NewReader(`{"medical_text": "some note"}`))
		rr := httptest.NewRecorder()
		controller.ExtractCodes(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "business failures are reported in the envelope, not the status code")

		var body responses.Extraction
		err := json.Unmarshal(rr.Body.Bytes(), &body)
		assert.NoError(t, err)
		assert.False(t, body.Success)
		assert.Equal(t, message, *body.Error)
	})
}

func TestGetRecentNotesHandler(t *testing.T) {
	t.Run("Limit Parsed From Query", func(t *testing.T) {
		usecase := &fakeNoteUsecase{}
		controller := NewNoteController(zap.NewNop(), usecase)

		req := httptest.NewRequest("GET", "/api/v1/recent?limit=25", nil)
		rr := httptest.NewRecorder()
		controller.GetRecentNotes(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 25, usecase.recentLimit)
	})

	t.Run("Invalid Limit Rejected", func(t *testing.T) {
		usecase := &fakeNoteUsecase{}
		controller := NewNoteController(zap.NewNop(), usecase)

		req := httptest.NewRequest("GET", "/api/v1/recent?limit=abc", nil)
		rr := httptest.NewRecorder()
		controller.GetRecentNotes(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetNoteByIDHandler(t *testing.T) {
	usecase := &fakeNoteUsecase{}
	controller := NewNoteController(zap.NewNop(), usecase)

	router := chi.NewRouter()
	router.Get("/extraction/{noteID}", controller.GetNoteByID)

	req := httptest.NewRequest("GET", "/extraction/6543210fedcba9876543210f", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSearchNotesHandler(t *testing.T) {
	t.Run("Query Parameters Parsed", func(t *testing.T) {
		usecase := &fakeNoteUsecase{}
		controller := NewNoteController(zap.NewNop(), usecase)

		req := httptest.NewRequest("GET", "/api/v1/search/notes?query=diabetes&status=COMPLETED&page=2&page_size=5", nil)
		rr := httptest.NewRecorder()
		controller.SearchNotes(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "diabetes", usecase.searchRequest.Query)
		assert.Equal(t, "COMPLETED", usecase.searchRequest.Status)
		assert.Equal(t, 2, usecase.searchRequest.Page)
		assert.Equal(t, 5, usecase.searchRequest.PageSize)
	})

	t.Run("Page Size Clamped", func(t *testing.T) {
		usecase := &fakeNoteUsecase{}
		controller := NewNoteController(zap.NewNop(), usecase)

		req := httptest.NewRequest("GET", "/api/v1/search/notes?page_size=9999", nil)
		rr := httptest.NewRecorder()
		controller.SearchNotes(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 100, usecase.searchRequest.PageSize)
	})

	t.Run("Invalid Date Rejected", func(t *testing.T) {
		usecase := &fakeNoteUsecase{}
		controller := NewNoteController(zap.NewNop(), usecase)

		req := httptest.NewRequest("GET", "/api/v1/search/notes?start_date=yesterday", nil)
		rr := httptest.NewRecorder()
		controller.SearchNotes(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Nil(t, usecase.searchRequest)
	})

	t.Run("Valid RFC3339 Dates Accepted", func(t *testing.T) {
		usecase := &fakeNoteUsecase{}
		controller := NewNoteController(zap.NewNop(), usecase)

		req := httptest.NewRequest("GET", "/api/v1/search/notes?start_date=2026-01-01T00:00:00Z&end_date=2026-02-01T00:00:00Z", nil)
		rr := httptest.NewRecorder()
		controller.SearchNotes(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 2026, usecase.searchRequest.StartDate.Year())
		assert.False(t, usecase.searchRequest.EndDate.IsZero())
	})
}

func TestAnalyticsHandlers(t *testing.T) {
	t.Run("Extraction Stats Default Days", func(t *testing.T) {
		usecase := &fakeNoteUsecase{}
		controller := NewNoteController(zap.NewNop(), usecase)

		req := httptest.NewRequest("GET", "/api/v1/analytics/extraction-stats", nil)
		rr := httptest.NewRecorder()
		controller.GetExtractionStats(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 30, usecase.statsDays)
	})

	t.Run("Common Codes Parameters", func(t *testing.T) {
		usecase := &fakeNoteUsecase{}
		controller := NewNoteController(zap.NewNop(), usecase)

		req := httptest.NewRequest("GET", "/api/v1/analytics/common-codes?days=7&limit=5", nil)
		rr := httptest.NewRecorder()
		controller.GetCommonCodes(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 7, usecase.commonDays)
		assert.Equal(t, 5, usecase.commonLimit)
	})
}
