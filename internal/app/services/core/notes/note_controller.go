package notes

import (
	"context"
	"encoding/json"
	"net/http"
	"rinova-service/internal/app/contracts"
	"rinova-service/internal/pkg/constvars"
	"rinova-service/internal/pkg/dto/requests"
	"rinova-service/internal/pkg/exceptions"
	"rinova-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NoteController struct {
	Log         *zap.Logger
	NoteUsecase contracts.NoteUsecase
}

func NewNoteController(logger *zap.Logger, noteUsecase contracts.NoteUsecase) *NoteController {
	return &NoteController{
		Log:         logger,
		NoteUsecase: noteUsecase,
	}
}

func (ctrl *NoteController) ExtractCodes(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ExtractCodes)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Empty text is rejected here, before any note document is written.
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	response := ctrl.NoteUsecase.ExtractCodes(ctx, request)
	utils.BuildRawResponse(w, constvars.StatusOK, response)
}

func (ctrl *NoteController) GetRecentNotes(w http.ResponseWriter, r *http.Request) {
	limit := constvars.DefaultRecentNotesLimit
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseQueryParam(err, "limit"))
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	notes, err := ctrl.NoteUsecase.GetRecentNotes(ctx, limit)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRecentNotesSuccessMessage, notes)
}

func (ctrl *NoteController) GetNoteByID(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "noteID")
	if noteID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "noteID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	note, err := ctrl.NoteUsecase.GetNoteByID(ctx, noteID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNoteSuccessMessage, note)
}

func (ctrl *NoteController) SearchNotes(w http.ResponseWriter, r *http.Request) {
	request, err := parseSearchRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.NoteUsecase.SearchNotes(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(int(result.Total), request.Page, request.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.SearchNotesSuccessMessage, pagination, result)
}

func (ctrl *NoteController) GetExtractionStats(w http.ResponseWriter, r *http.Request) {
	days, err := parseIntQueryParam(r, "days", constvars.DefaultAnalyticsDays)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	stats, err := ctrl.NoteUsecase.GetExtractionStats(ctx, days)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetExtractionStatsMessage, stats)
}

func (ctrl *NoteController) GetCommonCodes(w http.ResponseWriter, r *http.Request) {
	days, err := parseIntQueryParam(r, "days", constvars.DefaultAnalyticsDays)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	limit, err := parseIntQueryParam(r, "limit", constvars.DefaultRecentNotesLimit)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	codes, err := ctrl.NoteUsecase.GetCommonCodes(ctx, days, limit)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCommonCodesSuccessMessage, codes)
}

func parseSearchRequest(r *http.Request) (*requests.SearchNotes, error) {
	request := &requests.SearchNotes{
		Query:  r.URL.Query().Get("query"),
		Status: r.URL.Query().Get("status"),
	}

	if rawStart := r.URL.Query().Get("start_date"); rawStart != "" {
		startDate, err := time.Parse(time.RFC3339, rawStart)
		if err != nil {
			return nil, exceptions.ErrCannotParseQueryParam(err, "start_date")
		}
		request.StartDate = startDate
	}
	if rawEnd := r.URL.Query().Get("end_date"); rawEnd != "" {
		endDate, err := time.Parse(time.RFC3339, rawEnd)
		if err != nil {
			return nil, exceptions.ErrCannotParseQueryParam(err, "end_date")
		}
		request.EndDate = endDate
	}

	page, err := parseIntQueryParam(r, "page", 1)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	request.Page = page

	pageSize, err := parseIntQueryParam(r, "page_size", constvars.DefaultSearchPageSize)
	if err != nil {
		return nil, err
	}
	if pageSize < 1 {
		pageSize = constvars.DefaultSearchPageSize
	}
	if pageSize > constvars.MaxSearchPageSize {
		pageSize = constvars.MaxSearchPageSize
	}
	request.PageSize = pageSize

	return request, nil
}

func parseIntQueryParam(r *http.Request, name string, defaultValue int) (int, error) {
	rawValue := r.URL.Query().Get(name)
	if rawValue == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(rawValue)
	if err != nil {
		return 0, exceptions.ErrCannotParseQueryParam(err, name)
	}
	return parsed, nil
}
