package routers

import (
	"rinova-service/internal/app/services/core/notes"

	"github.com/go-chi/chi/v5"
)

func attachNoteRoutes(router chi.Router, noteController *notes.NoteController) {
	router.Post("/extract", noteController.ExtractCodes)
	router.Get("/recent", noteController.GetRecentNotes)
	router.Get("/extraction/{noteID}", noteController.GetNoteByID)

	router.Route("/search", func(r chi.Router) {
		r.Get("/notes", noteController.SearchNotes)
	})

	router.Route("/analytics", func(r chi.Router) {
		r.Get("/extraction-stats", noteController.GetExtractionStats)
		r.Get("/common-codes", noteController.GetCommonCodes)
	})
}
