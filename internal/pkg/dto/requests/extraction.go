package requests

import "time"

type ExtractCodes struct {
	MedicalText string `json:"medical_text" validate:"required,min=1"`
	PatientID   string `json:"patient_id,omitempty"`
}

type SearchNotes struct {
	Query     string
	Status    string
	StartDate time.Time
	EndDate   time.Time
	Page      int
	PageSize  int
}
