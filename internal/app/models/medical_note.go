package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MedicalNote is one stored text submission plus its processing status and,
// once available, its extraction result. Notes are never deleted.
type MedicalNote struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Text       string                 `bson:"text" json:"text"`
	Source     string                 `bson:"source" json:"source"`
	PatientID  string                 `bson:"patient_id,omitempty" json:"patient_id,omitempty"`
	Length     int                    `bson:"length" json:"length"`
	Status     string                 `bson:"status" json:"status"`
	Extraction *ExtractionData        `bson:"extraction,omitempty" json:"extraction,omitempty"`
	Metadata   map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt  time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time              `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type ICD10Code struct {
	Code        string  `bson:"code" json:"code"`
	Description string  `bson:"description" json:"description"`
	Confidence  float64 `bson:"confidence" json:"confidence"`
	Primary     bool    `bson:"primary" json:"primary"`
	Evidence    string  `bson:"evidence,omitempty" json:"evidence,omitempty"`
}

type CPTCode struct {
	Code        string  `bson:"code" json:"code"`
	Description string  `bson:"description" json:"description"`
	Confidence  float64 `bson:"confidence" json:"confidence"`
	Category    string  `bson:"category,omitempty" json:"category,omitempty"`
	Evidence    string  `bson:"evidence,omitempty" json:"evidence,omitempty"`
}

type ExtractionMetadata struct {
	ModelVersion     string `bson:"model_version" json:"model_version"`
	ProcessingTimeMs int64  `bson:"processing_time_ms" json:"processing_time_ms"`
	Timestamp        string `bson:"timestamp" json:"timestamp"`
	NoteLength       int    `bson:"note_length" json:"note_length"`
}

// ExtractionData is the validated result attached to exactly one note.
type ExtractionData struct {
	ICD10Codes []ICD10Code        `bson:"icd10_codes" json:"icd10_codes"`
	CPTCodes   []CPTCode          `bson:"cpt_codes" json:"cpt_codes"`
	Metadata   ExtractionMetadata `bson:"metadata" json:"metadata"`
}

// ExtractionResult is the normalized payload parsed from the model reply,
// before request-scoped metadata is attached.
type ExtractionResult struct {
	ICD10Codes []ICD10Code `json:"icd10_codes"`
	CPTCodes   []CPTCode   `json:"cpt_codes"`
}
