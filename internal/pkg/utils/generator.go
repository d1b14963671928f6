package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateExtractionCacheKey derives a deterministic cache key from the raw
// note text so identical submissions share one cached extraction.
func GenerateExtractionCacheKey(prefix, medicalText string) string {
	digest := sha256.Sum256([]byte(medicalText))
	return prefix + hex.EncodeToString(digest[:])
}
