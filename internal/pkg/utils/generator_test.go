package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second, "request IDs should be unique")
}

func TestGenerateExtractionCacheKey(t *testing.T) {
	t.Run("Deterministic For Same Text", func(t *testing.T) {
		first := GenerateExtractionCacheKey("extraction:text:", "Patient with type 2 diabetes")
		second := GenerateExtractionCacheKey("extraction:text:", "Patient with type 2 diabetes")

		assert.Equal(t, first, second, "identical text should produce the same cache key")
	})

	t.Run("Different Text Different Key", func(t *testing.T) {
		first := GenerateExtractionCacheKey("extraction:text:", "note one")
		second := GenerateExtractionCacheKey("extraction:text:", "note two")

		assert.NotEqual(t, first, second)
	})

	t.Run("Carries Prefix", func(t *testing.T) {
		key := GenerateExtractionCacheKey("extraction:text:", "some note")

		assert.True(t, strings.HasPrefix(key, "extraction:text:"))
		assert.Len(t, key, len("extraction:text:")+64, "key should carry a hex encoded SHA-256 digest")
	})
}
