package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"rinova-service/internal/app/config"
	"rinova-service/internal/app/contracts"
	"rinova-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(serverURL, apiKey string) contracts.ExtractionClient {
	return NewOpenAIClient(&config.InternalConfig{
		OpenAI: config.OpenAI{
			APIKey:                     apiKey,
			BaseUrl:                    serverURL,
			Model:                      "gpt-4-turbo-preview",
			ExtractionTimeoutInSeconds: 5,
		},
	})
}

func newCompletionServer(t *testing.T, content string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method, "completion endpoint should be called with POST")
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"), "API key should be sent as bearer token")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var request chatRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		assert.NoError(t, err, "request body should be valid JSON")
		assert.Len(t, request.Messages, 2, "request should carry a system and a user message")
		assert.Equal(t, "system", request.Messages[0].Role)
		assert.Equal(t, extractionTemperature, request.Temperature)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{
					"message":       map[string]string{"content": content},
					"finish_reason": "stop",
				},
			},
		})
	}))
}

func TestExtractMedicalCodes(t *testing.T) {
	t.Run("Valid Extraction", func(t *testing.T) {
		content := `{
			"icd10_codes": [
				{"code": "E11.9", "description": "Type 2 diabetes mellitus without complications", "confidence": 0.95, "primary": true, "evidence": "type 2 diabetes"}
			],
			"cpt_codes": [
				{"code": "99213", "description": "Office visit, established patient", "confidence": 0.85, "category": "E&M", "evidence": "follow-up visit"}
			]
		}`
		server := newCompletionServer(t, content)
		defer server.Close()

		client := newTestClient(server.URL, "test-key")
		result, err := client.ExtractMedicalCodes(context.Background(), "Patient with type 2 diabetes, follow-up visit")

		assert.NoError(t, err)
		assert.Len(t, result.ICD10Codes, 1)
		assert.Equal(t, "E11.9", result.ICD10Codes[0].Code)
		assert.True(t, result.ICD10Codes[0].Primary)
		assert.Len(t, result.CPTCodes, 1)
		assert.Equal(t, "99213", result.CPTCodes[0].Code)
		assert.Equal(t, "E&M", result.CPTCodes[0].Category)
	})

	t.Run("Confidence Clamped Into Range", func(t *testing.T) {
		content := `{
			"icd10_codes": [
				{"code": "E11.9", "description": "Type 2 diabetes", "confidence": 1.7, "primary": true},
				{"code": "I10", "description": "Essential hypertension", "confidence": -0.3, "primary": false}
			],
			"cpt_codes": [
				{"code": "99213", "description": "Office visit", "confidence": 2.5}
			]
		}`
		server := newCompletionServer(t, content)
		defer server.Close()

		client := newTestClient(server.URL, "test-key")
		result, err := client.ExtractMedicalCodes(context.Background(), "some note")

		assert.NoError(t, err)
		assert.Equal(t, 1.0, result.ICD10Codes[0].Confidence, "confidence above 1 should be clamped to 1")
		assert.Equal(t, 0.0, result.ICD10Codes[1].Confidence, "negative confidence should be clamped to 0")
		assert.Equal(t, 1.0, result.CPTCodes[0].Confidence, "CPT confidence above 1 should be clamped to 1")
	})

	t.Run("Missing Code Arrays Become Empty", func(t *testing.T) {
		server := newCompletionServer(t, `{}`)
		defer server.Close()

		client := newTestClient(server.URL, "test-key")
		result, err := client.ExtractMedicalCodes(context.Background(), "unremarkable note")

		assert.NoError(t, err)
		assert.NotNil(t, result.ICD10Codes, "missing icd10_codes should become an empty array, not nil")
		assert.NotNil(t, result.CPTCodes, "missing cpt_codes should become an empty array, not nil")
		assert.Empty(t, result.ICD10Codes)
		assert.Empty(t, result.CPTCodes)
	})

	t.Run("Missing API Key", func(t *testing.T) {
		client := newTestClient("http://localhost:0", "")
		result, err := client.ExtractMedicalCodes(context.Background(), "some note")

		assert.Nil(t, result)
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok, "error should be a CustomError")
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
	})

	t.Run("API Error Response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"message": "Rate limit reached", "type": "requests", "code": "rate_limit_exceeded"}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, "test-key")
		result, err := client.ExtractMedicalCodes(context.Background(), "some note")

		assert.Nil(t, result)
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok, "error should be a CustomError")
		assert.Contains(t, customErr.DevMessage, "Rate limit reached", "upstream error message should be preserved")
	})

	t.Run("Empty Choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"choices": []}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, "test-key")
		result, err := client.ExtractMedicalCodes(context.Background(), "some note")

		assert.Nil(t, result)
		assert.Error(t, err)
	})

	t.Run("Non-JSON Completion Content", func(t *testing.T) {
		server := newCompletionServer(t, "I could not find any codes in this note.")
		defer server.Close()

		client := newTestClient(server.URL, "test-key")
		result, err := client.ExtractMedicalCodes(context.Background(), "some note")

		assert.Nil(t, result)
		assert.Error(t, err)
	})
}

func TestHealthCheck(t *testing.T) {
	t.Run("Configured", func(t *testing.T) {
		client := newTestClient("http://localhost:0", "test-key")
		assert.NoError(t, client.HealthCheck(context.Background()))
	})

	t.Run("Missing API Key", func(t *testing.T) {
		client := newTestClient("http://localhost:0", "")
		assert.Error(t, client.HealthCheck(context.Background()))
	})
}

func TestClampConfidence(t *testing.T) {
	assert.Equal(t, 0.0, clampConfidence(-1.5))
	assert.Equal(t, 0.0, clampConfidence(0.0))
	assert.Equal(t, 0.42, clampConfidence(0.42))
	assert.Equal(t, 1.0, clampConfidence(1.0))
	assert.Equal(t, 1.0, clampConfidence(99.0))
}
