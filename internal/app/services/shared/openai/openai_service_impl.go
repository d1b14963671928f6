package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"rinova-service/internal/app/config"
	"rinova-service/internal/app/contracts"
	"rinova-service/internal/app/models"
	"rinova-service/internal/pkg/constvars"
	"rinova-service/internal/pkg/exceptions"
	"time"
)

const extractionTemperature = 0.1

// systemPrompt carries the coding guidelines the model must follow. The
// reply is requested as a single JSON object so it can be parsed directly.
const systemPrompt = `You are a medical coding expert. Extract relevant ICD-10 and CPT codes from the given text.

Guidelines:
1. Start with what's explicitly stated in the text
   - Main symptoms or complaints
   - Any diagnosed conditions
   - Any procedures or tests mentioned

2. Code Assignment Rules:
   - Only code what is documented
   - If chief complaint is clear, mark it as primary
   - For brief notes, it's okay to have just one code
   - Match E&M level to documentation detail
   - Include ordered tests/procedures when mentioned

3. Confidence Scoring:
   - High (>0.9): Clear documentation with specific details
   - Medium (0.7-0.9): Some supporting information
   - Low (<0.7): Minimal information or unclear context

Return in this format:
{
    "icd10_codes": [
        {
            "code": "[code]",
            "description": "[official description]",
            "confidence": [0-1],
            "primary": [true/false],
            "evidence": "[relevant text from note]"
        }
    ],
    "cpt_codes": [
        {
            "code": "[code]",
            "description": "[official description]",
            "confidence": [0-1],
            "category": "[category]",
            "evidence": "[relevant text from note]"
        }
    ]
}`

type openAIClient struct {
	apiKey  string
	baseUrl string
	model   string
	client  *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

func NewOpenAIClient(internalConfig *config.InternalConfig) contracts.ExtractionClient {
	return &openAIClient{
		apiKey:  internalConfig.OpenAI.APIKey,
		baseUrl: internalConfig.OpenAI.BaseUrl,
		model:   internalConfig.OpenAI.Model,
		client: &http.Client{
			Timeout: time.Duration(internalConfig.OpenAI.ExtractionTimeoutInSeconds) * time.Second,
		},
	}
}

func (c *openAIClient) ExtractMedicalCodes(ctx context.Context, medicalText string) (*models.ExtractionResult, error) {
	if c.apiKey == "" {
		return nil, exceptions.ErrOpenAIMissingAPIKey(nil)
	}

	request := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Extract codes from this text: %s", medicalText)},
		},
		Temperature:    extractionTemperature,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.baseUrl, bytes.NewReader(requestJSON))
	if err != nil {
		return nil, exceptions.ErrOpenAIBuildRequest(err)
	}
	httpReq.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.apiKey)
	httpReq.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, exceptions.ErrOpenAISendRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrOpenAICompletion(err)
	}

	if resp.StatusCode != constvars.StatusOK {
		var openaiErr apiError
		if json.Unmarshal(respBody, &openaiErr) == nil && openaiErr.Error.Message != "" {
			return nil, exceptions.ErrOpenAICompletion(fmt.Errorf("status %d: %s", resp.StatusCode, openaiErr.Error.Message))
		}
		return nil, exceptions.ErrOpenAICompletion(fmt.Errorf("status %d: %s", resp.StatusCode, string(respBody)))
	}

	var completion chatResponse
	err = json.Unmarshal(respBody, &completion)
	if err != nil {
		return nil, exceptions.ErrOpenAICompletion(err)
	}
	if len(completion.Choices) == 0 {
		return nil, exceptions.ErrOpenAIEmptyChoices(nil)
	}

	result := new(models.ExtractionResult)
	err = json.Unmarshal([]byte(completion.Choices[0].Message.Content), result)
	if err != nil {
		return nil, exceptions.ErrOpenAIInvalidPayload(err)
	}

	return validateExtractionResult(result), nil
}

func (c *openAIClient) HealthCheck(ctx context.Context) error {
	if c.apiKey == "" {
		return errors.New("missing API key")
	}
	return nil
}

// validateExtractionResult normalizes the parsed model reply: missing code
// arrays become empty arrays and every confidence is clamped into [0,1].
// Out-of-range confidences are clamped, never rejected.
func validateExtractionResult(result *models.ExtractionResult) *models.ExtractionResult {
	if result.ICD10Codes == nil {
		result.ICD10Codes = []models.ICD10Code{}
	}
	if result.CPTCodes == nil {
		result.CPTCodes = []models.CPTCode{}
	}

	for i := range result.ICD10Codes {
		result.ICD10Codes[i].Confidence = clampConfidence(result.ICD10Codes[i].Confidence)
	}
	for i := range result.CPTCodes {
		result.CPTCodes[i].Confidence = clampConfidence(result.CPTCodes[i].Confidence)
	}

	return result
}

func clampConfidence(confidence float64) float64 {
	if confidence < 0.0 {
		return 0.0
	}
	if confidence > 1.0 {
		return 1.0
	}
	return confidence
}
