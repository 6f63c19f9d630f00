package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"socratic/models"
)

// StructuredClient provides typed JSON responses from Gemini calls
type StructuredClient[T any] struct {
	Config        *models.AIConfig
	PromptManager *PromptManager
	HTTPClient    *http.Client
}

// NewStructuredClient creates a new structured client
func NewStructuredClient[T any](config *models.AIConfig) *StructuredClient[T] {
	log.Printf("[StructuredClient] Initializing client with model=%s, timeout=%v",
		config.Model, config.Timeout)

	return &StructuredClient[T]{
		Config:        config,
		PromptManager: NewPromptManager(),
		HTTPClient:    &http.Client{Timeout: config.Timeout},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"system_instruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GetJsonResponse makes a typed Gemini call and parses the JSON response
func (client *StructuredClient[T]) GetJsonResponse(ctx context.Context, systemInstruction, prompt string) (*T, error) {
	log.Printf("[StructuredClient] Starting JSON response request - model=%s, promptLength=%d",
		client.Config.Model, len(prompt))

	ctx, cancel := context.WithTimeout(ctx, client.Config.Timeout)
	defer cancel()

	reqBody := geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{ResponseMIMEType: "application/json"},
	}
	if systemInstruction != "" {
		reqBody.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: systemInstruction}}}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", client.Config.BaseURL, client.Config.Model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", client.Config.APIKey)

	resp, err := client.HTTPClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("request timeout after %v: %w", client.Config.Timeout, err)
		}
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Gemini API error (status %d): %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[StructuredClient] ERROR: Failed to read response body: %v", err)
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		log.Printf("[StructuredClient] ERROR: Failed to parse Gemini response envelope: %v", err)
		return nil, fmt.Errorf("failed to parse Gemini response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		log.Printf("[StructuredClient] ERROR: No candidates in Gemini response")
		return nil, fmt.Errorf("no text found in Gemini response")
	}

	var sb strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	content := cleanJSONContent(sb.String())

	if content == "" {
		return nil, fmt.Errorf("no text found in Gemini response")
	}

	var result T
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		log.Printf("[StructuredClient] ERROR: Failed to unmarshal JSON content into result type: %v", err)
		log.Printf("[StructuredClient] Cleaned content: %s", content)
		return nil, fmt.Errorf("failed to parse JSON content into result type: %w", err)
	}

	log.Printf("[StructuredClient] Successfully parsed JSON response into result type")
	return &result, nil
}

// GetJsonResponseFromPrompt renders named templates and gets a structured response
func (client *StructuredClient[T]) GetJsonResponseFromPrompt(ctx context.Context, promptName string, replacements map[string]string) (*T, error) {
	system, err := client.PromptManager.RenderPrompt(promptName+"_system", replacements)
	if err != nil {
		return nil, fmt.Errorf("failed to render prompt: %w", err)
	}
	input, err := client.PromptManager.RenderPrompt(promptName+"_input", replacements)
	if err != nil {
		return nil, fmt.Errorf("failed to render prompt: %w", err)
	}
	return client.GetJsonResponse(ctx, system, input)
}

// cleanJSONContent removes markdown code blocks and cleans JSON content
func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") && strings.HasSuffix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	} else if strings.HasPrefix(content, "```") && strings.HasSuffix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	// Drop conversational chatter the model sometimes puts before the object
	if !strings.HasPrefix(content, "{") && !strings.HasPrefix(content, "[") {
		if idx := strings.IndexAny(content, "{["); idx > 0 {
			prefix := content[:idx]
			if !strings.ContainsAny(prefix, "{[") {
				log.Printf("[StructuredClient] Trimming %d bytes of chatter before JSON", idx)
				content = content[idx:]
			}
		}
	}

	return strings.TrimSpace(content)
}
