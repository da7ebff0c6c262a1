// Package gemini implements the classification provider against the Gemini
// generateContent REST API. Request types are defined locally; the response
// is returned as raw bytes for the configured parser to decode.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// GenerationConfig tunes the model output. Stop on newline keeps the verdict
// to a single "spam,keyword,confidence" line.
type GenerationConfig struct {
	StopSequences   []string `json:"stopSequences,omitempty"`
	Temperature     float32  `json:"temperature,omitempty"`
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
	TopP            float32  `json:"topP,omitempty"`
	TopK            int      `json:"topK,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentRequest struct {
	SystemInstruction *content          `json:"system_instruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	httpClient   *http.Client
	apiKey       string
	baseURL      string
	model        string
	systemPrompt string
	genConfig    GenerationConfig
	logger       *zap.Logger
}

// NewClient creates a new Gemini provider client. The system prompt is loaded
// once at startup and sent as the system instruction with every call.
func NewClient(apiKey, baseURL, model string, genConfig GenerationConfig, systemPrompt string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		apiKey:       apiKey,
		baseURL:      baseURL,
		model:        model,
		systemPrompt: systemPrompt,
		genConfig:    genConfig,
		logger:       logger,
	}
}

// Call sends the normalized comment text for classification and returns the
// raw response payload.
func (c *Client) Call(ctx context.Context, userText string) ([]byte, error) {
	reqBody := generateContentRequest{
		SystemInstruction: &content{Parts: []part{{Text: c.systemPrompt}}},
		Contents:          []content{{Parts: []part{{Text: userText}}}},
		GenerationConfig:  &c.genConfig,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generate content request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gemini response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("gemini returned non-200 status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw))
		return nil, fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	c.logger.Debug("gemini response received", zap.Int("bytes", len(raw)))
	return raw, nil
}
