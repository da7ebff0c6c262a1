// Package deepseek implements the classification provider against the
// DeepSeek chat completions API. The API is OpenAI wire-compatible, so the
// request body is built from go-openai's request types; the response is
// returned as raw bytes for the configured parser to decode.
package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.deepseek.com"

// Client calls the DeepSeek chat completions endpoint.
type Client struct {
	httpClient   *http.Client
	apiKey       string
	baseURL      string
	model        string
	maxTokens    int
	systemPrompt string
	logger       *zap.Logger
}

// NewClient creates a new DeepSeek provider client. The system prompt is
// loaded once at startup and sent with every call.
func NewClient(apiKey, baseURL, model string, maxTokens int, systemPrompt string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		apiKey:       apiKey,
		baseURL:      baseURL,
		model:        model,
		maxTokens:    maxTokens,
		systemPrompt: systemPrompt,
		logger:       logger,
	}
}

// Call sends the normalized comment text for classification and returns the
// raw response payload.
func (c *Client) Call(ctx context.Context, userText string) ([]byte, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
		MaxTokens: c.maxTokens,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("deepseek request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read deepseek response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("deepseek returned non-200 status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw))
		return nil, fmt.Errorf("deepseek returned status %d", resp.StatusCode)
	}

	c.logger.Debug("deepseek response received", zap.Int("bytes", len(raw)))
	return raw, nil
}
