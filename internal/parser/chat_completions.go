package parser

import (
	"encoding/json"
	"fmt"

	"github.com/commentguard/commentguard/internal/core"
)

// ChatCompletionsParser decodes chat-completions style payloads: a top-level
// "choices" array whose first entry carries the verdict in message.content.
type ChatCompletionsParser struct{}

// NewChatCompletionsParser creates a parser for the chat-completions shape.
func NewChatCompletionsParser() *ChatCompletionsParser {
	return &ChatCompletionsParser{}
}

type chatCompletionsPayload struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Parse decodes a raw payload into a classification result.
func (p *ChatCompletionsParser) Parse(raw []byte) (*core.ClassificationResult, error) {
	var payload chatCompletionsPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrDecode, err)
	}
	if payload.Choices == nil {
		return nil, fmt.Errorf("%w: choices", core.ErrMissingField)
	}
	if len(payload.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", core.ErrEmptyResponse)
	}
	return splitVerdict(payload.Choices[0].Message.Content)
}
