package parser

import (
	"encoding/json"
	"fmt"

	"github.com/commentguard/commentguard/internal/core"
)

// GenerateContentParser decodes generate-content style payloads: a top-level
// "candidates" array whose first entry carries the verdict in the first
// content part's text field.
type GenerateContentParser struct{}

// NewGenerateContentParser creates a parser for the generate-content shape.
func NewGenerateContentParser() *GenerateContentParser {
	return &GenerateContentParser{}
}

type generateContentPayload struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Parse decodes a raw payload into a classification result.
func (p *GenerateContentParser) Parse(raw []byte) (*core.ClassificationResult, error) {
	var payload generateContentPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrDecode, err)
	}
	if payload.Candidates == nil {
		return nil, fmt.Errorf("%w: candidates", core.ErrMissingField)
	}
	if len(payload.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates", core.ErrEmptyResponse)
	}
	if len(payload.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: content parts", core.ErrMissingField)
	}
	return splitVerdict(payload.Candidates[0].Content.Parts[0].Text)
}
