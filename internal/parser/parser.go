// Package parser decodes provider response payloads into classification
// results. Two wire shapes exist: chat-completions style ("choices") and
// generate-content style ("candidates"). The shape is fixed by configuration,
// never sniffed from the payload.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/commentguard/commentguard/internal/core"
)

// splitVerdict turns the extracted "spam,keyword,confidence" text into a
// result. Validation order: field count, spam flag, confidence. The
// confidence range is not constrained to [0,1] here; range policy belongs to
// callers.
func splitVerdict(content string) (*core.ClassificationResult, error) {
	fields := strings.Split(strings.TrimSpace(content), ",")
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: expected 3 fields, got %d", core.ErrMalformedContent, len(fields))
	}

	flag, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidSpamValue, fields[0])
	}
	if flag != 0 && flag != 1 {
		return nil, fmt.Errorf("%w: %d", core.ErrInvalidSpamValue, flag)
	}

	confidence, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidConfidenceValue, fields[2])
	}

	return &core.ClassificationResult{
		Spam:       flag == 1,
		Keyword:    fields[1],
		Confidence: confidence,
	}, nil
}
