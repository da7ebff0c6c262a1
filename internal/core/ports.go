package core

import (
	"context"
)

// Provider defines the interface for calling an external classification
// service. Call sends the normalized comment text and returns the raw,
// undecoded response payload.
type Provider interface {
	Call(ctx context.Context, userText string) ([]byte, error)
}

// ResponseParser decodes a raw provider payload into a classification result.
// Implementations are pure: the same payload always yields the same result or
// the same typed failure.
type ResponseParser interface {
	Parse(raw []byte) (*ClassificationResult, error)
}

// ResultCache maps comment fingerprints to final classification results.
// Implementations must be safe under concurrent access.
type ResultCache interface {
	// Get retrieves the cached result for a fingerprint
	Get(fingerprint string) (*ClassificationResult, bool)

	// Set stores a result under a fingerprint
	Set(fingerprint string, result *ClassificationResult)
}

// KeywordIndex maps previously confirmed spam keywords to confidence scores.
// Implementations must be safe under concurrent access.
type KeywordIndex interface {
	// Scan reports the first indexed keyword contained in the normalized
	// comment text
	Scan(normalizedText string) (keyword string, confidence float64, ok bool)

	// Record inserts or overwrites the confidence for a keyword
	Record(keyword string, confidence float64)
}
