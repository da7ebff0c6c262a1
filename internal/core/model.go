package core

import "errors"

// ClassificationResult is the verdict for a single comment. It is created by
// a response parser after a provider call, or synthesized from the keyword
// index on a scan hit, and is never mutated afterwards.
type ClassificationResult struct {
	Spam       bool    `json:"spam"`
	Keyword    string  `json:"keyword"`
	Confidence float64 `json:"confidence"`
}

var (
	// ErrTransport is returned when the outbound provider call fails at the
	// network layer.
	ErrTransport = errors.New("provider transport failure")
	// ErrDecode is returned when the provider payload is not valid JSON.
	ErrDecode = errors.New("provider payload not decodable")
	// ErrMissingField is returned when the decoded payload lacks the expected
	// top-level field.
	ErrMissingField = errors.New("provider payload missing expected field")
	// ErrEmptyResponse is returned when the expected field is present but
	// holds no entries.
	ErrEmptyResponse = errors.New("provider returned empty response")
	// ErrMalformedContent is returned when the verdict text does not split
	// into exactly three comma-separated fields.
	ErrMalformedContent = errors.New("malformed verdict content")
	// ErrInvalidSpamValue is returned when the spam flag field is not 0 or 1.
	ErrInvalidSpamValue = errors.New("invalid spam flag value")
	// ErrInvalidConfidenceValue is returned when the confidence field does
	// not parse as a float.
	ErrInvalidConfidenceValue = errors.New("invalid confidence value")
)
