package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/commentguard/commentguard/internal/textnorm"
)

// ClassifierService is the core service for comment spam classification. It
// checks the result cache by fingerprint, then the keyword index by substring,
// and only on a full miss dispatches a permit-gated call to the provider.
//
// Concurrent requests for the same comment may each miss the cache and each
// call the provider; there is no in-flight de-duplication.
type ClassifierService struct {
	provider Provider
	parser   ResponseParser
	results  ResultCache
	keywords KeywordIndex
	permits  *semaphore.Weighted
	logger   *zap.Logger
}

// NewClassifierService creates a new classifier service. maxConcurrent bounds
// the number of simultaneous outbound provider calls for the process lifetime.
func NewClassifierService(
	provider Provider,
	parser ResponseParser,
	results ResultCache,
	keywords KeywordIndex,
	maxConcurrent int64,
	logger *zap.Logger,
) *ClassifierService {
	return &ClassifierService{
		provider: provider,
		parser:   parser,
		results:  results,
		keywords: keywords,
		permits:  semaphore.NewWeighted(maxConcurrent),
		logger:   logger,
	}
}

// Classify determines whether a comment is spam. Failures are per-request:
// nothing is retried and no cache tier is touched unless the provider call
// parsed successfully.
func (s *ClassifierService) Classify(ctx context.Context, comment string) (*ClassificationResult, error) {
	normalized := textnorm.Normalize(comment)
	fingerprint := textnorm.Digest(normalized)

	if result, ok := s.results.Get(fingerprint); ok {
		s.logger.Debug("result cache hit", zap.String("fingerprint", fingerprint))
		return result, nil
	}

	if keyword, confidence, ok := s.keywords.Scan(normalized); ok {
		s.logger.Debug("keyword index hit",
			zap.String("keyword", keyword),
			zap.Float64("confidence", confidence))
		return &ClassificationResult{Spam: true, Keyword: keyword, Confidence: confidence}, nil
	}

	// Admission control: block here until one of the outbound slots frees
	// up. Acquire honors ctx, so a caller that goes away does not leave the
	// pool depleted.
	if err := s.permits.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("failed to acquire classification slot: %w", err)
	}
	raw, callErr := s.provider.Call(ctx, normalized)
	// The permit covers only the network call; parsing never holds a slot.
	s.permits.Release(1)
	if callErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, callErr)
	}

	result, err := s.parser.Parse(raw)
	if err != nil {
		return nil, err
	}

	s.keywords.Record(result.Keyword, result.Confidence)
	s.results.Set(fingerprint, result)

	s.logger.Info("comment classified",
		zap.Bool("spam", result.Spam),
		zap.String("keyword", result.Keyword),
		zap.Float64("confidence", result.Confidence),
		zap.String("fingerprint", fingerprint))

	return result, nil
}

// LookupFingerprint returns the cached result for a fingerprint, for
// diagnostic inspection. It never triggers a provider call.
func (s *ClassifierService) LookupFingerprint(fingerprint string) (*ClassificationResult, bool) {
	return s.results.Get(fingerprint)
}
