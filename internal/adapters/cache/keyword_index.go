package cache

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/commentguard/commentguard/internal/core"
	"github.com/commentguard/commentguard/internal/textnorm"
)

// KeywordIndex is an in-memory implementation of the core.KeywordIndex
// interface: confirmed spam keywords mapped to the confidence the provider
// reported for them. Scan order is deterministic: longest keyword first, ties
// broken lexicographically, so the most specific keyword wins when several
// match.
type KeywordIndex struct {
	scores  map[string]float64
	ordered []string
	mu      sync.RWMutex
	logger  *zap.Logger
}

// NewKeywordIndex creates a new empty keyword index.
func NewKeywordIndex(logger *zap.Logger) *KeywordIndex {
	return &KeywordIndex{
		scores: make(map[string]float64),
		logger: logger,
	}
}

// Scan reports the first indexed keyword contained in the normalized comment
// text. The comparison is case-insensitive and ignores whitespace in the
// comment, so spaced-out keywords still match.
func (i *KeywordIndex) Scan(normalizedText string) (string, float64, bool) {
	haystack := strings.ToUpper(textnorm.StripSpace(normalizedText))
	if haystack == "" {
		return "", 0, false
	}

	i.mu.RLock()
	defer i.mu.RUnlock()

	for _, keyword := range i.ordered {
		if strings.Contains(haystack, strings.ToUpper(keyword)) {
			confidence := i.scores[keyword]
			i.logger.Debug("keyword matched",
				zap.String("keyword", keyword),
				zap.Float64("confidence", confidence))
			return keyword, confidence, true
		}
	}
	return "", 0, false
}

// Record inserts or overwrites the confidence for a keyword.
func (i *KeywordIndex) Record(keyword string, confidence float64) {
	if keyword == "" {
		return
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if _, exists := i.scores[keyword]; !exists {
		i.ordered = append(i.ordered, keyword)
		sort.Slice(i.ordered, func(a, b int) bool {
			if len(i.ordered[a]) != len(i.ordered[b]) {
				return len(i.ordered[a]) > len(i.ordered[b])
			}
			return i.ordered[a] < i.ordered[b]
		})
	}
	i.scores[keyword] = confidence
}

// Len reports the number of indexed keywords.
func (i *KeywordIndex) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return len(i.scores)
}

// keep the interface honest at compile time
var (
	_ core.ResultCache  = (*ResultCache)(nil)
	_ core.KeywordIndex = (*KeywordIndex)(nil)
)
