package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/commentguard/commentguard/internal/core"
)

func TestResultCache_GetSet(t *testing.T) {
	c := NewResultCache(zap.NewNop())

	_, ok := c.Get("missing")
	assert.False(t, ok)

	result := &core.ClassificationResult{Spam: true, Keyword: "CASINO", Confidence: 0.9}
	c.Set("fp1", result)

	got, ok := c.Get("fp1")
	require.True(t, ok)
	assert.Equal(t, result, got)
	assert.Equal(t, 1, c.Len())
}

func TestResultCache_IdempotentSet(t *testing.T) {
	c := NewResultCache(zap.NewNop())
	result := &core.ClassificationResult{Spam: true, Keyword: "CASINO", Confidence: 0.9}

	c.Set("fp1", result)
	c.Set("fp1", result)

	assert.Equal(t, 1, c.Len())
	got, ok := c.Get("fp1")
	require.True(t, ok)
	assert.Equal(t, result, got)
}

func TestResultCache_Concurrent(t *testing.T) {
	c := NewResultCache(zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			c.Set(fmt.Sprintf("fp-%d", n), &core.ClassificationResult{Spam: n%2 == 0})
		}(i)
		go func(n int) {
			defer wg.Done()
			c.Get(fmt.Sprintf("fp-%d", n))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, c.Len())
}
