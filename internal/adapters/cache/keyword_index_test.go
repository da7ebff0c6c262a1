package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestKeywordIndex_Scan(t *testing.T) {
	idx := NewKeywordIndex(zap.NewNop())
	idx.Record("spamword", 0.9)

	tests := []struct {
		name    string
		text    string
		keyword string
		hit     bool
	}{
		{name: "substring match", text: "this has spamword inside", keyword: "spamword", hit: true},
		{name: "case-insensitive match", text: "this has SPAMWORD inside", keyword: "spamword", hit: true},
		{name: "whitespace in comment ignored", text: "spam word split up", keyword: "spamword", hit: true},
		{name: "no match", text: "a perfectly fine comment", hit: false},
		{name: "empty text", text: "", hit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keyword, confidence, ok := idx.Scan(tt.text)
			assert.Equal(t, tt.hit, ok)
			if tt.hit {
				assert.Equal(t, tt.keyword, keyword)
				assert.InDelta(t, 0.9, confidence, 1e-9)
			}
		})
	}
}

func TestKeywordIndex_LongestKeywordWins(t *testing.T) {
	idx := NewKeywordIndex(zap.NewNop())
	idx.Record("gift", 0.5)
	idx.Record("freegift", 0.9)

	keyword, confidence, ok := idx.Scan("claim your free gift today")
	require.True(t, ok)
	assert.Equal(t, "freegift", keyword)
	assert.InDelta(t, 0.9, confidence, 1e-9)
}

func TestKeywordIndex_TieBreakLexicographic(t *testing.T) {
	idx := NewKeywordIndex(zap.NewNop())
	idx.Record("zzzz", 0.7)
	idx.Record("aaaa", 0.8)

	keyword, _, ok := idx.Scan("zzzz aaaa both present")
	require.True(t, ok)
	assert.Equal(t, "aaaa", keyword)
}

func TestKeywordIndex_RecordOverwrites(t *testing.T) {
	idx := NewKeywordIndex(zap.NewNop())
	idx.Record("casino", 0.5)
	idx.Record("casino", 0.95)

	assert.Equal(t, 1, idx.Len())
	_, confidence, ok := idx.Scan("casino night")
	require.True(t, ok)
	assert.InDelta(t, 0.95, confidence, 1e-9)
}

func TestKeywordIndex_EmptyKeywordIgnored(t *testing.T) {
	idx := NewKeywordIndex(zap.NewNop())
	idx.Record("", 0.9)

	assert.Equal(t, 0, idx.Len())
	_, _, ok := idx.Scan("anything")
	assert.False(t, ok)
}

func TestKeywordIndex_Concurrent(t *testing.T) {
	idx := NewKeywordIndex(zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			idx.Record(fmt.Sprintf("keyword%d", n), 0.5)
		}(i)
		go func() {
			defer wg.Done()
			idx.Scan("some keyword7 text")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, idx.Len())
}
