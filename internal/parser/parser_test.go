package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commentguard/commentguard/internal/core"
)

func TestChatCompletionsParser_Parse(t *testing.T) {
	p := NewChatCompletionsParser()

	t.Run("valid spam verdict", func(t *testing.T) {
		raw := []byte(`{"choices":[{"message":{"content":"1,FREEGIFT,0.95"}}]}`)
		result, err := p.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, &core.ClassificationResult{Spam: true, Keyword: "FREEGIFT", Confidence: 0.95}, result)
	})

	t.Run("valid ham verdict", func(t *testing.T) {
		raw := []byte(`{"choices":[{"message":{"content":"0,NONE,0.10"}}]}`)
		result, err := p.Parse(raw)
		require.NoError(t, err)
		assert.False(t, result.Spam)
		assert.Equal(t, "NONE", result.Keyword)
		assert.InDelta(t, 0.10, result.Confidence, 1e-9)
	})

	t.Run("full upstream envelope", func(t *testing.T) {
		// the real response carries id/usage/etc fields around the choices
		raw := []byte(`{"id":"abc","object":"chat.completion","choices":[{"index":0,` +
			`"message":{"role":"assistant","content":"1,MANDALIKA77,0.95"},"finish_reason":"stop"}],` +
			`"usage":{"total_tokens":290}}`)
		result, err := p.Parse(raw)
		require.NoError(t, err)
		assert.True(t, result.Spam)
		assert.Equal(t, "MANDALIKA77", result.Keyword)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := p.Parse([]byte(`not json at all`))
		require.ErrorIs(t, err, core.ErrDecode)
	})

	t.Run("missing choices field", func(t *testing.T) {
		_, err := p.Parse([]byte(`{"candidates":[]}`))
		require.ErrorIs(t, err, core.ErrMissingField)
	})

	t.Run("empty choices", func(t *testing.T) {
		_, err := p.Parse([]byte(`{"choices":[]}`))
		require.ErrorIs(t, err, core.ErrEmptyResponse)
	})
}

func TestGenerateContentParser_Parse(t *testing.T) {
	p := NewGenerateContentParser()

	t.Run("valid ham verdict", func(t *testing.T) {
		raw := []byte(`{"candidates":[{"content":{"parts":[{"text":"0,NONE,0.10"}]}}]}`)
		result, err := p.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, &core.ClassificationResult{Spam: false, Keyword: "NONE", Confidence: 0.10}, result)
	})

	t.Run("valid spam verdict with trailing newline", func(t *testing.T) {
		raw := []byte(`{"candidates":[{"content":{"parts":[{"text":"1,KEYWORD,0.95\n"}]}}]}`)
		result, err := p.Parse(raw)
		require.NoError(t, err)
		assert.True(t, result.Spam)
		assert.Equal(t, "KEYWORD", result.Keyword)
		assert.InDelta(t, 0.95, result.Confidence, 1e-9)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := p.Parse([]byte(`{truncated`))
		require.ErrorIs(t, err, core.ErrDecode)
	})

	t.Run("missing candidates field", func(t *testing.T) {
		_, err := p.Parse([]byte(`{"choices":[]}`))
		require.ErrorIs(t, err, core.ErrMissingField)
	})

	t.Run("empty candidates", func(t *testing.T) {
		_, err := p.Parse([]byte(`{"candidates":[]}`))
		require.ErrorIs(t, err, core.ErrEmptyResponse)
	})

	t.Run("candidate without parts", func(t *testing.T) {
		_, err := p.Parse([]byte(`{"candidates":[{"content":{"parts":[]}}]}`))
		require.ErrorIs(t, err, core.ErrMissingField)
	})
}

func TestSplitVerdict(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *core.ClassificationResult
		wantErr error
	}{
		{name: "spam", content: "1,FREEGIFT,0.95", want: &core.ClassificationResult{Spam: true, Keyword: "FREEGIFT", Confidence: 0.95}},
		{name: "ham", content: "0,NONE,0.10", want: &core.ClassificationResult{Spam: false, Keyword: "NONE", Confidence: 0.10}},
		{name: "surrounding whitespace trimmed", content: " 1,CASINO,0.8\n", want: &core.ClassificationResult{Spam: true, Keyword: "CASINO", Confidence: 0.8}},
		{name: "two fields", content: "1,ONLYTWO", wantErr: core.ErrMalformedContent},
		{name: "four fields", content: "1,A,B,0.5", wantErr: core.ErrMalformedContent},
		{name: "non-integer spam flag", content: "yes,KW,0.5", wantErr: core.ErrInvalidSpamValue},
		{name: "out of range spam flag", content: "2,KW,0.5", wantErr: core.ErrInvalidSpamValue},
		{name: "non-numeric confidence", content: "1,KW,high", wantErr: core.ErrInvalidConfidenceValue},
		{name: "empty content", content: "", wantErr: core.ErrMalformedContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitVerdict(tt.content)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
