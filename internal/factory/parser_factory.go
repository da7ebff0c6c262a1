package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/commentguard/commentguard/internal/config"
	"github.com/commentguard/commentguard/internal/core"
	"github.com/commentguard/commentguard/internal/parser"
)

// ParserFactory creates response parsers matching the configured provider's
// wire shape. The shape is bound once here, never sniffed per payload.
type ParserFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewParserFactory creates a new parser factory
func NewParserFactory(cfg *config.Config, logger *zap.Logger) *ParserFactory {
	return &ParserFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateParser creates a response parser based on the configured provider
func (f *ParserFactory) CreateParser() (core.ResponseParser, error) {
	provider := f.cfg.GetLLM().Provider

	switch provider {
	case "deepseek":
		return parser.NewChatCompletionsParser(), nil
	case "gemini":
		return parser.NewGenerateContentParser(), nil
	default:
		return nil, fmt.Errorf("no parser for provider: %s", provider)
	}
}
