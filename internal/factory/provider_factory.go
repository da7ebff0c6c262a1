package factory

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/commentguard/commentguard/internal/adapters/provider/deepseek"
	"github.com/commentguard/commentguard/internal/adapters/provider/gemini"
	"github.com/commentguard/commentguard/internal/config"
	"github.com/commentguard/commentguard/internal/core"
)

// ProviderFactory creates classification provider clients
type ProviderFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(cfg *config.Config, logger *zap.Logger) *ProviderFactory {
	return &ProviderFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateProvider creates a provider client based on the configuration. The
// system prompt file is read once here; the prompt stays immutable for the
// process lifetime.
func (f *ProviderFactory) CreateProvider() (core.Provider, error) {
	llmCfg := f.cfg.GetLLM()

	prompt, err := loadSystemPrompt(llmCfg.PromptFile)
	if err != nil {
		return nil, err
	}

	switch llmCfg.Provider {
	case "deepseek":
		dsCfg := f.cfg.GetDeepSeek()
		return deepseek.NewClient(
			dsCfg.APIKey,
			dsCfg.BaseURL,
			dsCfg.Model,
			dsCfg.MaxTokens,
			prompt,
			f.logger,
		), nil
	case "gemini":
		gmCfg := f.cfg.GetGemini()
		genConfig := gemini.GenerationConfig{
			StopSequences:   []string{"\n"},
			Temperature:     gmCfg.Temperature,
			MaxOutputTokens: gmCfg.MaxTokens,
			TopP:            gmCfg.TopP,
			TopK:            gmCfg.TopK,
		}
		return gemini.NewClient(
			gmCfg.APIKey,
			gmCfg.BaseURL,
			gmCfg.Model,
			genConfig,
			prompt,
			f.logger,
		), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", llmCfg.Provider)
	}
}

func loadSystemPrompt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt file %s: %w", path, err)
	}
	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return "", fmt.Errorf("prompt file %s is empty", path)
	}
	return prompt, nil
}
