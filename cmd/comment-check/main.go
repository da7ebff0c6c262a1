// comment-check classifies a single comment from the command line, using the
// same provider, parser and cache wiring as the daemon but without the HTTP
// layer.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/commentguard/commentguard/internal/adapters/cache"
	"github.com/commentguard/commentguard/internal/config"
	"github.com/commentguard/commentguard/internal/core"
	"github.com/commentguard/commentguard/internal/factory"
	"github.com/commentguard/commentguard/internal/logging"
	"github.com/commentguard/commentguard/internal/textnorm"
)

var (
	// Provider flags
	provider   = flag.String("provider", "deepseek", "classification provider (deepseek, gemini)")
	apiKey     = flag.String("api-key", "", "API key for the selected provider")
	model      = flag.String("model", "", "model name (provider default if empty)")
	promptFile = flag.String("prompt-file", "configs/prompt.txt", "system prompt file")

	// Input flags
	comment   = flag.String("comment", "", "comment text (use stdin if not specified)")
	inputFile = flag.String("file", "", "input file with the comment text")
	timeout   = flag.Duration("timeout", 30*time.Second, "classification timeout")

	// Output flags
	verbose    = flag.Bool("verbose", false, "enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "output logs in JSON format")
	configFile = flag.Bool("config", false, "load configuration from file instead of flags")
)

func main() {
	flag.Parse()

	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var cfg *config.Config
	if *configFile {
		cfg, err = config.New()
		if err != nil {
			logger.Fatal("failed to load configuration", zap.Error(err))
		}
	} else {
		cfg = createConfigFromFlags()
	}

	providerClient, err := factory.NewProviderFactory(cfg, logger).CreateProvider()
	if err != nil {
		logger.Fatal("failed to create provider client", zap.Error(err))
	}
	responseParser, err := factory.NewParserFactory(cfg, logger).CreateParser()
	if err != nil {
		logger.Fatal("failed to create response parser", zap.Error(err))
	}

	service := core.NewClassifierService(
		providerClient,
		responseParser,
		cache.NewResultCache(logger),
		cache.NewKeywordIndex(logger),
		int64(cfg.GetLLM().MaxConcurrent),
		logger,
	)

	text, err := readComment()
	if err != nil {
		logger.Fatal("failed to read comment", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := service.Classify(ctx, text)
	if err != nil {
		logger.Fatal("classification failed", zap.Error(err))
	}

	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))
	logger.Debug("fingerprint", zap.String("value", textnorm.Fingerprint(text)))
}

func readComment() (string, error) {
	if *comment != "" {
		return *comment, nil
	}
	var reader io.Reader = os.Stdin
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			return "", err
		}
		defer file.Close()
		reader = file
	}
	data, err := io.ReadAll(bufio.NewReader(reader))
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("no comment text provided")
	}
	return text, nil
}

// createConfigFromFlags builds a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	v.Set("llm.provider", *provider)
	v.Set("llm.prompt_file", *promptFile)

	switch *provider {
	case "deepseek":
		v.Set("deepseek.api_key", *apiKey)
		if *model != "" {
			v.Set("deepseek.model", *model)
		}
	case "gemini":
		v.Set("gemini.api_key", *apiKey)
		if *model != "" {
			v.Set("gemini.model", *model)
		}
	}

	return config.NewFromViper(v)
}
