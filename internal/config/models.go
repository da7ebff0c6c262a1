package config

// LLMConfig represents the provider selection and dispatch settings
type LLMConfig struct {
	Provider      string
	MaxConcurrent int
	PromptFile    string
}

// DeepSeekConfig represents the configuration for the DeepSeek provider
type DeepSeekConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

// GeminiConfig represents the configuration for the Gemini provider
type GeminiConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	TopP        float32
	TopK        int
}

// ServerConfig represents the HTTP server configuration
type ServerConfig struct {
	ListenAddress string
	AllowedOrigin string
}

// GetLLM returns the LLM configuration
func (c *Config) GetLLM() LLMConfig {
	return LLMConfig{
		Provider:      c.GetString("llm.provider"),
		MaxConcurrent: c.GetInt("llm.max_concurrent"),
		PromptFile:    c.GetString("llm.prompt_file"),
	}
}

// GetDeepSeek returns the DeepSeek configuration
func (c *Config) GetDeepSeek() DeepSeekConfig {
	return DeepSeekConfig{
		APIKey:    c.GetString("deepseek.api_key"),
		BaseURL:   c.GetString("deepseek.base_url"),
		Model:     c.GetString("deepseek.model"),
		MaxTokens: c.GetInt("deepseek.max_tokens"),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:      c.GetString("gemini.api_key"),
		BaseURL:     c.GetString("gemini.base_url"),
		Model:       c.GetString("gemini.model"),
		MaxTokens:   c.GetInt("gemini.max_tokens"),
		Temperature: float32(c.GetFloat64("gemini.temperature")),
		TopP:        float32(c.GetFloat64("gemini.top_p")),
		TopK:        c.GetInt("gemini.top_k"),
	}
}

// GetServer returns the HTTP server configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		ListenAddress: c.GetString("server.listen_address"),
		AllowedOrigin: c.GetString("server.allowed_origin"),
	}
}
