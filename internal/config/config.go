package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider" env:"LLM_PROVIDER"`
	Model    string `toml:"model" env:"LLM_MODEL"`
	APIKey   string `toml:"api_key" env:"LLM_API_KEY"`
	BaseURL  string `toml:"base_url" env:"LLM_BASE_URL"`
}

type ServerConfig struct {
	Port string `toml:"port" env:"PORT"`
}

type LimitsConfig struct {
	// MaxPromptBytes caps the serialized table sent to the model; larger
	// documents are rejected with a failure rather than truncated.
	MaxPromptBytes int   `toml:"max_prompt_bytes" env:"MAX_PROMPT_BYTES"`
	MaxUploadBytes int64 `toml:"max_upload_bytes" env:"MAX_UPLOAD_BYTES"`
}

// PromptsConfig overrides the built-in prompt template for a document kind.
// Empty fields keep the default.
type PromptsConfig struct {
	BalanceSheet string `toml:"balance_sheet"`
	ProfitLoss   string `toml:"profit_loss"`
	CashFlow     string `toml:"cash_flow"`
}

type Config struct {
	LLM     LLMConfig     `toml:"llm"`
	Server  ServerConfig  `toml:"server"`
	Limits  LimitsConfig  `toml:"limits"`
	Prompts PromptsConfig `toml:"prompts"`
}

func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider: "gemini",
			Model:    "gemini-1.5-flash",
		},
		Server: ServerConfig{
			Port: "8080",
		},
		Limits: LimitsConfig{
			MaxPromptBytes: 256 << 10,
			MaxUploadBytes: 8 << 20,
		},
	}
}

// Load reads the TOML config at path, then applies environment overrides on
// top. A missing file is fine since defaults plus environment carry a full
// configuration, but an unreadable or malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config '%s': %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// fall through to env-only config
	default:
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the server must not start with. A missing
// credential is fatal here, before any request is accepted, not on the first
// call to the provider.
func (c *Config) Validate() error {
	if c.LLM.Provider == "" {
		return fmt.Errorf("llm provider is required")
	}
	if c.LLM.Provider != "ollama" && c.LLM.APIKey == "" {
		return fmt.Errorf("llm provider %q requires an API key (set LLM_API_KEY or [llm] api_key)", c.LLM.Provider)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	return nil
}
