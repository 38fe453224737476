package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Provider selects the text-generation backend.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
	ProviderMock   Provider = "mock"
)

// Config stores all configuration of the service. Values are read by viper
// from an optional config file and STUDIO_* environment variables.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Generation GenerationConfig `mapstructure:"generation"`
	Storage    StorageConfig    `mapstructure:"storage"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type GenerationConfig struct {
	Provider Provider `mapstructure:"provider"` // "openai", "gemini", "mock"

	// OpenAI settings.
	OpenAIAPIKey  string `mapstructure:"openai_api_key"`
	OpenAIModel   string `mapstructure:"openai_model"`
	OpenAIBaseURL string `mapstructure:"openai_base_url"`

	// Gemini / Vertex settings.
	GCPProject  string `mapstructure:"gcp_project"`
	GCPLocation string `mapstructure:"gcp_location"`
	GeminiModel string `mapstructure:"gemini_model"`

	// Shared sampling settings, carried over from the original defaults.
	Temperature     float32 `mapstructure:"temperature"`
	MaxOutputTokens int     `mapstructure:"max_output_tokens"`
}

type StorageConfig struct {
	Backend    string `mapstructure:"backend"` // "memory", "sqlite" or "firestore"
	SQLitePath string `mapstructure:"sqlite_path"`
	GCPProject string `mapstructure:"gcp_project"`
}

// Load reads configuration from configPath (optional) plus environment and
// validates it. Misconfiguration surfaces here, at startup, never
// per-request.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("studio")
		v.SetConfigType("yaml")
	}

	v.SetDefault("server.addr", ":8080")

	v.SetDefault("generation.provider", string(ProviderMock))
	v.SetDefault("generation.openai_model", "gpt-4o-mini")
	v.SetDefault("generation.gcp_location", "us-central1")
	v.SetDefault("generation.gemini_model", "gemini-2.5-flash")
	v.SetDefault("generation.temperature", 0.75)
	v.SetDefault("generation.max_output_tokens", 1200)

	// Keys without a meaningful default still need one registered:
	// AutomaticEnv only resolves keys viper already knows about.
	v.SetDefault("generation.openai_api_key", "")
	v.SetDefault("generation.openai_base_url", "")
	v.SetDefault("generation.gcp_project", "")

	v.SetDefault("storage.backend", "memory")
	v.SetDefault("storage.sqlite_path", "data/studio.db")
	v.SetDefault("storage.gcp_project", "")

	v.SetEnvPrefix("STUDIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			return nil, fmt.Errorf("reading config %s: %w", configPath, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Generation.Provider {
	case ProviderOpenAI, ProviderGemini, ProviderMock:
	default:
		return fmt.Errorf("unknown generation provider %q", c.Generation.Provider)
	}

	if c.Generation.Provider == ProviderGemini && c.Generation.GCPProject == "" {
		return errors.New("generation.gcp_project is required for the gemini provider")
	}

	switch c.Storage.Backend {
	case "memory", "sqlite":
	case "firestore":
		if c.Storage.GCPProject == "" {
			return errors.New("storage.gcp_project is required for the firestore backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	return nil
}
