package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"

	DefaultOpenRouterModel = "openai/gpt-4o-mini-2024-07-18"
	DefaultGeminiModel     = "gemini-1.5-flash"
)

// Config is the process-wide configuration. It is loaded once at startup and
// treated as read-only afterwards.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logging  LoggingConfig  `toml:"logging"`
	Overpass OverpassConfig `toml:"overpass"`
	LLM      LLMConfig      `toml:"llm"`
}

type ServerConfig struct {
	Port               string   `toml:"port"`
	Mode               string   `toml:"mode"` // gin mode: "release", "debug" or "test"
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

type OverpassConfig struct {
	URL          string   `toml:"url"`
	QueryTimeout int      `toml:"query_timeout"` // seconds, embedded in the query header
	HTTPTimeout  Duration `toml:"http_timeout"`
	UserAgent    string   `toml:"user_agent"`
}

// LLMConfig holds the text-generation provider settings. APIKey may be empty;
// callers must treat that as a configuration error at request time.
type LLMConfig struct {
	Provider    string   `toml:"provider"`
	APIKey      string   `toml:"api_key"`
	Model       string   `toml:"model"`
	BaseURL     string   `toml:"base_url"`
	HTTPTimeout Duration `toml:"http_timeout"`
	Referer     string   `toml:"referer"`
	Title       string   `toml:"title"`
}

// CredentialName is the environment variable the configured provider reads its key from.
func (c LLMConfig) CredentialName() string {
	if strings.EqualFold(c.Provider, ProviderGemini) {
		return "GEMINI_API_KEY"
	}
	return "OPENROUTER_API_KEY"
}

func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               "8080",
			Mode:               "release",
			CORSAllowedOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Overpass: OverpassConfig{
			URL:          "https://overpass-api.de/api/interpreter",
			QueryTimeout: 25,
			HTTPTimeout:  Duration(30 * time.Second),
			UserAgent:    "monumentscout/1.0",
		},
		LLM: LLMConfig{
			Provider:    ProviderOpenRouter,
			BaseURL:     "https://openrouter.ai/api/v1",
			HTTPTimeout: Duration(60 * time.Second),
			Referer:     "https://monumentscout.app",
			Title:       "Monument Scout",
		},
	}
}

// Load builds the configuration with priority: env > config file > defaults.
// A .env file in the working directory is loaded into the environment first
// when present. The config file is read from CONFIG_FILE if set.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return LoadFromFile(os.Getenv("CONFIG_FILE"))
}

// LoadFromFile is Load without the .env step; path may be empty.
func LoadFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	applyProviderDefaults(cfg)

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.Server.Mode = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.Server.CORSAllowedOrigins = splitList(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if v := os.Getenv("OVERPASS_URL"); v != "" {
		cfg.Overpass.URL = v
	}
	if v := os.Getenv("OVERPASS_QUERY_TIMEOUT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid OVERPASS_QUERY_TIMEOUT %q", v)
		}
		cfg.Overpass.QueryTimeout = n
	}
	if v := os.Getenv("OVERPASS_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid OVERPASS_HTTP_TIMEOUT %q: %w", v, err)
		}
		cfg.Overpass.HTTPTimeout = Duration(d)
	}
	if v := os.Getenv("OVERPASS_USER_AGENT"); v != "" {
		cfg.Overpass.UserAgent = v
	}

	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv(cfg.LLM.CredentialName()); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("OPENROUTER_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid LLM_HTTP_TIMEOUT %q: %w", v, err)
		}
		cfg.LLM.HTTPTimeout = Duration(d)
	}
	if v := os.Getenv("APP_REFERER"); v != "" {
		cfg.LLM.Referer = v
	}
	if v := os.Getenv("APP_TITLE"); v != "" {
		cfg.LLM.Title = v
	}

	return nil
}

func applyProviderDefaults(cfg *Config) {
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	cfg.LLM.APIKey = strings.TrimSpace(cfg.LLM.APIKey)
	if cfg.LLM.Model != "" {
		return
	}
	switch cfg.LLM.Provider {
	case ProviderGemini:
		cfg.LLM.Model = DefaultGeminiModel
	default:
		cfg.LLM.Model = DefaultOpenRouterModel
	}
}

// Duration is a time.Duration written as a string ("30s") in config files.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
