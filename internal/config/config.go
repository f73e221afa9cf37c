// Package config loads application configuration from file and environment.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server Server `yaml:"server" mapstructure:"server"`
	Log    Log    `yaml:"log" mapstructure:"log"`
	Serp   Serp   `yaml:"serp" mapstructure:"serp"`
	Scrape Scrape `yaml:"scrape" mapstructure:"scrape"`
	LLM    LLM    `yaml:"llm" mapstructure:"llm"`
	Policy Policy `yaml:"policy" mapstructure:"policy"`
}

// Server configures the evaluation HTTP server.
type Server struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// Log configures logging.
type Log struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Serp holds search-provider API settings.
type Serp struct {
	Key              string `yaml:"key" mapstructure:"key"`
	BaseURL          string `yaml:"base_url" mapstructure:"base_url"`
	ResultsPerQuery  int    `yaml:"results_per_query" mapstructure:"results_per_query"`
	MaxLinks         int    `yaml:"max_links" mapstructure:"max_links"`
	QueriesPerSecond int    `yaml:"queries_per_second" mapstructure:"queries_per_second"`
}

// Scrape configures evidence fetching.
type Scrape struct {
	TimeoutSecs   int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxChars      int    `yaml:"max_chars" mapstructure:"max_chars"`
	MaxConcurrent int    `yaml:"max_concurrent" mapstructure:"max_concurrent"`
	PdfToTextPath string `yaml:"pdftotext_path" mapstructure:"pdftotext_path"`
}

// LLM holds model-provider settings. Provider selects the adapter:
// "openai-chat", "openai-responses", or "anthropic".
type LLM struct {
	Provider    string  `yaml:"provider" mapstructure:"provider"`
	Key         string  `yaml:"key" mapstructure:"key"`
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	Model       string  `yaml:"model" mapstructure:"model"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
	MaxTokens   int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	WebSearch   bool    `yaml:"web_search" mapstructure:"web_search"`
}

// Policy carries business policy embedded in the prompt as data.
type Policy struct {
	ExcludedPrograms []string `yaml:"excluded_programs" mapstructure:"excluded_programs"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FUNDING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.port", 3001)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("serp.base_url", "https://serpapi.com")
	v.SetDefault("serp.results_per_query", 5)
	v.SetDefault("serp.max_links", 7)
	v.SetDefault("serp.queries_per_second", 5)
	v.SetDefault("scrape.timeout_secs", 10)
	v.SetDefault("scrape.max_chars", 4000)
	v.SetDefault("scrape.max_concurrent", 8)
	v.SetDefault("scrape.pdftotext_path", "pdftotext")
	v.SetDefault("llm.provider", "openai-chat")
	v.SetDefault("llm.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.model", "gpt-4")
	v.SetDefault("llm.temperature", 0.2)
	v.SetDefault("llm.max_tokens", 2048)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg Log) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
