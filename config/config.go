package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Generative backend
	Gemini GeminiConfig

	// Content collaborators (genz enrichment)
	News NewsConfig
	TMDB TMDBConfig
	Wiki WikiConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig holds the generative backend key and the ordered model
// fallback list (primary first).
type GeminiConfig struct {
	APIKey string
	APIURL string
	Models []string
}

type NewsConfig struct {
	APIKey   string
	BaseURL  string
	Language string
	PageSize int
}

type TMDBConfig struct {
	APIKey  string
	BaseURL string
}

type WikiConfig struct {
	SummaryURL string
	UserAgent  string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini backend
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Models = viper.GetStringSlice("gemini.models")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}
	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	// The service is useless without the generative backend — refuse to start.
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini.api_key is required - set GEMINI_API_KEY or add gemini.api_key to config.yaml")
	}
	if len(cfg.Gemini.Models) == 0 {
		return nil, fmt.Errorf("gemini.models must list at least one model")
	}

	// NewsAPI
	cfg.News.APIKey = viper.GetString("news.api_key")
	cfg.News.BaseURL = viper.GetString("news.base_url")
	cfg.News.Language = viper.GetString("news.language")
	cfg.News.PageSize = viper.GetInt("news.page_size")
	if key := viper.GetString("news_api_key"); key != "" {
		cfg.News.APIKey = key
	}

	// TMDB
	cfg.TMDB.APIKey = viper.GetString("tmdb.api_key")
	cfg.TMDB.BaseURL = viper.GetString("tmdb.base_url")
	if key := viper.GetString("tmdb_api_key"); key != "" {
		cfg.TMDB.APIKey = key
	}

	// Wikipedia
	cfg.Wiki.SummaryURL = viper.GetString("wiki.summary_url")
	cfg.Wiki.UserAgent = viper.GetString("wiki.user_agent")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 0)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Gemini models in fallback order (primary first)
	viper.SetDefault("gemini.api_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("gemini.models", []string{
		"gemini-2.5-pro",
		"gemini-2.5-flash",
		"gemini-2.5-flash-lite",
	})

	viper.SetDefault("news.base_url", "https://newsapi.org/v2")
	viper.SetDefault("news.language", "en")
	viper.SetDefault("news.page_size", 5)

	viper.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")

	// Wikipedia REST API (no key needed)
	viper.SetDefault("wiki.summary_url", "https://en.wikipedia.org/api/rest_v1/page/summary/")
	viper.SetDefault("wiki.user_agent", "GenZContentBot/1.0")
}
