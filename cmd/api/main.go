package main

import (
	"context"
	"fmt"

	"integrated-bots/config"
	_ "integrated-bots/docs" // Swagger docs
	"integrated-bots/internal/bot/banking"
	"integrated-bots/internal/bot/cooking"
	botHTTP "integrated-bots/internal/bot/delivery/http"
	"integrated-bots/internal/bot/finance"
	"integrated-bots/internal/bot/genz"
	"integrated-bots/internal/bot/gptmaster"
	"integrated-bots/internal/httpserver"
	"integrated-bots/internal/router"
	routerHTTP "integrated-bots/internal/router/delivery/http"
	"integrated-bots/pkg/completion"
	"integrated-bots/pkg/gemini"
	"integrated-bots/pkg/log"
	"integrated-bots/pkg/newsapi"
	"integrated-bots/pkg/tmdb"
	"integrated-bots/pkg/wiki"
)

// @title       Integrated Bots API
// @description Query router dispatching free-text requests to banking, cooking, finance, mentor, and GenZ content bots over a Gemini backend.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Integrated Bots...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Model fallback order: %v", cfg.Gemini.Models)

	// 3. Generative backend
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.APIURL != "" {
		geminiClient.SetAPIURL(cfg.Gemini.APIURL)
	}
	llm := completion.NewManager(geminiClient, cfg.Gemini.Models, logger)

	// 4. Content collaborators (optional, key-gated)
	var newsClient genz.NewsSearcher
	if cfg.News.APIKey != "" {
		nc, ncErr := newsapi.New(cfg.News.APIKey)
		if ncErr != nil {
			logger.Warnf(ctx, "NewsAPI not available (optional): %v", ncErr)
		} else {
			newsClient = nc.WithBaseURL(cfg.News.BaseURL).
				WithLanguage(cfg.News.Language).
				WithPageSize(cfg.News.PageSize)
			logger.Info(ctx, "NewsAPI client initialized")
		}
	} else {
		logger.Warn(ctx, "NEWS_API_KEY missing, news enrichment disabled")
	}

	var movieClient genz.MovieSearcher
	if cfg.TMDB.APIKey != "" {
		tc, tcErr := tmdb.New(cfg.TMDB.APIKey)
		if tcErr != nil {
			logger.Warnf(ctx, "TMDB not available (optional): %v", tcErr)
		} else {
			movieClient = tc.WithBaseURL(cfg.TMDB.BaseURL)
			logger.Info(ctx, "TMDB client initialized")
		}
	} else {
		logger.Warn(ctx, "TMDB_API_KEY missing, movie enrichment disabled")
	}

	wikiClient := wiki.New().
		WithSummaryURL(cfg.Wiki.SummaryURL).
		WithUserAgent(cfg.Wiki.UserAgent)

	// 5. Personas
	bankingBot := banking.New(llm)
	cookingBot := cooking.New(llm)
	financeBot := finance.New(llm)
	mentorBot := gptmaster.New(llm)
	genzBot := genz.New(llm, newsClient, movieClient, wikiClient, logger)

	// 6. Router + delivery
	rt := router.New(llm, bankingBot, cookingBot, financeBot, mentorBot, genzBot, logger)
	routerHandler := routerHTTP.New(logger, rt)
	botHandler := botHTTP.New(logger, bankingBot, cookingBot, financeBot, mentorBot, genzBot)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		RouterHandler:   routerHandler,
		BotHandler:      botHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
