package main

import (
	"context"
	"fmt"

	"github.com/artem13815/resumeflow/pkg/browser"
	"github.com/artem13815/resumeflow/pkg/config"
	"github.com/artem13815/resumeflow/pkg/health"
	"github.com/artem13815/resumeflow/pkg/health/checkers"
	"github.com/artem13815/resumeflow/pkg/llm"
	"github.com/artem13815/resumeflow/pkg/llm/anthropic"
	"github.com/artem13815/resumeflow/pkg/llm/openai"
	"github.com/artem13815/resumeflow/pkg/logging"
	"github.com/artem13815/resumeflow/pkg/oauth/linkedin"
	"github.com/artem13815/resumeflow/pkg/repository/memory"
	pgrepo "github.com/artem13815/resumeflow/pkg/repository/postgres"
	"github.com/artem13815/resumeflow/pkg/resume"
	"github.com/artem13815/resumeflow/pkg/scraper"
	memstore "github.com/artem13815/resumeflow/pkg/storage/memory"
	"github.com/artem13815/resumeflow/pkg/storage/postgres"
	redisstore "github.com/artem13815/resumeflow/pkg/storage/redis"
)

func llmOptions(cfg config.Config) llm.Options {
	return llm.Options{
		Model:       cfg.LLMModel,
		MaxTokens:   cfg.LLMMaxTokens,
		Temperature: cfg.LLMTemperature,
		MaxRetries:  cfg.LLMMaxRetries,
		Timeout:     cfg.LLMTimeout,
		JSONMode:    true,
	}
}

// buildChatModel picks the completion provider. A missing key is not fatal: uploads fail with 500 until it is set.
func buildChatModel(cfg config.Config, log *logging.Logger) (llm.ChatModel, error) {
	switch cfg.LLMProvider {
	case "", "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Warn("llm.no_api_key", "provider", "openai", "env", "OPENAI_API_KEY")
		}
		return openai.New(openai.Config{
			APIKey:   cfg.OpenAIAPIKey,
			BaseURL:  cfg.OpenAIBaseURL,
			AppTitle: cfg.OpenAIAppTitle,
			Referer:  cfg.OpenAIReferer,
			Options:  llmOptions(cfg),
		}), nil
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			log.Warn("llm.no_api_key", "provider", "anthropic", "env", "ANTHROPIC_API_KEY")
		}
		return anthropic.New(anthropic.Config{
			APIKey:  cfg.AnthropicAPIKey,
			Options: llmOptions(cfg),
		}), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (want openai or anthropic)", cfg.LLMProvider)
	}
}

// openStore returns the Postgres store when DATABASE_URL is set, the in-memory one otherwise.
func openStore(ctx context.Context, cfg config.Config, log *logging.Logger) (resume.Repository, []health.Checker, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Warn("store.memory", "hint", "DATABASE_URL is empty; records are lost on restart")
		return memory.NewResumeRepository(), nil, func() {}, nil
	}
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, nil, err
	}
	log.Info("store.postgres", "max_conns", pool.Config().MaxConns)
	return pgrepo.NewResumeRepository(pool), []health.Checker{checkers.NewPostgresChecker(pool)}, pool.Close, nil
}

// openNonceStore returns the Redis nonce store when REDIS_URL is set. The memory store only works for a single instance.
func openNonceStore(ctx context.Context, cfg config.Config, log *logging.Logger) (linkedin.NonceStore, []health.Checker, func(), error) {
	if cfg.RedisURL == "" {
		return memstore.NewNonceStore(), nil, func() {}, nil
	}
	client, err := redisstore.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info("nonces.redis")
	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Warn("redis.close", "err", err)
		}
	}
	return redisstore.NewNonceStore(client), []health.Checker{checkers.NewRedisChecker(client)}, closeFn, nil
}

func buildScraper(cfg config.Config, fields scraper.ProfileExtractor, log *logging.Logger) (*scraper.Scraper, error) {
	selectors, err := scraper.LoadSelectors(cfg.Scraper.SelectorsFile)
	if err != nil {
		return nil, err
	}
	cookies, err := scraper.LoadCookies(cfg.LinkedIn.CookiesFile, cfg.LinkedIn.LiAt)
	if err != nil {
		return nil, err
	}
	b := browser.New(browser.Options{
		ExecPath:   cfg.Scraper.ChromePath,
		Headless:   cfg.Scraper.Headless,
		NavTimeout: cfg.Scraper.NavTimeout,
	}, log)
	return scraper.New(b, fields, scraper.Options{
		Mode:         cfg.Scraper.Mode,
		ReadyTimeout: cfg.Scraper.ReadyTimeout,
		Selectors:    selectors,
		Cookies:      cookies,
	}, log)
}
