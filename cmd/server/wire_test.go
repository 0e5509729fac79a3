package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/artem13815/resumeflow/pkg/config"
	"github.com/artem13815/resumeflow/pkg/llm/anthropic"
	"github.com/artem13815/resumeflow/pkg/llm/openai"
	"github.com/artem13815/resumeflow/pkg/logging"
	"github.com/artem13815/resumeflow/pkg/repository/memory"
	"github.com/artem13815/resumeflow/pkg/scraper"
	memstore "github.com/artem13815/resumeflow/pkg/storage/memory"
)

func TestBuildChatModel(t *testing.T) {
	log := logging.Nop()

	m, err := buildChatModel(config.Config{LLMProvider: "openai", LLMModel: "gpt-4.1-mini"}, log)
	require.NoError(t, err)
	require.IsType(t, &openai.Client{}, m)
	assert.Equal(t, "gpt-4.1-mini", m.(*openai.Client).Model)

	m, err = buildChatModel(config.Config{LLMProvider: "anthropic"}, log)
	require.NoError(t, err)
	assert.IsType(t, &anthropic.Client{}, m)

	_, err = buildChatModel(config.Config{LLMProvider: "cohere"}, log)
	assert.Error(t, err)
}

func TestOpenStoresFallBackToMemory(t *testing.T) {
	ctx := context.Background()
	log := logging.Nop()

	repo, checks, closeFn, err := openStore(ctx, config.Config{}, log)
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &memory.ResumeRepository{}, repo)
	assert.Empty(t, checks)

	nonces, checks, closeNonces, err := openNonceStore(ctx, config.Config{}, log)
	require.NoError(t, err)
	defer closeNonces()
	assert.IsType(t, &memstore.NonceStore{}, nonces)
	assert.Empty(t, checks)
}

func TestBuildScraperDefaults(t *testing.T) {
	cfg := config.Config{Scraper: config.ScraperConfig{Mode: "dom", ReadyTimeout: time.Second, Headless: true}}
	sc, err := buildScraper(cfg, nil, logging.Nop())
	require.NoError(t, err)
	assert.NotNil(t, sc)

	cfg.Scraper.Mode = "llm"
	_, err = buildScraper(cfg, nil, logging.Nop())
	assert.Error(t, err)

	cfg.Scraper.Mode = scraper.ModeDOM
	cfg.Scraper.SelectorsFile = "/does/not/exist.yaml"
	_, err = buildScraper(cfg, nil, logging.Nop())
	assert.Error(t, err)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["extract"])
}

func TestWarnOAuthSetup(t *testing.T) {
	configured := config.LinkedInConfig{ClientID: "id", ClientSecret: "s", RedirectURI: "http://localhost/cb"}
	withSecret := configured
	withSecret.StateSecret = "rotated-secret"
	withDefault := configured
	withDefault.StateSecret = config.DefaultStateSecret

	tests := []struct {
		name string
		cfg  config.LinkedInConfig
		want []string
	}{
		{name: "oauth off", cfg: config.LinkedInConfig{StateSecret: config.DefaultStateSecret}, want: []string{"linkedin.oauth_disabled"}},
		{name: "default secret", cfg: withDefault, want: []string{"linkedin.default_state_secret"}},
		{name: "custom secret", cfg: withSecret, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			warnOAuthSetup(tt.cfg, logging.FromZap(zap.New(core)))

			var got []string
			for _, e := range logs.All() {
				got = append(got, e.Message)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
