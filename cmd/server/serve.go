package main

import (
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	apihttp "github.com/artem13815/resumeflow/api/http"
	"github.com/artem13815/resumeflow/api/http/handlers"
	"github.com/artem13815/resumeflow/pkg/config"
	"github.com/artem13815/resumeflow/pkg/document"
	"github.com/artem13815/resumeflow/pkg/extraction"
	"github.com/artem13815/resumeflow/pkg/health"
	"github.com/artem13815/resumeflow/pkg/logging"
	"github.com/artem13815/resumeflow/pkg/oauth/linkedin"
	"github.com/artem13815/resumeflow/pkg/resume"
	"github.com/artem13815/resumeflow/pkg/security/jwt"
	"github.com/artem13815/resumeflow/pkg/shutdown"
)

const (
	stateIssuer     = "resumeflow"
	stateTTL        = 10 * time.Minute
	shutdownTimeout = 15 * time.Second
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	repo, checks, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	nonces, nonceChecks, closeNonces, err := openNonceStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeNonces()
	checks = append(checks, nonceChecks...)

	model, err := buildChatModel(cfg, log)
	if err != nil {
		return err
	}
	fields := extraction.NewExtractor(model, cfg.MaxPromptChars, log)
	ingest := resume.NewIngestService(document.NewTextExtractor(), fields, repo, log)

	warnOAuthSetup(cfg.LinkedIn, log)
	oauth := linkedin.New(linkedin.Config{
		ClientID:     cfg.LinkedIn.ClientID,
		ClientSecret: cfg.LinkedIn.ClientSecret,
		RedirectURI:  cfg.LinkedIn.RedirectURI,
	}, jwt.NewStateSigner(cfg.LinkedIn.StateSecret, stateIssuer, stateTTL), nonces, log)

	sc, err := buildScraper(cfg, fields, log)
	if err != nil {
		return err
	}

	errs := handlers.NewErrorMapper(cfg.DebugErrors, log)
	app := apihttp.NewApp(cfg.UploadMaxBytes, log)
	apihttp.Register(app,
		handlers.NewHealthHandler(health.NewService(checks...)),
		handlers.NewResumeHandler(ingest, errs, cfg.UploadMaxBytes),
		handlers.NewLinkedInHandler(oauth, sc, errs),
	)

	go shutdown.Graceful([]os.Signal{syscall.SIGINT, syscall.SIGTERM}, app, shutdownTimeout, log)

	log.Info("http.listening", "port", cfg.Port, "llm_provider", cfg.LLMProvider, "scraper_mode", cfg.Scraper.Mode)
	return app.Listen(":" + cfg.Port)
}

func warnOAuthSetup(cfg config.LinkedInConfig, log *logging.Logger) {
	if !cfg.OAuthConfigured() {
		log.Warn("linkedin.oauth_disabled", "hint", "set LINKEDIN_CLIENT_ID and LINKEDIN_CLIENT_SECRET")
		return
	}
	if cfg.DefaultStateSecretInUse() {
		log.Warn("linkedin.default_state_secret", "hint", "set OAUTH_STATE_SECRET; the default value lets anyone forge OAuth state")
	}
}
