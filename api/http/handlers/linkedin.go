package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeflow/api/http/presenter"
	"github.com/artem13815/resumeflow/pkg/scraper"
)

// OAuthFlow is the LinkedIn authorization-code flow.
type OAuthFlow interface {
	AuthURL(ctx context.Context) (string, error)
	HandleCallback(ctx context.Context, code, state string) (json.RawMessage, error)
}

type ProfileScraper interface {
	Scrape(ctx context.Context, url string) (scraper.Profile, error)
}

type LinkedInHandler struct {
	oauth   OAuthFlow
	scraper ProfileScraper
	errs    *ErrorMapper
}

func NewLinkedInHandler(oauth OAuthFlow, sc ProfileScraper, errs *ErrorMapper) *LinkedInHandler {
	return &LinkedInHandler{oauth: oauth, scraper: sc, errs: errs}
}

// ScrapeRequest is the body of POST /linkedin-scrape.
type ScrapeRequest struct {
	ProfileURL string `json:"profileUrl"`
}

// Auth: redirect to the LinkedIn consent screen.
// @Summary LinkedIn OAuth
// @Tags    LinkedIn
// @Success 302
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /auth/linkedin [get]
func (h *LinkedInHandler) Auth(c *fiber.Ctx) error {
	url, err := h.oauth.AuthURL(c.UserContext())
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.Redirect(url, http.StatusFound)
}

// Callback обменивает code на токен и возвращает профиль LinkedIn как есть.
// @Summary LinkedIn OAuth callback
// @Tags    LinkedIn
// @Produce json
// @Param   code  query string true "Authorization code"
// @Param   state query string true "Signed state"
// @Success 200 {object} map[string]any "Профиль из LinkedIn userinfo"
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /auth/linkedin/callback [get]
func (h *LinkedInHandler) Callback(c *fiber.Ctx) error {
	if oauthErr := c.Query("error"); oauthErr != "" {
		return presenter.ErrorDetail(c, http.StatusBadRequest,
			"linkedin authorization failed: "+oauthErr, c.Query("error_description"))
	}
	code := strings.TrimSpace(c.Query("code"))
	if code == "" {
		return presenter.Error(c, http.StatusBadRequest, "authorization code is required")
	}
	profile, err := h.oauth.HandleCallback(c.UserContext(), code, c.Query("state"))
	if err != nil {
		return h.errs.Respond(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(http.StatusOK).Send(profile)
}

// Scrape рендерит публичный профиль в headless-браузере и извлекает поля.
// @Summary Скрейпинг профиля LinkedIn
// @Tags    LinkedIn
// @Accept  json
// @Produce json
// @Param   body body ScrapeRequest true "URL профиля"
// @Success 200 {object} scraper.Profile
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /linkedin-scrape [post]
func (h *LinkedInHandler) Scrape(c *fiber.Ctx) error {
	var req ScrapeRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	profile, err := h.scraper.Scrape(c.UserContext(), req.ProfileURL)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return presenter.JSON(c, http.StatusOK, profile)
}
