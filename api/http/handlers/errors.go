package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeflow/api/http/presenter"
	"github.com/artem13815/resumeflow/pkg/document"
	"github.com/artem13815/resumeflow/pkg/extraction"
	"github.com/artem13815/resumeflow/pkg/llm"
	"github.com/artem13815/resumeflow/pkg/logging"
	"github.com/artem13815/resumeflow/pkg/oauth/linkedin"
	"github.com/artem13815/resumeflow/pkg/resume"
	"github.com/artem13815/resumeflow/pkg/scraper"
)

// ErrorMapper turns domain errors into JSON error responses.
// Upstream payloads (raw model text, provider bodies) are echoed only when debug is on.
type ErrorMapper struct {
	debug bool
	log   *logging.Logger
}

func NewErrorMapper(debug bool, log *logging.Logger) *ErrorMapper {
	return &ErrorMapper{debug: debug, log: logging.OrNop(log).Named("http")}
}

func (m *ErrorMapper) Respond(c *fiber.Ctx, err error) error {
	status, msg := classify(err)
	if status >= http.StatusInternalServerError {
		m.log.Error("request.failed", "path", c.Path(), "status", status, "err", err)
	} else {
		m.log.Warn("request.rejected", "path", c.Path(), "status", status, "err", err)
	}
	detail := ""
	if m.debug {
		detail = detailOf(err)
	}
	return presenter.ErrorDetail(c, status, msg, detail)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, document.ErrUnreadableDocument):
		return http.StatusBadRequest, "could not read any text from the uploaded document"
	case errors.Is(err, scraper.ErrInvalidProfileURL):
		return http.StatusBadRequest, "profileUrl must point to a linkedin.com/in/<profile> page"
	case errors.Is(err, linkedin.ErrInvalidState):
		return http.StatusBadRequest, "invalid or expired oauth state"
	case errors.Is(err, resume.ErrNotFound):
		return http.StatusNotFound, "resume not found"
	case errors.Is(err, extraction.ErrMalformedOutput):
		return http.StatusInternalServerError, "language model returned malformed output"
	case errors.Is(err, extraction.ErrCompletionFailed):
		return http.StatusInternalServerError, "language model request failed"
	case errors.Is(err, scraper.ErrPageLoadTimeout):
		return http.StatusInternalServerError, "profile page did not load in time"
	case errors.Is(err, linkedin.ErrNotConfigured):
		return http.StatusInternalServerError, "linkedin oauth is not configured"
	case errors.Is(err, linkedin.ErrExchangeFailed):
		return http.StatusInternalServerError, "linkedin authorization code exchange failed"
	case errors.Is(err, linkedin.ErrProfileFetchFailed):
		return http.StatusInternalServerError, "failed to fetch linkedin profile"
	case errors.Is(err, resume.ErrPersistence):
		return http.StatusInternalServerError, "failed to store resume"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func detailOf(err error) string {
	var malformed *extraction.MalformedOutputError
	if errors.As(err, &malformed) {
		return malformed.Raw
	}
	var provider *llm.ProviderError
	if errors.As(err, &provider) && provider.Body != "" {
		return provider.Body
	}
	var upstream *linkedin.UpstreamError
	if errors.As(err, &upstream) && upstream.Body != "" {
		return upstream.Body
	}
	return err.Error()
}
