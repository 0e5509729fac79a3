package scraper

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/artem13815/resumeflow/pkg/extraction"
	"github.com/artem13815/resumeflow/pkg/logging"
	"github.com/artem13815/resumeflow/pkg/resume"
)

const (
	ModeDOM = "dom"
	ModeLLM = "llm"

	defaultReadyTimeout = 15 * time.Second
)

// ErrPageLoadTimeout means the profile never reached the ready state.
var ErrPageLoadTimeout = errors.New("profile page did not load in time")

// Browser opens isolated sessions; every session owns its own browser state.
type Browser interface {
	NewSession(ctx context.Context) (Session, error)
}

// Session is one headless browser. Close must be called exactly once.
type Session interface {
	SetCookies(ctx context.Context, cookies []Cookie) error
	Navigate(ctx context.Context, url string) error
	// WaitReady returns ErrPageLoadTimeout when selector is not visible within timeout.
	WaitReady(ctx context.Context, selector string, timeout time.Duration) error
	HTML(ctx context.Context) (string, error)
	Close() error
}

// ProfileExtractor runs an instruction over page text (llm mode).
type ProfileExtractor interface {
	ExtractWith(ctx context.Context, p extraction.Prompt, text string) (extraction.Raw, error)
}

// Profile is a scraped public profile. It is returned to the caller and never persisted.
type Profile struct {
	URL             string              `json:"url"`
	Name            string              `json:"name"`
	Headline        string              `json:"headline"`
	Location        string              `json:"location"`
	About           string              `json:"about"`
	Experience      []resume.Experience `json:"experience"`
	Education       []resume.Education  `json:"education"`
	Skills          []string            `json:"skills"`
	SelectorVersion string              `json:"selectorVersion,omitempty"`
	Mode            string              `json:"mode"`
}

type Options struct {
	Mode         string
	ReadyTimeout time.Duration
	Selectors    Selectors
	Cookies      []Cookie
}

type Scraper struct {
	browser Browser
	fields  ProfileExtractor
	opts    Options
	log     *logging.Logger
}

// New validates the options. llm mode needs a ProfileExtractor.
func New(browser Browser, fields ProfileExtractor, opts Options, log *logging.Logger) (*Scraper, error) {
	opts.Mode = strings.ToLower(strings.TrimSpace(opts.Mode))
	if opts.Mode == "" {
		opts.Mode = ModeDOM
	}
	switch opts.Mode {
	case ModeDOM:
	case ModeLLM:
		if fields == nil {
			return nil, errors.New("llm scrape mode needs a field extractor")
		}
	default:
		return nil, errors.Errorf("unknown scrape mode %q", opts.Mode)
	}
	if opts.ReadyTimeout <= 0 {
		opts.ReadyTimeout = defaultReadyTimeout
	}
	if opts.Selectors.Version == "" {
		sel, err := ParseSelectors(defaultSelectors)
		if err != nil {
			return nil, err
		}
		opts.Selectors = sel
	}
	log = logging.OrNop(log).Named("scraper")
	if len(opts.Cookies) == 0 {
		log.Warn("scraper.no_cookies", "hint", "set LINKEDIN_LI_AT or LINKEDIN_COOKIES_FILE; most profiles need a session")
	}
	return &Scraper{browser: browser, fields: fields, opts: opts, log: log}, nil
}

// Scrape renders the profile at rawURL in a fresh session and extracts it.
// The URL is validated before any session is opened.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (Profile, error) {
	url, err := NormalizeProfileURL(rawURL)
	if err != nil {
		return Profile{}, err
	}
	log := s.log.With("url", url, "mode", s.opts.Mode)
	start := time.Now()

	html, err := s.render(ctx, url)
	if err != nil {
		log.Warn("scraper.render_failed", "err", err, "elapsed_ms", time.Since(start).Milliseconds())
		return Profile{}, err
	}
	log.Debug("scraper.rendered", "html_b", len(html))

	var p Profile
	if s.opts.Mode == ModeLLM {
		p, err = s.extractLLM(ctx, html)
	} else {
		p, err = s.opts.Selectors.extractDOM(html)
		p.SelectorVersion = s.opts.Selectors.Version
	}
	if err != nil {
		log.Warn("scraper.extract_failed", "err", err)
		return Profile{}, err
	}
	p.URL = url
	p.Mode = s.opts.Mode
	log.Info("scraper.done", "experience", len(p.Experience), "education", len(p.Education),
		"skills", len(p.Skills), "elapsed_ms", time.Since(start).Milliseconds())
	return p, nil
}

func (s *Scraper) render(ctx context.Context, url string) (html string, err error) {
	sess, err := s.browser.NewSession(ctx)
	if err != nil {
		return "", errors.Wrap(err, "open browser session")
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil {
			s.log.Warn("scraper.session_close_failed", "err", cerr)
		}
	}()

	if len(s.opts.Cookies) > 0 {
		if err := sess.SetCookies(ctx, s.opts.Cookies); err != nil {
			return "", errors.Wrap(err, "set cookies")
		}
	}
	if s.opts.Selectors.LandingURL != "" {
		if err := sess.Navigate(ctx, s.opts.Selectors.LandingURL); err != nil {
			return "", errors.Wrap(err, "open landing page")
		}
	}
	if err := sess.Navigate(ctx, url); err != nil {
		return "", errors.Wrap(err, "open profile")
	}
	if err := sess.WaitReady(ctx, s.opts.Selectors.Ready, s.opts.ReadyTimeout); err != nil {
		return "", err
	}
	html, err = sess.HTML(ctx)
	if err != nil {
		return "", errors.Wrap(err, "read rendered html")
	}
	return html, nil
}
