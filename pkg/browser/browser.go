package browser

import (
	"context"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"

	"github.com/artem13815/resumeflow/pkg/logging"
	"github.com/artem13815/resumeflow/pkg/scraper"
)

const defaultNavTimeout = 30 * time.Second

type Options struct {
	ExecPath   string
	Headless   bool
	NavTimeout time.Duration
	UserAgent  string
}

// Browser starts a separate headless Chrome process for every session,
// so cookies and storage never leak between scrapes.
type Browser struct {
	opts Options
	log  *logging.Logger
}

func New(opts Options, log *logging.Logger) *Browser {
	if opts.NavTimeout <= 0 {
		opts.NavTimeout = defaultNavTimeout
	}
	return &Browser{opts: opts, log: logging.OrNop(log).Named("browser")}
}

func (b *Browser) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.Flag("headless", b.opts.Headless),
		chromedp.WindowSize(1366, 900),
	)
	if b.opts.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(b.opts.ExecPath))
	}
	if b.opts.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(b.opts.UserAgent))
	}
	return opts
}

// launch starts Chrome for the tab context. The first Run on a chromedp context
// allocates the browser and ties its lifetime to that context.
var launch = func(tabCtx context.Context) error {
	return chromedp.Run(tabCtx)
}

// NewSession launches the browser. The session outlives ctx; only Close releases it.
// Startup is bounded by NavTimeout and by ctx.
func (b *Browser) NewSession(ctx context.Context) (scraper.Session, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), b.allocatorOptions()...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	s := &session{
		ctx:        tabCtx,
		navTimeout: b.opts.NavTimeout,
		log:        b.log,
		release: func() {
			if err := chromedp.Cancel(tabCtx); err != nil {
				b.log.Debug("browser.cancel", "err", err)
			}
			cancelTab()
			cancelAlloc()
		},
	}

	timer := time.AfterFunc(b.opts.NavTimeout, cancelAlloc)
	stop := context.AfterFunc(ctx, cancelAlloc)
	err := launch(tabCtx)
	timedOut := !timer.Stop()
	interrupted := !stop()

	switch {
	case interrupted:
		err = ctx.Err()
	case timedOut:
		err = scraper.ErrPageLoadTimeout
	}
	if err != nil {
		_ = s.Close()
		return nil, errors.Wrap(err, "start browser")
	}
	b.log.Debug("browser.session_started")
	return s, nil
}

type session struct {
	ctx        context.Context
	navTimeout time.Duration
	release    func()
	closeOnce  sync.Once
	log        *logging.Logger
}

// run executes actions on the tab, bounded by timeout and by the caller's ctx.
func (s *session) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	opCtx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	err := chromedp.Run(opCtx, actions...)
	if err != nil && ctx.Err() == nil && errors.Is(opCtx.Err(), context.DeadlineExceeded) {
		return scraper.ErrPageLoadTimeout
	}
	return err
}

func (s *session) SetCookies(ctx context.Context, cookies []scraper.Cookie) error {
	return s.run(ctx, s.navTimeout, network.SetCookies(cookieParams(cookies)))
}

func (s *session) Navigate(ctx context.Context, url string) error {
	return s.run(ctx, s.navTimeout, chromedp.Navigate(url))
}

func (s *session) WaitReady(ctx context.Context, selector string, timeout time.Duration) error {
	return s.run(ctx, timeout, chromedp.WaitVisible(selector, chromedp.ByQuery))
}

func (s *session) HTML(ctx context.Context) (string, error) {
	var html string
	if err := s.run(ctx, s.navTimeout, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}

func (s *session) Close() error {
	s.closeOnce.Do(s.release)
	return nil
}

func cookieParams(cookies []scraper.Cookie) []*network.CookieParam {
	params := make([]*network.CookieParam, 0, len(cookies))
	for _, c := range cookies {
		p := &network.CookieParam{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Secure:   c.Secure,
			HTTPOnly: c.HTTPOnly,
		}
		if c.Expires > 0 {
			exp := cdp.TimeSinceEpoch(time.Unix(int64(c.Expires), 0))
			p.Expires = &exp
		}
		params = append(params, p)
	}
	return params
}
