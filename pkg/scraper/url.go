package scraper

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidProfileURL = errors.New("invalid linkedin profile url")

// NormalizeProfileURL accepts linkedin.com/in/<slug> URLs in the forms people paste them
// and returns https://<host>/in/<slug>/ with query and fragment dropped.
func NormalizeProfileURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.Wrap(ErrInvalidProfileURL, "empty url")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.Wrap(ErrInvalidProfileURL, err.Error())
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", errors.Wrapf(ErrInvalidProfileURL, "scheme %q", u.Scheme)
	}
	host := strings.ToLower(u.Hostname())
	if host != "linkedin.com" && !strings.HasSuffix(host, ".linkedin.com") {
		return "", errors.Wrapf(ErrInvalidProfileURL, "host %q", host)
	}
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segs) < 2 || segs[0] != "in" || segs[1] == "" {
		return "", errors.Wrapf(ErrInvalidProfileURL, "path %q", u.Path)
	}
	return "https://" + host + "/in/" + url.PathEscape(segs[1]) + "/", nil
}
