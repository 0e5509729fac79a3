package scraper

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Cookie is a browser cookie to install before navigation.
type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain"`
	Path     string  `json:"path"`
	Secure   bool    `json:"secure"`
	HTTPOnly bool    `json:"httpOnly"`
	Expires  float64 `json:"expires"`
	// ExpirationDate is the field name used by browser cookie-export extensions.
	ExpirationDate float64 `json:"expirationDate"`
}

// LoadCookies reads an exported cookie array from path (optional) and adds li_at when given.
// An explicit li_at replaces one found in the file.
func LoadCookies(path, liAt string) ([]Cookie, error) {
	var cookies []Cookie
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read cookies file")
		}
		if err := json.Unmarshal(data, &cookies); err != nil {
			return nil, errors.Wrap(err, "parse cookies file")
		}
	}
	out := cookies[:0]
	for _, c := range cookies {
		if c.Name == "" || (liAt != "" && c.Name == "li_at") {
			continue
		}
		if c.Expires == 0 {
			c.Expires = c.ExpirationDate
		}
		if c.Domain == "" {
			c.Domain = ".linkedin.com"
		}
		if c.Path == "" {
			c.Path = "/"
		}
		out = append(out, c)
	}
	if liAt != "" {
		out = append(out, Cookie{
			Name:     "li_at",
			Value:    liAt,
			Domain:   ".linkedin.com",
			Path:     "/",
			Secure:   true,
			HTTPOnly: true,
		})
	}
	return out, nil
}
