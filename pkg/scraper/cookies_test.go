package scraper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCookiesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "li_at", "value": "from-file", "domain": ".www.linkedin.com", "secure": true, "expirationDate": 1900000000},
		{"name": "JSESSIONID", "value": "ajax:1"},
		{"value": "nameless"}
	]`), 0o600))

	cookies, err := LoadCookies(path, "")
	require.NoError(t, err)
	require.Len(t, cookies, 2)

	assert.Equal(t, "li_at", cookies[0].Name)
	assert.Equal(t, ".www.linkedin.com", cookies[0].Domain)
	assert.Equal(t, float64(1900000000), cookies[0].Expires)
	assert.Equal(t, ".linkedin.com", cookies[1].Domain)
	assert.Equal(t, "/", cookies[1].Path)
}

func TestLoadCookiesLiAtOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "li_at", "value": "old"}]`), 0o600))

	cookies, err := LoadCookies(path, "new")
	require.NoError(t, err)
	require.Len(t, cookies, 1)
	assert.Equal(t, "new", cookies[0].Value)
	assert.True(t, cookies[0].HTTPOnly)
}

func TestLoadCookiesNothingConfigured(t *testing.T) {
	cookies, err := LoadCookies("", "")
	require.NoError(t, err)
	assert.Empty(t, cookies)
}

func TestLoadCookiesBadFile(t *testing.T) {
	_, err := LoadCookies(filepath.Join(t.TempDir(), "missing.json"), "")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))
	_, err = LoadCookies(path, "")
	assert.Error(t, err)
}
