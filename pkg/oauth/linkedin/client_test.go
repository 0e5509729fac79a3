package linkedin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/artem13815/resumeflow/pkg/security/jwt"
	"github.com/artem13815/resumeflow/pkg/storage/memory"
)

type provider struct {
	srv          *httptest.Server
	tokenStatus  int
	userStatus   int
	gotCode      string
	gotAuthToken string
}

func newProvider(t *testing.T) *provider {
	p := &provider{tokenStatus: http.StatusOK, userStatus: http.StatusOK}
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		p.gotCode = r.Form.Get("code")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(p.tokenStatus)
		if p.tokenStatus != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"tok-123","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		p.gotAuthToken = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(p.userStatus)
		if p.userStatus != http.StatusOK {
			_, _ = w.Write([]byte(`{"message":"revoked"}`))
			return
		}
		_, _ = w.Write([]byte(`{"sub":"abc","name":"Jane Doe","email":"jane@example.com"}`))
	})
	p.srv = httptest.NewServer(mux)
	t.Cleanup(p.srv.Close)
	return p
}

func newClient(p *provider) *Client {
	return New(Config{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURI:  "http://localhost:8000/auth/linkedin/callback",
		Endpoint: oauth2.Endpoint{
			AuthURL:   p.srv.URL + "/auth",
			TokenURL:  p.srv.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
		UserInfoURL: p.srv.URL + "/userinfo",
		HTTPClient:  p.srv.Client(),
	}, jwt.NewStateSigner("state-secret", "resumeflow", 10*time.Minute), memory.NewNonceStore(), nil)
}

func stateFrom(t *testing.T, authURL string) string {
	u, err := url.Parse(authURL)
	require.NoError(t, err)
	return u.Query().Get("state")
}

func TestAuthURL(t *testing.T) {
	p := newProvider(t)
	c := newClient(p)

	raw, err := c.AuthURL(context.Background())
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "/auth", u.Path)
	assert.Equal(t, "client", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "openid profile email", q.Get("scope"))
	assert.Equal(t, "http://localhost:8000/auth/linkedin/callback", q.Get("redirect_uri"))
	assert.NotEmpty(t, q.Get("state"))
}

func TestHandleCallbackReturnsProviderJSON(t *testing.T) {
	p := newProvider(t)
	c := newClient(p)
	authURL, err := c.AuthURL(context.Background())
	require.NoError(t, err)

	body, err := c.HandleCallback(context.Background(), "code-1", stateFrom(t, authURL))
	require.NoError(t, err)

	assert.JSONEq(t, `{"sub":"abc","name":"Jane Doe","email":"jane@example.com"}`, string(body))
	assert.Equal(t, "code-1", p.gotCode)
	assert.Equal(t, "Bearer tok-123", p.gotAuthToken)
}

func TestHandleCallbackStateIsSingleUse(t *testing.T) {
	p := newProvider(t)
	c := newClient(p)
	authURL, err := c.AuthURL(context.Background())
	require.NoError(t, err)
	state := stateFrom(t, authURL)

	_, err = c.HandleCallback(context.Background(), "code-1", state)
	require.NoError(t, err)
	_, err = c.HandleCallback(context.Background(), "code-1", state)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestHandleCallbackRejectsForgedState(t *testing.T) {
	p := newProvider(t)
	c := newClient(p)

	_, err := c.HandleCallback(context.Background(), "code-1", "forged")
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Empty(t, p.gotCode, "no exchange for an invalid state")
}

func TestHandleCallbackExchangeFailure(t *testing.T) {
	p := newProvider(t)
	p.tokenStatus = http.StatusBadRequest
	c := newClient(p)
	authURL, err := c.AuthURL(context.Background())
	require.NoError(t, err)

	_, err = c.HandleCallback(context.Background(), "bad", stateFrom(t, authURL))
	require.ErrorIs(t, err, ErrExchangeFailed)

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusBadRequest, ue.StatusCode)
	assert.Contains(t, ue.Body, "invalid_grant")
}

func TestHandleCallbackProfileFailure(t *testing.T) {
	p := newProvider(t)
	p.userStatus = http.StatusUnauthorized
	c := newClient(p)
	authURL, err := c.AuthURL(context.Background())
	require.NoError(t, err)

	_, err = c.HandleCallback(context.Background(), "code-1", stateFrom(t, authURL))
	require.ErrorIs(t, err, ErrProfileFetchFailed)

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusUnauthorized, ue.StatusCode)
	assert.Contains(t, ue.Body, "revoked")
}

func TestNotConfigured(t *testing.T) {
	c := New(Config{}, jwt.NewStateSigner("s", "i", time.Minute), memory.NewNonceStore(), nil)

	_, err := c.AuthURL(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = c.HandleCallback(context.Background(), "c", "s")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
