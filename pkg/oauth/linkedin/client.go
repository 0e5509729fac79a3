package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/linkedin"

	"github.com/artem13815/resumeflow/pkg/logging"
)

const (
	DefaultUserInfoURL = "https://api.linkedin.com/v2/userinfo"
	maxProfileBytes    = 1 << 20
)

var (
	ErrNotConfigured      = errors.New("linkedin oauth is not configured")
	ErrInvalidState       = errors.New("invalid oauth state")
	ErrExchangeFailed     = errors.New("authorization code exchange failed")
	ErrProfileFetchFailed = errors.New("profile fetch failed")
)

// UpstreamError is a failed call to LinkedIn. Err is one of the sentinels above.
type UpstreamError struct {
	Err        error
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v: http %d", e.Err, e.StatusCode)
	}
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// StateSigner issues and verifies the signed state parameter.
type StateSigner interface {
	Sign(nonce string) (string, error)
	Verify(token string) (string, error)
	TTL() time.Duration
}

// NonceStore makes every state usable once.
type NonceStore interface {
	Remember(ctx context.Context, nonce string, ttl time.Duration) error
	Consume(ctx context.Context, nonce string) (bool, error)
}

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	// Endpoint and UserInfoURL default to LinkedIn's.
	Endpoint    oauth2.Endpoint
	UserInfoURL string
	HTTPClient  *http.Client
}

// Client drives the authorization-code flow against LinkedIn.
type Client struct {
	oauth       *oauth2.Config
	userInfoURL string
	httpClient  *http.Client
	state       StateSigner
	nonces      NonceStore
	log         *logging.Logger
}

func New(cfg Config, state StateSigner, nonces NonceStore, log *logging.Logger) *Client {
	endpoint := cfg.Endpoint
	if endpoint.AuthURL == "" {
		endpoint = linkedin.Endpoint
	}
	userInfo := cfg.UserInfoURL
	if userInfo == "" {
		userInfo = DefaultUserInfoURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint:     endpoint,
			Scopes:       []string{"openid", "profile", "email"},
		},
		userInfoURL: userInfo,
		httpClient:  httpClient,
		state:       state,
		nonces:      nonces,
		log:         logging.OrNop(log).Named("linkedin_oauth"),
	}
}

func (c *Client) configured() bool {
	return c.oauth.ClientID != "" && c.oauth.ClientSecret != "" && c.oauth.RedirectURL != ""
}

// AuthURL builds the provider authorization URL with a fresh single-use state.
func (c *Client) AuthURL(ctx context.Context) (string, error) {
	if !c.configured() {
		return "", ErrNotConfigured
	}
	nonce := uuid.NewString()
	if err := c.nonces.Remember(ctx, nonce, c.state.TTL()); err != nil {
		return "", errors.Wrap(err, "remember oauth nonce")
	}
	state, err := c.state.Sign(nonce)
	if err != nil {
		return "", errors.Wrap(err, "sign oauth state")
	}
	return c.oauth.AuthCodeURL(state), nil
}

// HandleCallback verifies state, exchanges code and returns the provider's userinfo JSON unchanged.
func (c *Client) HandleCallback(ctx context.Context, code, state string) (json.RawMessage, error) {
	if !c.configured() {
		return nil, ErrNotConfigured
	}
	nonce, err := c.state.Verify(state)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidState, err.Error())
	}
	fresh, err := c.nonces.Consume(ctx, nonce)
	if err != nil {
		return nil, errors.Wrap(err, "consume oauth nonce")
	}
	if !fresh {
		return nil, errors.Wrap(ErrInvalidState, "state already used or expired")
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		c.log.Warn("oauth.exchange_failed", "err", err)
		ue := &UpstreamError{Err: ErrExchangeFailed}
		var re *oauth2.RetrieveError
		if errors.As(err, &re) {
			ue.Body = string(re.Body)
			if re.Response != nil {
				ue.StatusCode = re.Response.StatusCode
			}
		} else {
			ue.Body = err.Error()
		}
		return nil, ue
	}

	body, err := c.fetchProfile(ctx, token)
	if err != nil {
		c.log.Warn("oauth.profile_failed", "err", err)
		return nil, err
	}
	c.log.Info("oauth.profile_fetched", "bytes", len(body))
	return body, nil
}

func (c *Client) fetchProfile(ctx context.Context, token *oauth2.Token) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build userinfo request")
	}
	resp, err := c.oauth.Client(ctx, token).Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: ErrProfileFetchFailed, Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProfileBytes))
	if err != nil {
		return nil, &UpstreamError{Err: ErrProfileFetchFailed, StatusCode: resp.StatusCode, Body: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{Err: ErrProfileFetchFailed, StatusCode: resp.StatusCode, Body: string(body)}
	}
	if !json.Valid(body) {
		return nil, &UpstreamError{Err: ErrProfileFetchFailed, StatusCode: resp.StatusCode, Body: "userinfo response is not JSON"}
	}
	return json.RawMessage(body), nil
}
