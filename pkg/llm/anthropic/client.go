package anthropic

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/artem13815/resumeflow/pkg/llm"
)

const (
	providerName     = "anthropic"
	defaultModel     = "claude-sonnet-4-20250514"
	defaultMaxTokens = 1024
)

type Config struct {
	APIKey     string
	BaseURL    string
	Options    llm.Options
	HTTPClient *http.Client
}

// Client implements llm.ChatModel with the Anthropic Messages API.
type Client struct {
	Model  string
	apiKey string
	opts   llm.Options
	client anthropic.Client
}

func New(cfg Config) *Client {
	model := cfg.Options.Model
	if model == "" {
		model = defaultModel
	}
	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.Options.MaxRetries),
	}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")+"/"))
	}
	if cfg.Options.Timeout > 0 {
		reqOpts = append(reqOpts, option.WithRequestTimeout(cfg.Options.Timeout))
	}
	if cfg.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(cfg.HTTPClient))
	}
	return &Client{
		Model:  model,
		apiKey: cfg.APIKey,
		opts:   cfg.Options,
		client: anthropic.NewClient(reqOpts...),
	}
}

// Ask returns the concatenated text blocks of the reply.
func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.apiKey == "" {
		return "", &llm.ProviderError{Provider: providerName, Err: errors.New("api key is empty")}
	}
	maxTokens := c.opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.Model),
		MaxTokens:   int64(maxTokens),
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt))},
		Temperature: anthropic.Float(c.opts.Temperature),
	})
	if err != nil {
		perr := &llm.ProviderError{Provider: providerName, Err: err}
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			perr.StatusCode = apiErr.StatusCode
			perr.Body = apiErr.RawJSON()
		}
		return "", perr
	}
	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	// no text blocks yields an empty reply
	return sb.String(), nil
}
