package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared/constant"

	"github.com/artem13815/resumeflow/pkg/llm"
)

const (
	providerName = "openai"
	defaultModel = "gpt-4o-mini"
)

// Config for the OpenAI (or any OpenAI-compatible, e.g. OpenRouter) chat completions client.
type Config struct {
	APIKey  string
	BaseURL string // empty means the SDK default
	// OpenRouter attribution headers, optional.
	AppTitle   string
	Referer    string
	Options    llm.Options
	HTTPClient *http.Client
}

// Client implements llm.ChatModel on top of openai-go.
type Client struct {
	Model  string
	apiKey string
	opts   llm.Options
	client openai.Client
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
	if cfg.Referer != "" {
		reqOpts = append(reqOpts, option.WithHeader("HTTP-Referer", cfg.Referer))
	}
	if cfg.AppTitle != "" {
		reqOpts = append(reqOpts, option.WithHeader("X-Title", cfg.AppTitle))
	}
	if cfg.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(cfg.HTTPClient))
	}
	return &Client{
		Model:  model,
		apiKey: cfg.APIKey,
		opts:   cfg.Options,
		client: openai.NewClient(reqOpts...),
	}
}

// Ask sends one system and one user message and returns the first choice's content.
func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.apiKey == "" {
		return "", &llm.ProviderError{Provider: providerName, Err: errors.New("api key is empty")}
	}
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(c.opts.Temperature),
	}
	if c.opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.opts.MaxTokens))
	}
	if c.opts.JSONMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{
				Type: constant.JSONObject("json_object"),
			},
		}
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		perr := &llm.ProviderError{Provider: providerName, Err: err}
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			perr.StatusCode = apiErr.StatusCode
			perr.Body = apiErr.RawJSON()
		}
		return "", perr
	}
	if len(completion.Choices) == 0 {
		return "", nil
	}
	return completion.Choices[0].Message.Content, nil
}
