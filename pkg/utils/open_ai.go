package utils

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIChatClient speaks the OpenAI chat-completions protocol. Pointed at
// OpenRouter through BaseURL it serves any model OpenRouter routes.
type OpenAIChatClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIChatClient builds a client for baseURL. headers are added to
// every request (OpenRouter reads HTTP-Referer and X-Title for attribution).
func NewOpenAIChatClient(apiKey, baseURL, model string, timeout time.Duration, headers map[string]string) *OpenAIChatClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{
		Timeout:   timeout,
		Transport: &headerTransport{base: http.DefaultTransport, headers: headers},
	}

	return &OpenAIChatClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAIChatClient) Model() string { return c.model }

func (c *OpenAIChatClient) Complete(ctx context.Context, req ChatCompletionRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", &UpstreamError{Provider: "openrouter", StatusCode: statusOf(err), Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

func statusOf(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(t.headers) == 0 {
		return t.base.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	for k, v := range t.headers {
		if v != "" {
			clone.Header.Set(k, v)
		}
	}
	return t.base.RoundTrip(clone)
}
