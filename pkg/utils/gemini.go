package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiChatClient implements ChatClientInterface using Google's Gemini models
type GeminiChatClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiChatClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiChatClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiChatClient{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

func (c *GeminiChatClient) Model() string { return c.model }

func (c *GeminiChatClient) Complete(ctx context.Context, req ChatCompletionRequest) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(req.Temperature)
	m.SetMaxOutputTokens(int32(req.MaxTokens))

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := m.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		status := 0
		var gErr *googleapi.Error
		if errors.As(err, &gErr) {
			status = gErr.Code
		}
		return "", &UpstreamError{Provider: "gemini", StatusCode: status, Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyCompletion
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyCompletion
	}
	return b.String(), nil
}

// Close closes the Gemini client
func (c *GeminiChatClient) Close() error {
	return c.client.Close()
}
