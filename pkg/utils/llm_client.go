package utils

import "context"

// ChatCompletionRequest is a single-turn generation request.
type ChatCompletionRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// ChatClientInterface generates text for a prompt. Implementations return
// ErrEmptyCompletion when the provider answered without any content.
type ChatClientInterface interface {
	Complete(ctx context.Context, req ChatCompletionRequest) (string, error)
	Model() string
}
