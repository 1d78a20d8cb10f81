package utils

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCoordinates     = errors.New("missing latitude or longitude")
	ErrInvalidCoordinates     = errors.New("invalid latitude or longitude")
	ErrMissingMonumentName    = errors.New("missing monument name")
	ErrInvalidRequestBody     = errors.New("invalid request body")
	ErrAIServiceNotConfigured = errors.New("ai service not configured")
	ErrLocationFetchFailed    = errors.New("failed to fetch location data")
	ErrExplanationFailed      = errors.New("failed to generate explanation")
	ErrEmptyCompletion        = errors.New("no completion returned")
)

// NotConfiguredError reports a missing credential. It matches
// ErrAIServiceNotConfigured with errors.Is.
type NotConfiguredError struct {
	Credential string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Credential)
}

func (e *NotConfiguredError) Is(target error) bool {
	return target == ErrAIServiceNotConfigured
}

// UpstreamError carries the HTTP status returned by a text-generation
// provider. StatusCode is 0 when the call never got a response.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s returned %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
