package services

import (
	"context"

	"monumentscout/pkg/overpass"
	"monumentscout/pkg/utils"
)

type fakeOverpass struct {
	result  *overpass.Result
	err     error
	calls   int
	queries []string
}

func (f *fakeOverpass) Interpret(_ context.Context, query string) (*overpass.Result, error) {
	f.calls++
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return &overpass.Result{}, nil
	}
	return f.result, nil
}

type fakeChat struct {
	text     string
	err      error
	calls    int
	requests []utils.ChatCompletionRequest
}

func (f *fakeChat) Complete(_ context.Context, req utils.ChatCompletionRequest) (string, error) {
	f.calls++
	f.requests = append(f.requests, req)
	return f.text, f.err
}

func (f *fakeChat) Model() string { return "fake-model" }

func ptr(v float64) *float64 { return &v }
