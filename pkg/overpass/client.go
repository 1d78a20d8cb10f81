package overpass

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrUnexpectedStatus = errors.New("overpass: unexpected status")
	ErrInvalidResponse  = errors.New("overpass: response is not valid JSON")
)

// Client talks to an Overpass API interpreter endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
}

func NewClient(endpoint, userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		userAgent:  userAgent,
	}
}

// Interpret posts query to the interpreter and decodes the element list.
//
// Transport failures, non-2xx statuses and bodies that are not JSON are
// errors. A JSON body without a usable "elements" array yields an empty
// result, and individual elements that fail to decode are skipped.
func (c *Client) Interpret(ctx context.Context, query string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("overpass: build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("overpass: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	return decodeElements(body)
}

func decodeElements(body []byte) (*Result, error) {
	if !json.Valid(body) {
		return nil, ErrInvalidResponse
	}

	var envelope struct {
		Elements json.RawMessage `json:"elements"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		// valid JSON that is not an object
		return &Result{}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(envelope.Elements, &raw); err != nil {
		return &Result{}, nil
	}

	result := &Result{
		Elements: make([]Element, 0, len(raw)),
		Total:    len(raw),
	}
	for _, r := range raw {
		var el Element
		if err := json.Unmarshal(r, &el); err != nil {
			continue
		}
		result.Elements = append(result.Elements, el)
	}
	return result, nil
}
