// Package gemini is the REST client for the external AI completion
// provider. It carries the prompt and sampling configuration out and hands
// the raw text candidate back; interpreting that text is the caller's job.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"unitconv/internal/common/httpclient"
)

// ErrService marks every provider failure: transport errors, non-200
// statuses, API error payloads, and empty candidate lists. Wrapped messages
// carry the provider's diagnostic.
var ErrService = errors.New("SERVICE_FAILURE")

// Deterministic-leaning sampling for structured-output prompts.
const (
	samplingTemperature = 0.2
	samplingTopP        = 0.8
	samplingTopK        = 40
)

// Logger defines the logging interface this client requires.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
	With(fields map[string]interface{}) Logger
}

// Client calls the provider's generateContent endpoint.
type Client struct {
	config     Config
	httpClient *httpclient.Client
	logger     Logger
}

// NewClient validates the credential and builds a client with a
// timeout-scoped HTTP transport.
func NewClient(cfg Config, log Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	cfg.applyDefaults()

	return &Client{
		config:     cfg,
		httpClient: httpclient.NewClient(cfg.Timeout),
		logger:     log.With(map[string]interface{}{"component": "gemini"}),
	}, nil
}

// Model returns the configured completion model name.
func (c *Client) Model() string {
	return c.config.Model
}

// Complete sends one prompt and returns the raw text of the first
// candidate. There is no automatic retry; a fresh request is a fresh
// attempt.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			Temperature: samplingTemperature,
			TopP:        samplingTopP,
			TopK:        samplingTopK,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrService, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.config.BaseURL, c.config.Model, c.config.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrService, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Calling completion API", map[string]interface{}{
		"model":        c.config.Model,
		"promptLength": len(prompt),
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: request cancelled: %v", ErrService, ctx.Err())
		}
		return "", fmt.Errorf("%w: %v", ErrService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrService, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: API returned status %d: %s",
			ErrService, resp.StatusCode, truncate(string(body), 200))
	}

	var gr generateContentResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("%w: parse response: %v", ErrService, err)
	}

	if gr.Error != nil {
		return "", fmt.Errorf("%w: API error %d: %s", ErrService, gr.Error.Code, gr.Error.Message)
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response from model", ErrService)
	}

	// The model may split its answer across parts; stitch them back.
	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}

	c.logger.Debug("Completion API responded", map[string]interface{}{
		"responseLength": sb.Len(),
	})

	return sb.String(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
