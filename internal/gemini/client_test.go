package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLogger implements Logger for testing
type TestLogger struct {
	t *testing.T
}

func (l *TestLogger) Debug(msg string, fields map[string]interface{}) {
	l.t.Logf("DEBUG: %s %v", msg, fields)
}

func (l *TestLogger) Info(msg string, fields map[string]interface{}) {
	l.t.Logf("INFO: %s %v", msg, fields)
}

func (l *TestLogger) Warn(msg string, fields map[string]interface{}) {
	l.t.Logf("WARN: %s %v", msg, fields)
}

func (l *TestLogger) Error(msg string, fields map[string]interface{}) {
	l.t.Logf("ERROR: %s %v", msg, fields)
}

func (l *TestLogger) With(fields map[string]interface{}) Logger {
	return l
}

func candidateResponse(texts ...string) string {
	parts := make([]map[string]string, len(texts))
	for i, text := range texts {
		parts[i] = map[string]string{"text": text}
	}
	body, _ := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{"parts": parts}},
		},
	})
	return string(body)
}

func TestNewClient(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		_, err := NewClient(Config{}, &TestLogger{t: t})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key is required")
	})

	t.Run("applies defaults", func(t *testing.T) {
		client, err := NewClient(Config{APIKey: "test-key"}, &TestLogger{t: t})
		require.NoError(t, err)
		assert.Equal(t, DefaultModel, client.Model())
		assert.Equal(t, DefaultBaseURL, client.config.BaseURL)
		assert.Equal(t, DefaultTimeout, client.config.Timeout)
	})
}

func TestClient_Complete(t *testing.T) {
	tests := []struct {
		name            string
		apiStatus       int
		apiResponse     string
		expectError     bool
		errContains     string
		expectedText    string
		validateRequest func(t *testing.T, r *http.Request, body map[string]interface{})
	}{
		{
			name:         "successful completion",
			apiStatus:    http.StatusOK,
			apiResponse:  candidateResponse(`{"value": 5}`),
			expectedText: `{"value": 5}`,
			validateRequest: func(t *testing.T, r *http.Request, body map[string]interface{}) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
				assert.Equal(t, "test-key", r.URL.Query().Get("key"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				contents := body["contents"].([]interface{})
				require.Len(t, contents, 1)
				parts := contents[0].(map[string]interface{})["parts"].([]interface{})
				require.Len(t, parts, 1)
				assert.Equal(t, "convert 5 feet to meters", parts[0].(map[string]interface{})["text"])

				gc := body["generationConfig"].(map[string]interface{})
				assert.InDelta(t, 0.2, gc["temperature"], 1e-9)
				assert.InDelta(t, 0.8, gc["topP"], 1e-9)
				assert.EqualValues(t, 40, gc["topK"])
			},
		},
		{
			name:         "multi part candidate is concatenated",
			apiStatus:    http.StatusOK,
			apiResponse:  candidateResponse("```json\n", `{"value": 5}`, "\n```"),
			expectedText: "```json\n{\"value\": 5}\n```",
		},
		{
			name:        "api error payload",
			apiStatus:   http.StatusOK,
			apiResponse: `{"error": {"code": 429, "message": "quota exceeded", "status": "RESOURCE_EXHAUSTED"}}`,
			expectError: true,
			errContains: "quota exceeded",
		},
		{
			name:        "http error status",
			apiStatus:   http.StatusInternalServerError,
			apiResponse: "backend exploded",
			expectError: true,
			errContains: "status 500",
		},
		{
			name:        "empty candidates",
			apiStatus:   http.StatusOK,
			apiResponse: `{"candidates": []}`,
			expectError: true,
			errContains: "empty response",
		},
		{
			name:        "malformed response body",
			apiStatus:   http.StatusOK,
			apiResponse: "not json at all",
			expectError: true,
			errContains: "parse response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.validateRequest != nil {
					var body map[string]interface{}
					require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
					tt.validateRequest(t, r, body)
				}
				w.WriteHeader(tt.apiStatus)
				_, _ = w.Write([]byte(tt.apiResponse))
			}))
			defer server.Close()

			client, err := NewClient(Config{
				APIKey:  "test-key",
				BaseURL: server.URL,
				Timeout: 5 * time.Second,
			}, &TestLogger{t: t})
			require.NoError(t, err)

			got, err := client.Complete(context.Background(), "convert 5 feet to meters")

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrService), "expected service failure, got %v", err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedText, got)
		})
	}
}

func TestClient_Complete_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, err := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: time.Second,
	}, &TestLogger{t: t})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "convert 5 feet to meters")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrService))
}

func TestClient_Complete_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(candidateResponse("late")))
	}))
	defer server.Close()

	client, err := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, &TestLogger{t: t})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = client.Complete(ctx, "convert 5 feet to meters")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrService))
	assert.Contains(t, err.Error(), "cancelled")
}
