package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/alchemorsel/recipegen/internal/ports/outbound"
	apperrors "github.com/alchemorsel/recipegen/pkg/errors"
)

// MockMetricsRecorder is a mock implementation of the metrics port
type MockMetricsRecorder struct {
	mock.Mock
}

func (m *MockMetricsRecorder) RecordModelCall(endpoint, outcome string, duration time.Duration) {
	m.Called(endpoint, outcome, duration)
}

func (m *MockMetricsRecorder) RecordGeneration(endpoint string, fallback bool, reason string, recipes int) {
	m.Called(endpoint, fallback, reason, recipes)
}

func newTestClient(t *testing.T, baseURL, apiKey string, metrics outbound.MetricsRecorder) *Client {
	return NewClient(Config{APIKey: apiKey, BaseURL: baseURL, Model: "test-model"}, metrics, zaptest.NewLogger(t))
}

func completionRequest(timeout time.Duration) outbound.CompletionRequest {
	return outbound.CompletionRequest{System: "sys", User: "user", Timeout: timeout, Endpoint: "by-ingredients"}
}

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		if assert.Len(t, req.Messages, 2) {
			assert.Equal(t, "system", req.Messages[0].Role)
			assert.Equal(t, "sys", req.Messages[0].Content)
			assert.Equal(t, "user", req.Messages[1].Role)
		}

		_ = json.NewEncoder(w).Encode(ChatCompletionResponse{
			Model:   "test-model",
			Choices: []Choice{{Message: Message{Role: "assistant", Content: `[{"title":"A"}]`}}},
			Usage:   Usage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
		})
	}))
	defer server.Close()

	metrics := new(MockMetricsRecorder)
	metrics.On("RecordModelCall", "by-ingredients", "success", mock.Anything).Once()

	client := newTestClient(t, server.URL+"/", "secret", metrics)
	resp, err := client.Complete(context.Background(), completionRequest(time.Second))

	require.NoError(t, err)
	assert.Equal(t, `[{"title":"A"}]`, resp.Content)
	assert.Equal(t, 10, resp.PromptTokens)
	assert.Equal(t, 20, resp.CompletionTokens)
	metrics.AssertExpectations(t)
}

func TestComplete_FailuresAreModelUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream exploded", http.StatusInternalServerError)
			},
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "malformed envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"choices":[]}`))
			},
		},
		{
			name: "empty content",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  "}}]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := newTestClient(t, server.URL, "secret", nil)
			resp, err := client.Complete(context.Background(), completionRequest(time.Second))

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Equal(t, apperrors.CodeModelUnavailable, apperrors.GetCode(err))
		})
	}
}

func TestComplete_MissingCredential(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	metrics := new(MockMetricsRecorder)
	metrics.On("RecordModelCall", "by-ingredients", "unconfigured", mock.Anything).Once()

	client := newTestClient(t, server.URL, "", metrics)
	assert.False(t, client.HasCredential())

	_, err := client.Complete(context.Background(), completionRequest(time.Second))

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeModelUnavailable))
	assert.True(t, apperrors.Is(err, apperrors.CodeConfiguration))
	assert.False(t, called)
	metrics.AssertExpectations(t)
}

func TestComplete_DeadlineWins(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	metrics := new(MockMetricsRecorder)
	metrics.On("RecordModelCall", "by-ingredients", "timeout", mock.Anything).Once()

	client := newTestClient(t, server.URL, "secret", metrics)

	start := time.Now()
	_, err := client.Complete(context.Background(), completionRequest(100*time.Millisecond))
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeModelUnavailable, apperrors.GetCode(err))
	assert.Less(t, elapsed, 2*time.Second)
	metrics.AssertExpectations(t)
}

func TestComplete_CallerCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, "secret", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, completionRequest(5*time.Second))
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeModelUnavailable, apperrors.GetCode(err))
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{APIKey: "k"}, nil, zaptest.NewLogger(t))

	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultModel, client.model)
	assert.Equal(t, DefaultTemperature, client.temperature)
	assert.Equal(t, DefaultMaxTokens, client.maxTokens)
	assert.True(t, client.HasCredential())
}
