// Package openai provides an OpenAI-compatible chat completion client
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/alchemorsel/recipegen/internal/ports/outbound"
	apperrors "github.com/alchemorsel/recipegen/pkg/errors"
)

const (
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultModel       = "gpt-4o-mini"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 3000
	DefaultTimeout     = 20 * time.Second

	// maxErrorBody bounds how much of an error response is logged
	maxErrorBody = 512
)

// Config holds client settings. APIKey is read once at startup; an empty
// key is reported on each call rather than at construction.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
}

// Client implements outbound.CompletionClient against /chat/completions
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	client      *http.Client
	metrics     outbound.MetricsRecorder
	logger      *zap.Logger
}

var _ outbound.CompletionClient = (*Client)(nil)

// NewClient creates a new client. metrics may be nil.
func NewClient(cfg Config, metrics outbound.MetricsRecorder, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}

	logger = logger.Named("openai")
	if cfg.APIKey == "" {
		logger.Warn("Model API key not configured; requests will be served from fallback recipes")
	} else {
		logger.Info("Model client initialized", zap.String("base_url", cfg.BaseURL), zap.String("model", cfg.Model))
	}

	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		// Deadlines come from each call's context, not the client
		client:  &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		metrics: metrics,
		logger:  logger,
	}
}

// HasCredential reports whether an API key is configured
func (c *Client) HasCredential() bool {
	return c.apiKey != ""
}

// OpenAI API structures
type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionResponse struct {
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type callResult struct {
	resp *outbound.CompletionResponse
	err  error
}

// Complete performs one chat completion raced against req.Timeout.
// Whichever finishes first wins; a call that loses the race is cancelled
// and its result dropped. Every failure is a MODEL_UNAVAILABLE error.
func (c *Client) Complete(ctx context.Context, req outbound.CompletionRequest) (*outbound.CompletionResponse, error) {
	start := time.Now()

	if c.apiKey == "" {
		err := apperrors.NewModelUnavailableError("model credential missing", apperrors.NewConfigurationError("ai.api_key"))
		c.record(req.Endpoint, "unconfigured", start)
		return nil, err
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Buffered so the goroutine can always deliver and exit after losing
	results := make(chan callResult, 1)
	go func() {
		resp, err := c.callOpenAI(ctx, req.System, req.User)
		results <- callResult{resp: resp, err: err}
	}()

	select {
	case res := <-results:
		if res.err == nil {
			c.record(req.Endpoint, "success", start)
			return res.resp, nil
		}
		if ctx.Err() != nil {
			return nil, c.abandoned(ctx, req.Endpoint, timeout, start)
		}
		c.record(req.Endpoint, "error", start)
		c.logger.Warn("Model call failed", zap.String("endpoint", req.Endpoint), zap.Error(res.err))
		return nil, apperrors.NewModelUnavailableError("model call failed", res.err)
	case <-ctx.Done():
		return nil, c.abandoned(ctx, req.Endpoint, timeout, start)
	}
}

// abandoned reports a call cut short by the deadline or the caller
func (c *Client) abandoned(ctx context.Context, endpoint string, timeout time.Duration, start time.Time) error {
	outcome := "timeout"
	if errors.Is(ctx.Err(), context.Canceled) {
		outcome = "cancelled"
	}
	c.record(endpoint, outcome, start)
	c.logger.Warn("Model call abandoned",
		zap.String("endpoint", endpoint),
		zap.String("outcome", outcome),
		zap.Duration("timeout", timeout),
		zap.Error(ctx.Err()),
	)
	return apperrors.NewModelUnavailableError(fmt.Sprintf("model did not respond within %s", timeout), ctx.Err())
}

func (c *Client) record(endpoint, outcome string, start time.Time) {
	if c.metrics != nil {
		c.metrics.RecordModelCall(endpoint, outcome, time.Since(start))
	}
}

func (c *Client) callOpenAI(ctx context.Context, systemPrompt, userPrompt string) (*outbound.CompletionResponse, error) {
	reqBody := ChatCompletionRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var chatResp ChatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("no response choices returned")
	}
	content := chatResp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("empty message content")
	}

	c.logger.Info("Model call successful",
		zap.String("model", chatResp.Model),
		zap.Int("prompt_tokens", chatResp.Usage.PromptTokens),
		zap.Int("completion_tokens", chatResp.Usage.CompletionTokens),
		zap.Int("total_tokens", chatResp.Usage.TotalTokens),
	)

	return &outbound.CompletionResponse{
		Content:          content,
		Model:            chatResp.Model,
		PromptTokens:     chatResp.Usage.PromptTokens,
		CompletionTokens: chatResp.Usage.CompletionTokens,
	}, nil
}
