// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"
)

// CompletionRequest is a single chat completion call
type CompletionRequest struct {
	System string
	User   string
	// Timeout bounds the whole call; zero means the client default
	Timeout time.Duration
	// Endpoint labels the call in logs and metrics
	Endpoint string
}

// CompletionResponse carries the model's raw text
type CompletionResponse struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
}

// CompletionClient calls a hosted language model once, without retries
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

// MetricsRecorder receives generation telemetry
type MetricsRecorder interface {
	RecordModelCall(endpoint, outcome string, duration time.Duration)
	RecordGeneration(endpoint string, fallback bool, reason string, recipes int)
}
