package generation

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/alchemorsel/recipegen/internal/domain/recipe"
	"github.com/alchemorsel/recipegen/internal/ports/inbound"
	"github.com/alchemorsel/recipegen/internal/ports/outbound"
	apperrors "github.com/alchemorsel/recipegen/pkg/errors"
)

const tracerName = "github.com/alchemorsel/recipegen/internal/application/generation"

// Fallback reasons, as reported in logs and metrics
const (
	ReasonNone              = "none"
	ReasonModelUnavailable  = "model_unavailable"
	ReasonExtractionFailure = "extraction_failure"
)

// Notes returned to callers when static recipes are served
const (
	noteModelUnavailable  = "AI recipe generation is temporarily unavailable; showing suggested recipes instead"
	noteExtractionFailure = "AI response could not be understood; showing suggested recipes instead"
)

// Config holds the generation deadlines
type Config struct {
	IngredientTimeout time.Duration
	CuisineTimeout    time.Duration
}

// Service orchestrates one generation: prompt, model call, extraction,
// normalization, and the fallback path. It holds no per-request state.
type Service struct {
	client   outbound.CompletionClient
	metrics  outbound.MetricsRecorder
	logger   *zap.Logger
	tracer   trace.Tracer
	profiles map[recipe.SearchKind]Profile
}

var _ inbound.GenerationService = (*Service)(nil)

// NewService creates a generation service. metrics may be nil.
func NewService(client outbound.CompletionClient, metrics outbound.MetricsRecorder, cfg Config, logger *zap.Logger) *Service {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Service{
		client:  client,
		metrics: metrics,
		logger:  logger.Named("generation"),
		tracer:  otel.Tracer(tracerName),
		profiles: map[recipe.SearchKind]Profile{
			recipe.SearchByIngredients: IngredientProfile(cfg.IngredientTimeout),
			recipe.SearchByCuisine:     CuisineProfile(cfg.CuisineTimeout),
		},
	}
}

// Generate implements inbound.GenerationService
func (s *Service) Generate(ctx context.Context, req recipe.GenerationRequest) (*recipe.GenerationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, invalidRequest(err)
	}

	profile := s.profiles[req.Kind]
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "generation.Generate", trace.WithAttributes(
		attribute.String("generation.endpoint", profile.Endpoint),
		attribute.Int("generation.target_count", profile.TargetCount),
	))
	defer span.End()

	prompt := BuildPrompt(req, profile)

	resp, err := s.callModel(ctx, prompt, profile)
	if err != nil {
		return s.fallback(ctx, req, profile, ReasonModelUnavailable, err, start), nil
	}

	_, extractSpan := s.tracer.Start(ctx, "generation.Extract")
	drafts, err := ExtractDrafts(resp.Content)
	extractSpan.End()
	if err != nil {
		return s.fallback(ctx, req, profile, ReasonExtractionFailure, err, start), nil
	}

	if len(drafts) > profile.TargetCount {
		drafts = drafts[:profile.TargetCount]
	}
	recipes := Normalize(drafts, req, profile)

	span.SetAttributes(attribute.Int("generation.recipes", len(recipes)), attribute.Bool("generation.fallback", false))
	s.metrics.RecordGeneration(profile.Endpoint, false, ReasonNone, len(recipes))
	s.logger.Info("Recipes generated",
		zap.String("endpoint", profile.Endpoint),
		zap.Int("recipes", len(recipes)),
		zap.Int("drafts", len(drafts)),
		zap.Duration("duration", time.Since(start)),
	)

	return &recipe.GenerationResult{Recipes: recipes, Cuisine: req.Cuisine}, nil
}

func (s *Service) callModel(ctx context.Context, prompt Prompt, profile Profile) (*outbound.CompletionResponse, error) {
	ctx, span := s.tracer.Start(ctx, "generation.CallModel")
	defer span.End()

	resp, err := s.client.Complete(ctx, outbound.CompletionRequest{
		System:   prompt.System,
		User:     prompt.User,
		Timeout:  profile.Timeout,
		Endpoint: profile.Endpoint,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "model call failed")
		return nil, err
	}
	if resp == nil {
		return nil, apperrors.NewModelUnavailableError("model returned no response", nil)
	}
	return resp, nil
}

func (s *Service) fallback(ctx context.Context, req recipe.GenerationRequest, profile Profile, reason string, cause error, start time.Time) *recipe.GenerationResult {
	_, span := s.tracer.Start(ctx, "generation.Fallback", trace.WithAttributes(attribute.String("generation.reason", reason)))
	recipes := Fallback(req)
	span.End()

	note := noteModelUnavailable
	if reason == ReasonExtractionFailure {
		note = noteExtractionFailure
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("generation.recipes", len(recipes)),
		attribute.Bool("generation.fallback", true),
	)
	s.metrics.RecordGeneration(profile.Endpoint, true, reason, len(recipes))
	s.logger.Warn("Serving fallback recipes",
		zap.String("endpoint", profile.Endpoint),
		zap.String("reason", reason),
		zap.String("error_code", string(apperrors.GetCode(cause))),
		zap.Error(cause),
		zap.Int("recipes", len(recipes)),
		zap.Duration("duration", time.Since(start)),
	)

	return &recipe.GenerationResult{
		Recipes:      recipes,
		UsedFallback: true,
		ErrorNote:    note,
		Cuisine:      req.Cuisine,
	}
}

func invalidRequest(err error) *apperrors.AppError {
	msg := "Invalid request"
	switch {
	case errors.Is(err, recipe.ErrNoIngredients):
		msg = "Ingredients list is required"
	case errors.Is(err, recipe.ErrNoCuisine):
		msg = "Cuisine is required"
	}
	return apperrors.NewInvalidRequestError(msg).WithCause(err)
}

type nopRecorder struct{}

func (nopRecorder) RecordModelCall(string, string, time.Duration)   {}
func (nopRecorder) RecordGeneration(string, bool, string, int) {}
