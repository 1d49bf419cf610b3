package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/pkg/utils"
)

type PlannerServiceInterface interface {
	PlanTrip(ctx context.Context, req request_models.TripRequest) (*response_models.PlanResult, error)
}

// PlannerService runs one planning request end to end: validate, build the
// prompt, call the model with a timeout, normalize whatever comes back.
// There is no shared state between requests beyond the result cache.
type PlannerService struct {
	ai          utils.CompletionClientInterface
	cache       *utils.ResultCache
	normalizer  *Normalizer
	logger      *zap.Logger
	callTimeout time.Duration
}

const defaultCallTimeout = 60 * time.Second

func NewPlannerService(
	ai utils.CompletionClientInterface,
	cache *utils.ResultCache,
	logger *zap.Logger,
) PlannerServiceInterface {
	return &PlannerService{
		ai:          ai,
		cache:       cache,
		normalizer:  NewNormalizer(logger),
		logger:      logger,
		callTimeout: defaultCallTimeout,
	}
}

// PlanTrip fails only on an invalid request. Transport errors and garbage
// model output are absorbed into the fallback itinerary so the caller
// always has something to render.
func (s *PlannerService) PlanTrip(ctx context.Context, req request_models.TripRequest) (*response_models.PlanResult, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return nil, err
	}

	key := utils.CacheKey(req)
	if !req.Refresh {
		if cached, ok := s.cache.Get(key); ok {
			s.logger.Debug("plan served from cache", zap.String("key", key))
			return cached, nil
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	raw, err := s.ai.GenerateItinerary(callCtx, prompt)
	if err != nil {
		// A transport failure is handled identically to an empty
		// response: the normalizer routes it to the fallback plan.
		s.logger.Warn("model call failed",
			zap.String("destination", req.Destination),
			zap.Error(err))
		raw = ""
	}

	result := s.normalizer.Normalize(raw, req)

	s.logger.Info("plan generated",
		zap.String("destination", req.Destination),
		zap.Int("days", req.DurationDays),
		zap.Bool("fallback", result.IsFallback),
		zap.Int("notes", len(result.Notes)))

	// Fallback plans are never cached; a retry should hit the model again.
	if !result.IsFallback {
		s.cache.Set(key, result)
	}

	return result, nil
}
