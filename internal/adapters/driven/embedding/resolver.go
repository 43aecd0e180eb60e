// Package embedding resolves which embedding provider to use, in priority
// order, degrading to a deterministic stub when nothing else works.
package embedding

import (
	"context"
	"fmt"
	"time"

	"github.com/alcove-ai/alcove/internal/adapters/driven/embedding/groq"
	"github.com/alcove-ai/alcove/internal/adapters/driven/embedding/lmstudio"
	"github.com/alcove-ai/alcove/internal/adapters/driven/embedding/ollama"
	"github.com/alcove-ai/alcove/internal/core/domain"
	"github.com/alcove-ai/alcove/internal/core/ports/driven"
	"github.com/alcove-ai/alcove/internal/logger"
)

// pingTimeout is the maximum time to wait for provider connectivity
// validation during tier resolution.
const pingTimeout = 5 * time.Second

// factory builds one candidate embedding provider.
// A nil service with a nil error means the tier is not configured.
type factory struct {
	tier  domain.EmbeddingTier
	build func(ctx context.Context) (driven.EmbeddingService, error)
}

// Resolve returns the highest-priority usable embedding service.
//
// Resolution order: Groq (remote, keyed) > Ollama > LM Studio > stub.
// Construction and ping failures demote to the next tier and are never
// surfaced; the stub tier always succeeds, so Resolve cannot fail.
func Resolve(ctx context.Context, settings domain.EmbeddingSettings) (driven.EmbeddingService, domain.EmbeddingTier) {
	return resolve(ctx, factories(settings))
}

// resolve is a first-match fold over the factory list.
func resolve(ctx context.Context, candidates []factory) (driven.EmbeddingService, domain.EmbeddingTier) {
	for _, candidate := range candidates {
		svc, err := candidate.build(ctx)
		if err != nil {
			logger.Debug("Embedding tier %s unavailable: %v", candidate.tier, err)
			continue
		}
		if svc == nil {
			logger.Debug("Embedding tier %s not configured", candidate.tier)
			continue
		}
		logger.Info("Embedding provider: %s (model %s)", candidate.tier.Description(), svc.ModelName())
		return svc, candidate.tier
	}

	// Unreachable: the stub factory never fails. Kept so the fold has a
	// total return without a panic.
	stub := NewStubEmbedder()
	return stub, domain.TierStub
}

// factories returns the ordered candidate list for the given settings.
func factories(settings domain.EmbeddingSettings) []factory {
	return []factory{
		{
			tier:  domain.TierGroq,
			build: func(ctx context.Context) (driven.EmbeddingService, error) {
				if settings.GroqAPIKey == "" {
					return nil, fmt.Errorf("%w: no API key configured", domain.ErrProviderUnavailable)
				}
				svc, err := groq.NewEmbeddingService(groq.Config{
					APIKey: settings.GroqAPIKey,
				})
				if err != nil {
					return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
				}
				return validated(ctx, svc)
			},
		},
		{
			tier:  domain.TierOllama,
			build: func(ctx context.Context) (driven.EmbeddingService, error) {
				svc := ollama.NewEmbeddingService(ollama.Config{
					BaseURL: settings.OllamaBaseURL,
					Model:   settings.Model,
				})
				return validated(ctx, svc)
			},
		},
		{
			tier:  domain.TierLMStudio,
			build: func(ctx context.Context) (driven.EmbeddingService, error) {
				svc := lmstudio.NewEmbeddingService(lmstudio.Config{
					BaseURL: settings.LMStudioBaseURL,
					Model:   settings.Model,
				})
				return validated(ctx, svc)
			},
		},
		{
			tier:  domain.TierStub,
			build: func(_ context.Context) (driven.EmbeddingService, error) {
				return NewStubEmbedder(), nil
			},
		},
	}
}

// validated pings the service before committing to it; dead providers are
// closed and demoted.
func validated(ctx context.Context, svc driven.EmbeddingService) (driven.EmbeddingService, error) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := svc.Ping(pingCtx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}
	return svc, nil
}
