package classifier

import (
	"context"
	"fmt"
)

// Provider names a generative-text backend.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// ProviderConfig holds the credentials and model overrides for every backend.
// Provider may be empty, in which case the first backend with a key wins
// (OpenAI, then Gemini).
type ProviderConfig struct {
	Provider     Provider
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string
}

// NewGenerator builds the configured backend. It returns (nil, nil) when no
// credential is available so callers can still construct a Classifier that
// reports domain.ErrClassifierUnavailable per request.
func NewGenerator(ctx context.Context, cfg ProviderConfig) (Generator, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, nil
		}
		return NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, nil
		}
		return newGemini(ctx, cfg)
	case "":
		if cfg.OpenAIAPIKey != "" {
			return NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
		}
		if cfg.GeminiAPIKey != "" {
			return newGemini(ctx, cfg)
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("classifier.NewGenerator: unknown provider %q", cfg.Provider)
	}
}

// newGemini keeps a failed construction from leaking a typed nil Generator.
func newGemini(ctx context.Context, cfg ProviderConfig) (Generator, error) {
	g, err := NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, err
	}
	return g, nil
}
