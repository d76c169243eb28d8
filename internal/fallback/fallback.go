// Package fallback provides the generative responders used when no rule
// matches user input.
package fallback

import (
	"context"
	"errors"
	"fmt"

	"careassist/internal/config"
)

var (
	ErrEmptyGeneration = errors.New("no generated text in response")
	ErrUnknownProvider = errors.New("unknown fallback provider")
)

// Responder is a named text generator.
type Responder interface {
	Name() string
	Generate(ctx context.Context, text string) (string, error)
}

// Static always answers with the same reply.
type Static struct {
	reply string
}

// NewStatic creates a responder returning reply.
func NewStatic(reply string) *Static {
	return &Static{reply: reply}
}

// Name returns the provider name.
func (s *Static) Name() string { return "static" }

// Generate returns the configured reply.
func (s *Static) Generate(ctx context.Context, text string) (string, error) {
	return s.reply, nil
}

// New builds the responder selected by cfg.FallbackProvider.
func New(ctx context.Context, cfg *config.Config) (Responder, error) {
	switch cfg.FallbackProvider {
	case config.ProviderHuggingFace:
		hf, err := NewHuggingFace(cfg.HFBaseURL, cfg.HFModel, cfg.HFToken, cfg.HFMaxLength, cfg.HFTimeout)
		if err != nil {
			return nil, err
		}
		return hf, nil
	case config.ProviderGemini:
		g, err := NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderStatic:
		return NewStatic(cfg.StaticReply), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.FallbackProvider)
	}
}
