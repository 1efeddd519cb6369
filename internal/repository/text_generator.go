package repository

import (
	"context"
	"fmt"
	"price-compare/config"
	"price-compare/internal/dto"
	"price-compare/pkg/common"
	"price-compare/pkg/logger"
)

// TextGenerator turns a generation request into free text. Implementations make exactly one
// call per request.
type TextGenerator interface {
	Generate(ctx context.Context, req dto.GenerationRequest) (string, error)
}

func NewTextGenerator(ctx context.Context, cfg *config.Config, log *logger.Logger) (TextGenerator, error) {
	switch cfg.LLM.Provider {
	case "", common.LLM_PROVIDER_OLLAMA:
		return NewOllamaRepository(cfg, log), nil
	case common.LLM_PROVIDER_GEMINI:
		return NewGeminiRepository(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.LLM.Provider)
	}
}
