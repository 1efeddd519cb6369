package repository

import (
	"context"
	"fmt"
	"price-compare/config"
	"price-compare/internal/dto"
	"price-compare/pkg/logger"
	"price-compare/pkg/ratelimit"
	"strings"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// geminiRepository generates narratives with the Google Gemini API.
type geminiRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

func NewGeminiRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (TextGenerator, error) {
	genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.LLM.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: ratelimit.PerMinute(cfg.LLM.MaxRequestPerMinute),
		tokenLimiter:   ratelimit.NewTokenLimiter(cfg.LLM.MaxTokenPerMinute),
		genAiClient:    genAiClient,
	}, nil
}

func (r *geminiRepository) Generate(ctx context.Context, req dto.GenerationRequest) (string, error) {
	modelName := req.Model
	if modelName == "" {
		modelName = r.cfg.LLM.Model
	}

	if r.cfg.LLM.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.LLM.Timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		genai.NewContentFromText(req.Prompt(), "user"),
	}

	if r.cfg.LLM.MaxTokenPerMinute > 0 {
		tokenResp, err := r.genAiClient.Models.CountTokens(ctx, modelName, contents, nil)
		if err != nil {
			return "", fmt.Errorf("failed to count tokens: %w", err)
		}

		r.logger.Debug("Gemini token count",
			logger.IntField("total_tokens", int(tokenResp.TotalTokens)),
			logger.IntField("remaining", r.tokenLimiter.GetRemaining()),
		)
		if err := r.tokenLimiter.Wait(ctx, int(tokenResp.TotalTokens)); err != nil {
			return "", fmt.Errorf("failed to wait for token gemini limit: %w", err)
		}
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request gemini limit: %w", err)
	}

	resp, err := r.genAiClient.Models.GenerateContent(ctx, modelName, contents, nil)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to send request to gemini", logger.ErrorField(err))
		return "", fmt.Errorf("failed to send request to gemini: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", ErrEmptyGeneration
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
