package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"price-compare/config"
	"price-compare/internal/dto"
	"price-compare/pkg/httpclient"
	"price-compare/pkg/logger"
	"price-compare/pkg/ratelimit"

	"golang.org/x/time/rate"
)

const ollamaChatEndpoint = "/api/chat"

var ErrEmptyGeneration = errors.New("generation response has no message content")

type ollamaRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

func NewOllamaRepository(cfg *config.Config, log *logger.Logger) TextGenerator {
	return newOllamaRepository(httpclient.New(cfg.LLM.BaseURL, cfg.LLM.Timeout, cfg.LLM.APIKey), cfg, log)
}

func newOllamaRepository(client httpclient.HTTPClient, cfg *config.Config, log *logger.Logger) *ollamaRepository {
	return &ollamaRepository{
		httpClient:     client,
		cfg:            cfg,
		logger:         log,
		requestLimiter: ratelimit.PerMinute(cfg.LLM.MaxRequestPerMinute),
	}
}

func (r *ollamaRepository) Generate(ctx context.Context, req dto.GenerationRequest) (string, error) {
	if req.Model == "" {
		req.Model = r.cfg.LLM.Model
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for ollama request limit: %w", err)
	}

	resp, err := r.httpClient.Post(ctx, ollamaChatEndpoint, req, nil, nil)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to send request to ollama", logger.ErrorField(err))
		return "", fmt.Errorf("failed to send request to ollama: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "failed to get response from ollama", logger.IntField("status_code", resp.StatusCode))
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(resp.Body))
	}

	var chatResp dto.OllamaChatResponse
	if err := json.Unmarshal(resp.Body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response from ollama: %w", err)
	}
	if chatResp.Message == nil {
		return "", ErrEmptyGeneration
	}

	r.logger.DebugContext(ctx, "Ollama generation done",
		logger.StringField("model", req.Model),
		logger.IntField("length", len(chatResp.Message.Content)),
	)
	return chatResp.Message.Content, nil
}
