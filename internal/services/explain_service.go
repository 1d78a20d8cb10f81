package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"monumentscout/internal/config"
	"monumentscout/internal/models/request_models"
	"monumentscout/internal/models/response_models"
	"monumentscout/pkg/middleware"
	"monumentscout/pkg/utils"
)

type ExplainServiceInterface interface {
	Explain(ctx context.Context, req request_models.ExplainRequest) (response_models.Explanation, error)
}

type ExplainService struct {
	chat      utils.ChatClientInterface
	llmConfig config.LLMConfig
	logger    *zap.Logger
}

// NewExplainService wires the generator. chat may be nil when no credential
// was provisioned; Explain then reports a configuration error.
func NewExplainService(chat utils.ChatClientInterface, llmConfig config.LLMConfig, logger *zap.Logger) ExplainServiceInterface {
	return &ExplainService{
		chat:      chat,
		llmConfig: llmConfig,
		logger:    logger,
	}
}

func (s *ExplainService) Explain(ctx context.Context, req request_models.ExplainRequest) (response_models.Explanation, error) {
	if req.Name == "" {
		return response_models.Explanation{}, utils.ErrMissingMonumentName
	}

	log := s.logger.With(zap.String("trace_id", middleware.TraceIDFromContext(ctx)))

	if s.llmConfig.APIKey == "" || s.chat == nil {
		log.Error("text generation credential not configured",
			zap.String("provider", s.llmConfig.Provider),
			zap.String("credential", s.llmConfig.CredentialName()))
		return response_models.Explanation{}, &utils.NotConfiguredError{Credential: s.llmConfig.CredentialName()}
	}

	lang := ResolveLanguage(req.Language)
	prompt := BuildExplanationPrompt(req.Name, req.Type, req.Detailed, lang)

	text, err := s.chat.Complete(ctx, utils.ChatCompletionRequest{
		Prompt:      prompt,
		MaxTokens:   explanationMaxTokens(req.Detailed),
		Temperature: explanationTemperature,
	})
	if err != nil {
		fields := []zap.Field{
			zap.String("name", req.Name),
			zap.String("model", s.chat.Model()),
			zap.Error(err),
		}
		var upErr *utils.UpstreamError
		if errors.As(err, &upErr) {
			fields = append(fields, zap.Int("upstream_status", upErr.StatusCode))
		}
		log.Error("explanation generation failed", fields...)
		return response_models.Explanation{}, fmt.Errorf("%w: %w", utils.ErrExplanationFailed, err)
	}

	explanation := strings.TrimSpace(text)
	if explanation == "" {
		log.Error("explanation generation returned blank text", zap.String("name", req.Name))
		return response_models.Explanation{}, fmt.Errorf("%w: %w", utils.ErrExplanationFailed, utils.ErrEmptyCompletion)
	}

	log.Info("generated explanation",
		zap.String("name", req.Name),
		zap.Bool("detailed", req.Detailed),
		zap.String("language", string(lang)))

	return response_models.Explanation{
		Name:        req.Name,
		Type:        req.Type,
		Explanation: explanation,
		Detailed:    req.Detailed,
	}, nil
}
