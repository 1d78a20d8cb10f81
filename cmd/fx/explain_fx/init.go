package explain_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"monumentscout/internal/config"
	"monumentscout/internal/services"
	"monumentscout/pkg/utils"
)

var Module = fx.Provide(
	ProvideChatClient,
	ProvideExplainService)

// ProvideChatClient creates the text-generation client for the configured
// provider. Without a credential it returns a nil client and the service
// answers every explanation request with a configuration error.
func ProvideChatClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (utils.ChatClientInterface, error) {
	llm := cfg.LLM

	if llm.APIKey == "" {
		logger.Warn("text generation credential missing, explanations disabled",
			zap.String("provider", llm.Provider),
			zap.String("credential", llm.CredentialName()))
		return nil, nil
	}

	logger.Info("initializing text generation client",
		zap.String("provider", llm.Provider),
		zap.String("model", llm.Model))

	switch llm.Provider {
	case config.ProviderOpenRouter:
		return utils.NewOpenAIChatClient(llm.APIKey, llm.BaseURL, llm.Model, llm.HTTPTimeout.Std(), map[string]string{
			"HTTP-Referer": llm.Referer,
			"X-Title":      llm.Title,
		}), nil
	case config.ProviderGemini:
		client, err := utils.NewGeminiChatClient(context.Background(), llm.APIKey, llm.Model, llm.HTTPTimeout.Std())
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s. Use '%s' or '%s'", llm.Provider, config.ProviderOpenRouter, config.ProviderGemini)
	}
}

func ProvideExplainService(chat utils.ChatClientInterface, cfg *config.Config, logger *zap.Logger) services.ExplainServiceInterface {
	return services.NewExplainService(chat, cfg.LLM, logger.Named("explain"))
}
