package explain_fx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest"
	"monumentscout/internal/config"
	"monumentscout/pkg/utils"
)

func TestProvideChatClient(t *testing.T) {
	tests := []struct {
		name      string
		provider  string
		apiKey    string
		wantNil   bool
		wantModel string
		wantErr   bool
	}{
		{name: "missing key", provider: config.ProviderOpenRouter, wantNil: true},
		{name: "openrouter", provider: config.ProviderOpenRouter, apiKey: "sk-test", wantModel: config.DefaultOpenRouterModel},
		{name: "gemini", provider: config.ProviderGemini, apiKey: "gm-test", wantModel: config.DefaultGeminiModel},
		{name: "unknown provider", provider: "claude", apiKey: "k", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			cfg.LLM.Provider = tt.provider
			cfg.LLM.APIKey = tt.apiKey
			if tt.provider == config.ProviderGemini {
				cfg.LLM.Model = config.DefaultGeminiModel
			} else {
				cfg.LLM.Model = config.DefaultOpenRouterModel
			}

			lc := fxtest.NewLifecycle(t)
			chat, err := ProvideChatClient(lc, cfg, zaptest.NewLogger(t))
			lc.RequireStart()
			defer lc.RequireStop()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, chat)
				return
			}
			require.NotNil(t, chat)
			assert.Equal(t, tt.wantModel, chat.Model())
		})
	}
}

func TestProvideExplainService_NilClient(t *testing.T) {
	var chat utils.ChatClientInterface
	svc := ProvideExplainService(chat, config.NewDefaultConfig(), zaptest.NewLogger(t))
	assert.NotNil(t, svc)
}
