package ai_fx

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"roamio/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvideResultCache,
)

// CompletionConfig holds configuration for the model provider.
type CompletionConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideCompletionClient creates a completion client based on environment
// variables and closes it on shutdown.
func ProvideCompletionClient(lc fx.Lifecycle, logger *zap.Logger) (utils.CompletionClientInterface, error) {
	config, err := getCompletionConfig()
	if err != nil {
		return nil, err
	}

	logger.Info("initializing completion client",
		zap.String("provider", config.Provider),
		zap.String("model", config.Model))

	client, err := utils.NewCompletionClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func ProvideResultCache() *utils.ResultCache {
	return utils.NewResultCache()
}

// getCompletionConfig reads provider settings from environment variables.
// The credential is an opaque input handed to the provider SDK; nothing
// else in the pipeline sees it.
func getCompletionConfig() (CompletionConfig, error) {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			return CompletionConfig{}, fmt.Errorf("OPENAI_API_KEY is required when using the OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.0-flash")
		if apiKey == "" {
			return CompletionConfig{}, fmt.Errorf("GEMINI_API_KEY is required when using the Gemini provider")
		}
	default:
		return CompletionConfig{}, fmt.Errorf("%w: %s", utils.ErrUnsupportedProvider, provider)
	}

	return CompletionConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
