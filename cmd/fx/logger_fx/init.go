package logger_fx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(ProvideLogger)

// ProvideLogger builds the process-wide zap logger. APP_ENV=production
// switches to the JSON production config.
func ProvideLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
