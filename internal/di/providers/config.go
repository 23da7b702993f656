// Package providers contains dependency injection providers for the bot.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/bookshookapp/bookshook-bot/internal/config"
	"github.com/bookshookapp/bookshook-bot/internal/logger"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	log.Info("Starting Book Shook bot",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"admin_user_id", cfg.Admin.UserID,
	)

	return log, nil
}
