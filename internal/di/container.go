// Package di provides dependency injection configuration for the bot.
package di

import (
	"github.com/samber/do/v2"

	"github.com/bookshookapp/bookshook-bot/internal/access"
	"github.com/bookshookapp/bookshook-bot/internal/catalog"
	"github.com/bookshookapp/bookshook-bot/internal/command"
	"github.com/bookshookapp/bookshook-bot/internal/config"
	"github.com/bookshookapp/bookshook-bot/internal/di/providers"
	"github.com/bookshookapp/bookshook-bot/internal/logger"
	"github.com/bookshookapp/bookshook-bot/internal/session"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Domain components
	do.Provide(injector, providers.ProvideCatalog)
	do.Provide(injector, providers.ProvideAccessRegistry)
	do.Provide(injector, providers.ProvideSessionStore)
	do.Provide(injector, providers.ProvideCommandRouter)
	do.Provide(injector, providers.ProvideResolver)

	// Transport
	do.Provide(injector, providers.ProvideBotAPI)
	do.Provide(injector, providers.ProvideBot)
	do.Provide(injector, providers.ProvideRunner)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)

	_ = do.MustInvoke[*catalog.Catalog](injector)
	_ = do.MustInvoke[*access.Registry](injector)
	_ = do.MustInvoke[*session.Store](injector)
	_ = do.MustInvoke[*command.Router](injector)
	_ = do.MustInvoke[*providers.ResolverHandle](injector)

	_ = do.MustInvoke[*providers.BotAPIHandle](injector)
	_ = do.MustInvoke[*providers.RunnerHandle](injector)

	return nil
}
