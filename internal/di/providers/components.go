package providers

import (
	"github.com/samber/do/v2"

	"github.com/bookshookapp/bookshook-bot/internal/access"
	"github.com/bookshookapp/bookshook-bot/internal/catalog"
	"github.com/bookshookapp/bookshook-bot/internal/command"
	"github.com/bookshookapp/bookshook-bot/internal/config"
	"github.com/bookshookapp/bookshook-bot/internal/logger"
	"github.com/bookshookapp/bookshook-bot/internal/resolver"
	"github.com/bookshookapp/bookshook-bot/internal/session"
)

// ProvideCatalog provides the static book catalog.
func ProvideCatalog(i do.Injector) (*catalog.Catalog, error) {
	log := do.MustInvoke[*logger.Logger](i)

	cat := catalog.New(catalog.DefaultShelves)
	log.Info("Catalog initialized", "genres", len(cat.Genres()))

	return cat, nil
}

// ProvideAccessRegistry provides the premium access registry with the
// administrator pre-granted.
func ProvideAccessRegistry(i do.Injector) (*access.Registry, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	reg := access.NewRegistry(cfg.Admin.UserID)
	log.Info("Access registry initialized", "admin_user_id", cfg.Admin.UserID)

	return reg, nil
}

// ProvideSessionStore provides the per-user session store.
func ProvideSessionStore(i do.Injector) (*session.Store, error) {
	return session.NewStore(), nil
}

// ProvideCommandRouter provides the prefix alias router.
func ProvideCommandRouter(i do.Injector) (*command.Router, error) {
	return command.NewRouter(), nil
}

// ResolverHandle wraps the search client with shutdown capability.
type ResolverHandle struct {
	*resolver.Client
}

// Shutdown implements do.Shutdownable.
func (h *ResolverHandle) Shutdown() error {
	h.Client.Close()
	return nil
}

// ProvideResolver provides the PDF link resolver.
func ProvideResolver(i do.Injector) (*ResolverHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := resolver.New(cfg.Search.APIKey, cfg.Search.EngineID,
		log.WithComponent("resolver").Logger,
		resolver.Options{
			Timeout:    cfg.Search.Timeout,
			MaxResults: cfg.Search.MaxResults,
		})

	log.Info("Link resolver initialized",
		"timeout", cfg.Search.Timeout,
		"max_results", cfg.Search.MaxResults,
	)

	return &ResolverHandle{Client: client}, nil
}
