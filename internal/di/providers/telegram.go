package providers

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/do/v2"

	"github.com/bookshookapp/bookshook-bot/internal/bot"
	"github.com/bookshookapp/bookshook-bot/internal/command"
	"github.com/bookshookapp/bookshook-bot/internal/config"
	"github.com/bookshookapp/bookshook-bot/internal/logger"

	"github.com/bookshookapp/bookshook-bot/internal/access"
	"github.com/bookshookapp/bookshook-bot/internal/catalog"
	"github.com/bookshookapp/bookshook-bot/internal/session"
)

// longPollTimeout is the Telegram long-polling timeout in seconds.
const longPollTimeout = 30

// shutdownTimeout is the maximum time to wait for the update loop to drain.
const shutdownTimeout = 10 * time.Second

// BotAPIHandle wraps the Telegram API client with shutdown capability.
type BotAPIHandle struct {
	*tgbotapi.BotAPI
}

// Shutdown implements do.Shutdownable.
func (h *BotAPIHandle) Shutdown() error {
	h.StopReceivingUpdates()
	return nil
}

// ProvideBotAPI provides the authenticated Telegram API client.
func ProvideBotAPI(i do.Injector) (*BotAPIHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	api, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		return nil, fmt.Errorf("authorize bot: %w", err)
	}

	log.Info("Telegram bot authorized", "username", api.Self.UserName)

	return &BotAPIHandle{BotAPI: api}, nil
}

// ProvideBot provides the update handler with all collaborators wired in.
func ProvideBot(i do.Injector) (*bot.Bot, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	apiHandle := do.MustInvoke[*BotAPIHandle](i)
	resolverHandle := do.MustInvoke[*ResolverHandle](i)

	b := bot.New(bot.Config{
		API:           apiHandle.BotAPI,
		Catalog:       do.MustInvoke[*catalog.Catalog](i),
		Access:        do.MustInvoke[*access.Registry](i),
		Resolver:      resolverHandle.Client,
		Sessions:      do.MustInvoke[*session.Store](i),
		Router:        do.MustInvoke[*command.Router](i),
		SearchTimeout: cfg.Search.Timeout,
		Logger:        log.WithComponent("bot").Logger,
	})

	return b, nil
}

// RunnerHandle owns the long-polling update loop.
type RunnerHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Shutdown implements do.Shutdownable. Stops the loop and waits for the
// in-flight update to finish.
func (h *RunnerHandle) Shutdown() error {
	h.cancel()
	select {
	case <-h.done:
		return nil
	case <-time.After(shutdownTimeout):
		return fmt.Errorf("update loop did not stop within %s", shutdownTimeout)
	}
}

// ProvideRunner starts the update loop.
func ProvideRunner(i do.Injector) (*RunnerHandle, error) {
	apiHandle := do.MustInvoke[*BotAPIHandle](i)
	b := do.MustInvoke[*bot.Bot](i)
	log := do.MustInvoke[*logger.Logger](i)

	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = longPollTimeout
	updates := apiHandle.GetUpdatesChan(updateCfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		b.Run(ctx, updates)
	}()

	log.Info("Update loop started")

	return &RunnerHandle{cancel: cancel, done: done}, nil
}
