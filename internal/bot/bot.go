// Package bot wires the Telegram transport to the catalog, access registry,
// session state machine, and link resolver.
package bot

import (
	"context"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bookshookapp/bookshook-bot/internal/access"
	"github.com/bookshookapp/bookshook-bot/internal/catalog"
	"github.com/bookshookapp/bookshook-bot/internal/command"
	"github.com/bookshookapp/bookshook-bot/internal/session"
)

// resultLimit caps how many books a random sample or search presents.
const resultLimit = 5

// defaultSearchTimeout bounds a link resolution when none is configured.
const defaultSearchTimeout = 10 * time.Second

// Sender is the outbound half of the Telegram API the bot needs. The
// concrete *tgbotapi.BotAPI satisfies it; tests substitute a recorder.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// LinkResolver finds downloadable links for a book title.
type LinkResolver interface {
	Resolve(ctx context.Context, title string) ([]string, error)
}

// Config collects the bot's collaborators.
type Config struct {
	API           Sender
	Catalog       *catalog.Catalog
	Access        *access.Registry
	Resolver      LinkResolver
	Sessions      *session.Store
	Router        *command.Router
	SearchTimeout time.Duration
	Logger        *slog.Logger
}

// Bot handles inbound Telegram updates.
type Bot struct {
	api           Sender
	catalog       *catalog.Catalog
	access        *access.Registry
	resolver      LinkResolver
	sessions      *session.Store
	router        *command.Router
	searchTimeout time.Duration
	logger        *slog.Logger
}

// New creates a bot from its collaborators.
func New(cfg Config) *Bot {
	if cfg.SearchTimeout <= 0 {
		cfg.SearchTimeout = defaultSearchTimeout
	}
	return &Bot{
		api:           cfg.API,
		catalog:       cfg.Catalog,
		access:        cfg.Access,
		resolver:      cfg.Resolver,
		sessions:      cfg.Sessions,
		router:        cfg.Router,
		searchTimeout: cfg.SearchTimeout,
		logger:        cfg.Logger,
	}
}

// Run drains the update channel until the context is canceled or the
// channel closes. Updates are handled one at a time in arrival order.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate routes one inbound update. Every failure path converts to a
// user-visible message; nothing here is fatal to the process.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(ctx, update.Message)
	case update.Message != nil && update.Message.Text != "":
		b.handleFreeText(update.Message)
	}
}

// reply sends a plain text message.
func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	b.send(msg)
}

// replyHTML sends an HTML-formatted message.
func (b *Bot) replyHTML(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	b.send(msg)
}

// replyKeyboard sends an HTML-formatted message with an inline keyboard.
func (b *Bot) replyKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = kb
	b.send(msg)
}

// edit replaces a message's text in place.
func (b *Bot) edit(chatID int64, messageID int, text string, htmlMode bool) {
	msg := tgbotapi.NewEditMessageText(chatID, messageID, text)
	if htmlMode {
		msg.ParseMode = tgbotapi.ModeHTML
	}
	b.send(msg)
}

// editKeyboard replaces a message's text and keyboard in place.
func (b *Bot) editKeyboard(chatID int64, messageID int, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, kb)
	msg.ParseMode = tgbotapi.ModeHTML
	b.send(msg)
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.logger.Warn("send failed", "error", err)
	}
}

// answerAlert answers a callback query with a popup alert.
func (b *Bot) answerAlert(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		b.logger.Warn("callback answer failed", "error", err)
	}
}

// resolveLinks runs a link resolution under the configured timeout.
func (b *Bot) resolveLinks(ctx context.Context, title string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, b.searchTimeout)
	defer cancel()
	return b.resolver.Resolve(ctx, title)
}
