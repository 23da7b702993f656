package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bookshookapp/bookshook-bot/internal/catalog"
	"github.com/bookshookapp/bookshook-bot/internal/command"
	"github.com/bookshookapp/bookshook-bot/internal/session"
)

// handleCommand dispatches a slash command. Exact canonical commands match
// first; anything else falls through to the prefix alias router, which
// silently ignores unrecognized input.
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	cmd := command.Command(strings.ToLower(msg.Command()))
	args := strings.Fields(msg.CommandArguments())

	if !command.Known(cmd) {
		resolved, aliasArgs, ok := b.router.Resolve(msg.Text)
		if !ok {
			return
		}
		cmd, args = resolved, aliasArgs
	}

	switch cmd {
	case command.Start:
		b.handleStart(msg)
	case command.Help:
		b.handleHelp(msg)
	case command.Premium:
		b.handlePremium(msg)
	case command.AddPremium:
		b.handleAddPremium(msg, args)
	case command.GetPDF:
		b.handleGetPDF(ctx, msg, args)
	default:
		b.reply(msg.Chat.ID, unknownCommandText)
	}
}

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	b.replyKeyboard(msg.Chat.ID, welcomeText, genreKeyboard(b.catalog.Genres()))
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) {
	b.replyHTML(msg.Chat.ID, helpText)
}

func (b *Bot) handlePremium(msg *tgbotapi.Message) {
	if b.access.IsPremium(msg.From.ID) {
		b.replyHTML(msg.Chat.ID, premiumYesText)
		return
	}
	b.replyHTML(msg.Chat.ID, premiumNoText)
}

func (b *Bot) handleAddPremium(msg *tgbotapi.Message, args []string) {
	if !b.access.IsAdmin(msg.From.ID) {
		b.reply(msg.Chat.ID, adminOnlyText)
		return
	}
	if len(args) == 0 {
		b.reply(msg.Chat.ID, addPremiumUsageText)
		return
	}

	target := args[0]
	if err := b.access.Grant(msg.From.ID, target); err != nil {
		b.logger.Error("premium grant failed", "granter", msg.From.ID, "target", target, "error", err)
		b.reply(msg.Chat.ID, adminOnlyText)
		return
	}

	b.logger.Info("premium granted", "granter", msg.From.ID, "target", target)
	b.reply(msg.Chat.ID, grantedText(target))
}

func (b *Bot) handleGetPDF(ctx context.Context, msg *tgbotapi.Message, args []string) {
	if !b.access.IsPremium(msg.From.ID) {
		b.replyHTML(msg.Chat.ID, premiumOnlyText)
		return
	}
	if len(args) == 0 {
		b.reply(msg.Chat.ID, getPDFUsageText)
		return
	}

	title := strings.Join(args, " ")
	b.reply(msg.Chat.ID, searchingText)

	links, err := b.resolveLinks(ctx, title)
	if err != nil {
		// Provider trouble and "found nothing" render the same to the
		// user; only the log tells them apart.
		b.logger.Warn("link resolution failed", "title", title, "error", err)
	}
	if len(links) == 0 {
		b.reply(msg.Chat.ID, pdfNotFoundText)
		return
	}
	b.replyHTML(msg.Chat.ID, pdfLinkText(title, links[0]))
}

// handleCallback routes a decoded button press.
func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		b.logger.Warn("callback without message", "data", cb.Data)
		return
	}

	event, err := ParseCallback(cb.Data)
	if err != nil {
		b.logger.Warn("undecodable callback", "data", cb.Data, "error", err)
		return
	}

	switch e := event.(type) {
	case GenrePicked:
		b.handleGenrePicked(cb, e)
	case ModePicked:
		b.handleModePicked(cb, e)
	case BookPicked:
		b.handleBookPicked(ctx, cb, e)
	}
}

func (b *Bot) handleGenrePicked(cb *tgbotapi.CallbackQuery, e GenrePicked) {
	if _, err := b.catalog.BooksIn(e.Genre); err != nil {
		b.logger.Error("genre pick for unknown genre", "genre", e.Genre, "user", cb.From.ID)
		b.edit(cb.Message.Chat.ID, cb.Message.MessageID, startOverText, false)
		return
	}

	b.sessions.Update(cb.From.ID, func(s *session.Session) {
		s.PickGenre(e.Genre)
	})
	b.editKeyboard(cb.Message.Chat.ID, cb.Message.MessageID, genreSelectedText(e.Genre), modeKeyboard())
}

func (b *Bot) handleModePicked(cb *tgbotapi.CallbackQuery, e ModePicked) {
	var (
		genre     string
		chooseErr error
	)
	b.sessions.Update(cb.From.ID, func(s *session.Session) {
		chooseErr = s.ChooseMode(e.Mode)
		genre = s.Genre
	})
	if chooseErr != nil {
		// Mode buttons only appear after a genre pick; reaching here means
		// the invariant broke (or the payload was forged).
		b.logger.Error("mode pick rejected", "mode", e.Mode, "user", cb.From.ID, "error", chooseErr)
		b.edit(cb.Message.Chat.ID, cb.Message.MessageID, startOverText, false)
		return
	}

	if e.Mode == session.ModeRandom {
		books, err := b.catalog.Sample(genre, resultLimit)
		if err != nil {
			b.logger.Error("random sample failed", "genre", genre, "error", err)
			b.edit(cb.Message.Chat.ID, cb.Message.MessageID, startOverText, false)
			return
		}
		b.sessions.Update(cb.From.ID, func(s *session.Session) {
			s.StoreResults(displays(books))
		})
		b.edit(cb.Message.Chat.ID, cb.Message.MessageID, randomPicksText(books), true)
		return
	}

	prompt := keywordPromptText
	if e.Mode == session.ModeAuthor {
		prompt = authorPromptText
	}
	b.edit(cb.Message.Chat.ID, cb.Message.MessageID, prompt, false)
}

func (b *Bot) handleBookPicked(ctx context.Context, cb *tgbotapi.CallbackQuery, e BookPicked) {
	if !b.access.IsPremium(cb.From.ID) {
		b.answerAlert(cb.ID, premiumAlertText)
		return
	}

	title := e.Title()
	links, err := b.resolveLinks(ctx, title)
	if err != nil {
		b.logger.Warn("link resolution failed", "title", title, "error", err)
	}
	if len(links) == 0 {
		b.edit(cb.Message.Chat.ID, cb.Message.MessageID, pdfNotFoundText, false)
		return
	}
	b.edit(cb.Message.Chat.ID, cb.Message.MessageID, pdfLinkText(title, links[0]), true)
}

// handleFreeText consumes typed input while a session awaits it. Text
// arriving with no active prompt is dropped.
func (b *Bot) handleFreeText(msg *tgbotapi.Message) {
	sess := b.sessions.Get(msg.From.ID)
	if !sess.ConsumeInput() {
		return
	}

	matches, err := b.catalog.Search(sess.Genre, msg.Text, searchField(sess.Mode))
	if err != nil {
		b.logger.Error("search over unknown genre", "genre", sess.Genre, "user", msg.From.ID)
		b.reply(msg.Chat.ID, startOverText)
		return
	}
	if len(matches) == 0 {
		// The prompt stays open; the user can try again or /start over.
		b.reply(msg.Chat.ID, noMatchesText)
		return
	}

	picked := displays(catalog.Pick(matches, resultLimit))
	b.sessions.Update(msg.From.ID, func(s *session.Session) {
		s.StoreResults(picked)
	})
	b.replyKeyboard(msg.Chat.ID, searchResultsHeading, resultKeyboard(picked))
}

// searchField picks the match field for a mode. Author and keyword search
// both match over the full display string; the modes differ only in their
// prompt. Kept deliberately identical.
func searchField(session.Mode) catalog.Field {
	return catalog.ByDisplay
}

func displays(books []catalog.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Display()
	}
	return out
}
