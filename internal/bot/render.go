package bot

import (
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bookshookapp/bookshook-bot/internal/catalog"
	"github.com/bookshookapp/bookshook-bot/internal/session"
)

// User-visible texts. Messages marked HTML are sent with HTML parse mode.
const (
	welcomeText = "✨ <b>Welcome to Book Shook!</b>\n\nChoose a genre to get started:\n\n" +
		"🆘 Use /help to see all commands."

	helpText = "🆘 <b>Book Shook Commands:</b>\n\n" +
		"/start - Start and pick a genre\n" +
		"/help - Show this help message\n" +
		"/premium - Check your premium status\n" +
		"/addpremium &lt;user_id&gt; - [Admin] Grant premium access\n" +
		"/getpdf &lt;book name&gt; - Get a book's PDF link (premium only)\n\n" +
		"Pick a genre, then search by author, keyword, or get random suggestions!"

	premiumYesText = "✅ <b>You are a Premium user.</b>"
	premiumNoText  = "🔒 <b>You are not a premium user.</b>"

	premiumOnlyText  = "🔒 <b>This feature is for premium users only.</b>"
	premiumAlertText = "🔒 Premium feature!"

	adminOnlyText        = "Only the admin can add premium users."
	addPremiumUsageText  = "Usage: /addpremium <user_id>"
	getPDFUsageText      = "Usage: /getpdf <book name>"
	unknownCommandText   = "Unknown command."
	searchingText        = "🔍 Searching for PDF..."
	pdfNotFoundText      = "❌ PDF not found."
	noMatchesText        = "❌ No matches found. Try another search or /start."
	startOverText        = "Something went wrong. Use /start to pick a genre."
	authorPromptText     = "👤 Enter author name:"
	keywordPromptText    = "🔑 Enter keyword:"
	searchResultsHeading = "🔍 <b>Search results:</b>\nTap a book to get its PDF (premium only):"
)

// genreSelectedText renders the mode prompt after a genre pick.
func genreSelectedText(genre string) string {
	return fmt.Sprintf("✨ <b>%s</b> selected!\nHow would you like to search?", html.EscapeString(genre))
}

// randomPicksText renders a sampled book list.
func randomPicksText(books []catalog.Book) string {
	var sb strings.Builder
	sb.WriteString("🎲 <b>Random Picks:</b>")
	for _, b := range books {
		sb.WriteString("\n• ")
		sb.WriteString(html.EscapeString(b.Display()))
	}
	return sb.String()
}

// pdfLinkText renders the resolved download link for a title.
func pdfLinkText(title, link string) string {
	return fmt.Sprintf("📖 <b>%s</b>\n<a href=%q>Download PDF</a>", html.EscapeString(title), link)
}

// grantedText confirms a premium grant.
func grantedText(userID string) string {
	return fmt.Sprintf("User %s added to premium list.", userID)
}

// genreKeyboard builds one button per genre.
func genreKeyboard(genres []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(genres))
	for _, g := range genres {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 "+g, genrePayload(g)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// modeKeyboard offers the three search modes.
func modeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔍 Search by Author", modePayload(session.ModeAuthor)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Random 5 Books", modePayload(session.ModeRandom)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔑 Search by Keyword", modePayload(session.ModeKeyword)),
		),
	)
}

// resultKeyboard builds one button per search result.
func resultKeyboard(displays []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(displays))
	for _, d := range displays {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(d, bookPayload(d)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
