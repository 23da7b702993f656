package bot

import (
	"strings"

	"github.com/bookshookapp/bookshook-bot/internal/errors"
	"github.com/bookshookapp/bookshook-bot/internal/session"
)

// Callback payload tags. Button payloads are "<tag>:<value>" strings; they
// are decoded exactly once here, at the transport boundary, into typed
// events.
const (
	tagGenre = "genre"
	tagMode  = "search"
	tagBook  = "pdf"
)

// Event is a decoded button-press event.
type Event interface {
	isEvent()
}

// GenrePicked is a genre selection from the start keyboard.
type GenrePicked struct {
	Genre string
}

// ModePicked is a search mode selection from the mode keyboard.
type ModePicked struct {
	Mode session.Mode
}

// BookPicked is a book selection from a result keyboard. Display is the
// full "Title - Author" string carried in the payload.
type BookPicked struct {
	Display string
}

func (GenrePicked) isEvent() {}
func (ModePicked) isEvent()  {}
func (BookPicked) isEvent()  {}

// Title returns the title segment of the picked book's display string.
func (e BookPicked) Title() string {
	title, _, _ := strings.Cut(e.Display, " - ")
	return title
}

// ParseCallback decodes a raw callback payload into a typed event.
func ParseCallback(data string) (Event, error) {
	tag, value, found := strings.Cut(data, ":")
	if !found || value == "" {
		return nil, errors.Validation("malformed callback payload: " + data)
	}

	switch tag {
	case tagGenre:
		return GenrePicked{Genre: value}, nil
	case tagMode:
		return ModePicked{Mode: session.Mode(value)}, nil
	case tagBook:
		return BookPicked{Display: value}, nil
	default:
		return nil, errors.Validation("unknown callback tag: " + tag)
	}
}

// genrePayload encodes a genre button payload.
func genrePayload(genre string) string {
	return tagGenre + ":" + genre
}

// modePayload encodes a search mode button payload.
func modePayload(mode session.Mode) string {
	return tagMode + ":" + string(mode)
}

// bookPayload encodes a book button payload.
func bookPayload(display string) string {
	return tagBook + ":" + display
}
