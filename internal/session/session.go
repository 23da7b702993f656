// Package session tracks per-user conversational state.
//
// The flow is Idle -> GenreChosen -> AwaitingInput -> ResultsShown, with
// random mode short-circuiting straight to results. A new genre pick resets
// everything regardless of prior state; each traversal is independent.
package session

import "github.com/bookshookapp/bookshook-bot/internal/errors"

// Mode is the search mode a user picked after choosing a genre.
type Mode string

// Search modes.
const (
	ModeAuthor  Mode = "author"
	ModeKeyword Mode = "keyword"
	ModeRandom  Mode = "random"
)

// ValidMode reports whether m is a known search mode.
func ValidMode(m Mode) bool {
	switch m {
	case ModeAuthor, ModeKeyword, ModeRandom:
		return true
	}
	return false
}

// State identifies where in the selection flow a session is.
type State int

// Session states.
const (
	StateIdle State = iota
	StateGenreChosen
	StateAwaitingInput
	StateResultsShown
)

// Session is the conversational state of one user. Only the transition
// methods below mutate it.
type Session struct {
	State         State
	Genre         string
	Mode          Mode
	AwaitingInput bool
	// Results holds the display strings of the last presented result set.
	Results []string
}

// PickGenre starts a fresh selection cycle. Any in-progress state is
// discarded.
func (s *Session) PickGenre(genre string) {
	*s = Session{State: StateGenreChosen, Genre: genre}
}

// ChooseMode records the search mode. Requires a chosen genre; a mode pick
// without one is an invariant violation since the UI only offers modes
// after a genre.
func (s *Session) ChooseMode(mode Mode) error {
	if s.Genre == "" {
		return errors.Internal("mode chosen with no genre selected")
	}
	if !ValidMode(mode) {
		return errors.Validation("unknown search mode: " + string(mode))
	}

	s.Mode = mode
	if mode == ModeRandom {
		// Random resolves immediately; no free text expected.
		s.State = StateResultsShown
		s.AwaitingInput = false
		return nil
	}

	s.State = StateAwaitingInput
	s.AwaitingInput = true
	return nil
}

// ConsumeInput reports whether free text should be processed. Text arriving
// while no input is awaited is silently dropped, not an error.
func (s *Session) ConsumeInput() bool {
	return s.AwaitingInput
}

// StoreResults records a presented result set and closes the free-text
// window.
func (s *Session) StoreResults(results []string) {
	s.State = StateResultsShown
	s.AwaitingInput = false
	s.Results = results
}
