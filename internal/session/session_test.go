package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookshookapp/bookshook-bot/internal/errors"
)

func TestSession_PickGenre_ResetsEverything(t *testing.T) {
	s := &Session{}
	s.PickGenre("Fantasy")
	require.NoError(t, s.ChooseMode(ModeAuthor))
	s.StoreResults([]string{"The Hobbit - J.R.R. Tolkien"})

	s.PickGenre("Sci-Fi")

	assert.Equal(t, StateGenreChosen, s.State)
	assert.Equal(t, "Sci-Fi", s.Genre)
	assert.Empty(t, s.Mode)
	assert.False(t, s.AwaitingInput)
	assert.Nil(t, s.Results)
}

func TestSession_ChooseMode(t *testing.T) {
	t.Run("author awaits input", func(t *testing.T) {
		s := &Session{}
		s.PickGenre("Fantasy")

		require.NoError(t, s.ChooseMode(ModeAuthor))
		assert.Equal(t, StateAwaitingInput, s.State)
		assert.True(t, s.AwaitingInput)
		assert.True(t, s.ConsumeInput())
	})

	t.Run("keyword awaits input", func(t *testing.T) {
		s := &Session{}
		s.PickGenre("Fantasy")

		require.NoError(t, s.ChooseMode(ModeKeyword))
		assert.True(t, s.AwaitingInput)
	})

	t.Run("random short-circuits to results", func(t *testing.T) {
		s := &Session{}
		s.PickGenre("Fantasy")

		require.NoError(t, s.ChooseMode(ModeRandom))
		assert.Equal(t, StateResultsShown, s.State)
		assert.False(t, s.AwaitingInput)
	})

	t.Run("no genre is an invariant violation", func(t *testing.T) {
		s := &Session{}
		err := s.ChooseMode(ModeAuthor)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInternal))
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		s := &Session{}
		s.PickGenre("Fantasy")
		err := s.ChooseMode(Mode("telepathy"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrValidation))
	})
}

func TestSession_StoreResults_ClosesInputWindow(t *testing.T) {
	s := &Session{}
	s.PickGenre("Fantasy")
	require.NoError(t, s.ChooseMode(ModeKeyword))
	require.True(t, s.ConsumeInput())

	s.StoreResults([]string{"Dune - Frank Herbert"})

	assert.Equal(t, StateResultsShown, s.State)
	assert.False(t, s.ConsumeInput())
	assert.Equal(t, []string{"Dune - Frank Herbert"}, s.Results)
}

func TestSession_ConsumeInput_IdleDropsText(t *testing.T) {
	s := &Session{}
	assert.False(t, s.ConsumeInput())
}

func TestStore_LazyCreation(t *testing.T) {
	st := NewStore()

	// Unknown user reads as a zero session.
	s := st.Get(1)
	assert.Equal(t, StateIdle, s.State)

	st.Update(1, func(s *Session) { s.PickGenre("Horror") })

	s = st.Get(1)
	assert.Equal(t, "Horror", s.Genre)

	// Other users are unaffected.
	assert.Equal(t, StateIdle, st.Get(2).State)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	st := NewStore()
	st.Update(1, func(s *Session) { s.PickGenre("Horror") })

	s := st.Get(1)
	s.Genre = "Romance"

	assert.Equal(t, "Horror", st.Get(1).Genre)
}
