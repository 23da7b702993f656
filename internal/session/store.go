package session

import "sync"

// Store holds sessions keyed by Telegram user id. Sessions are created
// lazily on first interaction and live for the process lifetime.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Get returns a copy of the user's session, or a zero session if none
// exists yet.
func (st *Store) Get(userID int64) Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[userID]; ok {
		return *s
	}
	return Session{}
}

// Update applies fn to the user's session, creating it if needed.
func (st *Store) Update(userID int64, fn func(*Session)) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[userID]
	if !ok {
		s = &Session{}
		st.sessions[userID] = s
	}
	fn(s)
}
