package support

import "github.com/Mahhmanee/Sup/internal/i18n"

// Session is the per-user transient conversation state. It lives for
// the process lifetime and is never explicitly destroyed.
type Session struct {
	Lang            i18n.Lang // empty until the user picks one
	PendingCategory i18n.Category
	HasPending      bool
}

// SessionStore keeps per-user sessions. It has no locking of its own;
// all access goes through the engine's serialization boundary.
type SessionStore struct {
	sessions map[int64]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*Session)}
}

// GetOrCreate returns the user's session, creating an empty one on
// first contact.
func (s *SessionStore) GetOrCreate(userID int64) *Session {
	if sess, ok := s.sessions[userID]; ok {
		return sess
	}
	sess := &Session{}
	s.sessions[userID] = sess
	return sess
}

// SetLanguage records the chosen language. Switching language resets
// the conversation to the menu stage, so any pending category is
// dropped.
func (s *SessionStore) SetLanguage(userID int64, lang i18n.Lang) {
	sess := s.GetOrCreate(userID)
	sess.Lang = lang
	sess.PendingCategory = ""
	sess.HasPending = false
}

// SetPendingCategory records a category selection awaiting the
// description message that will open the ticket.
func (s *SessionStore) SetPendingCategory(userID int64, cat i18n.Category) {
	sess := s.GetOrCreate(userID)
	sess.PendingCategory = cat
	sess.HasPending = true
}

func (s *SessionStore) ClearPendingCategory(userID int64) {
	sess := s.GetOrCreate(userID)
	sess.PendingCategory = ""
	sess.HasPending = false
}
