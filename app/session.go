package app

import (
	"net/http"
	"sync"
	"time"

	"github.com/renstrom/shortuuid"

	"github.com/wybiral/ytdetails/lookup"
)

const sessionCookie = "ytdetails_session"

type session struct {
	form     *lookup.Form
	lastSeen time.Time
}

// sessionStore keeps one lookup form per browser session in memory.
type sessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*session
	now      func() time.Time
}

func newSessionStore(ttl time.Duration) *sessionStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &sessionStore{
		ttl:      ttl,
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// Lookup returns the form of the request's live session or nil. It never
// starts a session.
func (s *sessionStore) Lookup(r *http.Request) *lookup.Form {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookupLocked(r, now)
}

// Form returns the form of the request's session, starting a new session
// (and setting its cookie on w) when there is none.
func (s *sessionStore) Form(w http.ResponseWriter, r *http.Request) *lookup.Form {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if form := s.lookupLocked(r, now); form != nil {
		return form
	}

	s.gcLocked(now)

	id := shortuuid.New()
	sess := &session{form: lookup.NewForm(), lastSeen: now}
	s.sessions[id] = sess
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess.form
}

// Len returns the number of live sessions.
func (s *sessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *sessionStore) lookupLocked(r *http.Request, now time.Time) *lookup.Form {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil
	}
	sess, ok := s.sessions[c.Value]
	if !ok || now.Sub(sess.lastSeen) > s.ttl {
		return nil
	}
	sess.lastSeen = now
	return sess.form
}

func (s *sessionStore) gcLocked(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
