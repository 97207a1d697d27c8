// Package session keeps each browser's copywriter state in a server-side
// session.
package session

import (
	"context"
	"encoding/gob"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"

	"github.com/joestump/joe-marketer/internal/copywriter"
)

const stateKey = "copywriter_state"

func init() {
	gob.Register(copywriter.State{})
}

// NewSessionManager creates an SCS session manager backed by process memory.
// Sessions do not survive a restart.
func NewSessionManager(lifetime time.Duration, secureCookies bool) *scs.SessionManager {
	sm := scs.New()
	sm.Store = memstore.New()
	sm.Lifetime = lifetime
	sm.Cookie.Name = "marketer_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = secureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode
	return sm
}

// Store reads and writes copywriter.State on the request's session. The
// request must pass through the manager's LoadAndSave middleware.
type Store struct {
	sessions *scs.SessionManager
}

// NewStore creates a Store over sm.
func NewStore(sm *scs.SessionManager) *Store {
	return &Store{sessions: sm}
}

// Load returns the session's state, or the zero State for a new session.
func (s *Store) Load(ctx context.Context) copywriter.State {
	st, _ := s.sessions.Get(ctx, stateKey).(copywriter.State)
	return st
}

// Save replaces the session's state.
func (s *Store) Save(ctx context.Context, st copywriter.State) {
	s.sessions.Put(ctx, stateKey, st)
}

// Reset clears the session slot and the cached brief.
func (s *Store) Reset(ctx context.Context) {
	s.sessions.Remove(ctx, stateKey)
}
