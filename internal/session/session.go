// Package session holds the in-memory session state the view layer renders
// from. It is a read-through cache of the preference store, populated once
// at startup and updated alongside explicit user actions.
package session

import (
	"context"
	"sync"

	"github.com/linguago/linguago/internal/domain/entities"
)

// State is the session lifecycle state. Modelling it as a tagged value keeps
// "authenticated but no user" unrepresentable.
type State int

const (
	StateLoading         State = iota // startup check not finished yet
	StateUnauthenticated              // no valid local session
	StateAuthenticated                // local session present, user cached
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Authenticator is the slice of the auth service the session depends on.
type Authenticator interface {
	IsAuthenticated(ctx context.Context) (bool, error)
	CurrentUser(ctx context.Context) (*entities.User, error)
	Logout(ctx context.Context) error
}

// Session is the process-wide session holder. It is constructed in main and
// passed to consumers explicitly; there is no package-level instance.
type Session struct {
	mu    sync.Mutex
	auth  Authenticator
	state State
	user  *entities.User
}

// New creates a Session in the loading state.
func New(auth Authenticator) *Session {
	return &Session{
		auth:  auth,
		state: StateLoading,
	}
}

// Init runs the one-time startup check: read the local session flag and, if
// set, the cached user. Any error or absence resolves to unauthenticated;
// the check never fails the process.
func (s *Session) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLoading {
		return
	}

	authenticated, err := s.auth.IsAuthenticated(ctx)
	if err != nil || !authenticated {
		s.state = StateUnauthenticated
		return
	}

	user, err := s.auth.CurrentUser(ctx)
	if err != nil || user == nil {
		s.state = StateUnauthenticated
		return
	}

	s.state = StateAuthenticated
	s.user = user
}

// Snapshot returns the current state and, when authenticated, a copy of the
// current user.
func (s *Session) Snapshot() (State, *entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAuthenticated {
		return s.state, nil
	}

	user := *s.user
	return s.state, &user
}

// Login transitions to authenticated with the given user. The caller is
// expected to have persisted the user via the auth service already.
func (s *Session) Login(user *entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateAuthenticated
	s.user = user
}

// Logout clears the persisted session and transitions to unauthenticated.
// On a storage failure the state is left untouched and the error returned.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.auth.Logout(ctx); err != nil {
		return err
	}

	s.state = StateUnauthenticated
	s.user = nil
	return nil
}

// SetUser replaces the cached user in memory. Callers are responsible for
// having persisted the change; outside the authenticated state this is a
// no-op.
func (s *Session) SetUser(user *entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAuthenticated {
		return
	}

	s.user = user
}
