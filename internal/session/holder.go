// Package session holds the identity of the current user.
package session

import (
	"sync"

	"projectflow/internal/entities"

	"go.uber.org/zap"
)

// Holder keeps the process-wide session over a fixed roster of users.
// The session value is replaced as a whole on every transition.
type Holder struct {
	log     *zap.SugaredLogger
	mu      sync.RWMutex
	roster  []entities.User
	current entities.AuthSession
}

// New creates a holder logged in as defaultUserID, or as the first admin of
// the roster when defaultUserID is empty or unknown.
func New(log *zap.SugaredLogger, roster []entities.User, defaultUserID string) *Holder {
	h := &Holder{
		log:    log.Named("session"),
		roster: append([]entities.User(nil), roster...),
	}

	if u, ok := h.find(func(u entities.User) bool { return defaultUserID != "" && u.ID == defaultUserID }); ok {
		h.current = authenticated(u)
	} else if u, ok := h.find(func(u entities.User) bool { return u.Role == entities.RoleAdmin }); ok {
		h.current = authenticated(u)
	}
	return h
}

// Login switches the session to the user with the given email.
// The password is not checked. On a miss the session is left unchanged.
func (h *Holder) Login(email, _ string) bool {
	u, ok := h.find(func(u entities.User) bool { return u.Email == email })
	if !ok {
		h.log.Infow("login rejected", "email", email)
		return false
	}

	h.mu.Lock()
	h.current = authenticated(u)
	h.mu.Unlock()

	h.log.Infow("login", "user_id", u.ID, "role", u.Role)
	return true
}

// Logout clears the session.
func (h *Holder) Logout() {
	h.mu.Lock()
	h.current = entities.AuthSession{}
	h.mu.Unlock()

	h.log.Infow("logout")
}

// SwitchUser replaces the session user when userID is on the roster.
func (h *Holder) SwitchUser(userID string) bool {
	u, ok := h.find(func(u entities.User) bool { return u.ID == userID })
	if !ok {
		return false
	}

	h.mu.Lock()
	h.current = authenticated(u)
	h.mu.Unlock()

	h.log.Infow("user switched", "user_id", u.ID, "role", u.Role)
	return true
}

// Current returns a copy of the session.
func (h *Holder) Current() entities.AuthSession {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s := h.current
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// User returns the session user, or nil when nobody is logged in.
func (h *Holder) User() *entities.User {
	s := h.Current()
	if !s.IsAuthenticated {
		return nil
	}
	return s.User
}

func (h *Holder) find(match func(entities.User) bool) (entities.User, bool) {
	for _, u := range h.roster {
		if match(u) {
			return u, true
		}
	}
	return entities.User{}, false
}

func authenticated(u entities.User) entities.AuthSession {
	return entities.AuthSession{User: &u, IsAuthenticated: true}
}
