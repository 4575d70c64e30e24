package domain

import (
	"context"

	"projectflow/internal/access"
	"projectflow/internal/entities"
)

// Login opens a session for the roster user with the given email.
// The session is left unchanged when no user matches.
func (u *Usecase) Login(ctx context.Context, email, password string) (entities.AuthSession, bool) {
	_, done := u.start(ctx, "usecase.Login")
	defer done(nil)

	ok := u.sessions.Login(email, password)
	if !ok {
		u.log.Infow("login rejected", "email", email)
	}
	return u.sessions.Current(), ok
}

// Logout clears the session.
func (u *Usecase) Logout(ctx context.Context) entities.AuthSession {
	_, done := u.start(ctx, "usecase.Logout")
	defer done(nil)

	u.sessions.Logout()
	return u.sessions.Current()
}

// SwitchUser replaces the session with another roster user. Unknown ids are ignored.
func (u *Usecase) SwitchUser(ctx context.Context, userID string) (entities.AuthSession, bool) {
	_, done := u.start(ctx, "usecase.SwitchUser")
	defer done(nil)

	ok := u.sessions.SwitchUser(userID)
	return u.sessions.Current(), ok
}

// Session returns the current session.
func (u *Usecase) Session(_ context.Context) entities.AuthSession {
	return u.sessions.Current()
}

// Permissions returns the session-wide action flags and navigation entries.
func (u *Usecase) Permissions(_ context.Context) entities.Permissions {
	return access.Permissions(u.sessions.User())
}
