// Package session holds the client's authenticated session: the bearer
// token issued at login and the user record it belongs to.
//
// The store is the only shared mutable state in the client. It is passed
// to consumers as a dependency, never looked up ambiently, so tests can
// substitute the in-memory implementation.
package session

import "github.com/dmitrijs2005/myflix-cli/internal/client/models"

// Session is the combination of a bearer token and the associated user
// record. A session is live from a successful login until an explicit
// Clear. Token and user are persisted and removed together; there is no
// valid token-without-user or user-without-token state.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Store persists the current session across program runs.
//
// Contract:
//   - Save overwrites any prior session.
//   - Load returns the last saved session, or ok=false if none was saved,
//     it was cleared, or the persisted data is malformed. Load never
//     returns an error to the caller.
//   - Clear removes the session and is idempotent.
//   - Token returns the current bearer token, or "" when no session is
//     live. It exists so the API client can read the token through a
//     narrow dependency.
type Store interface {
	Save(s Session) error
	Load() (Session, bool)
	Clear() error
	Token() string
}
